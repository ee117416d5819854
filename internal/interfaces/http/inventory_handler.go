package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jpacevedo/inventario-pro/internal/application/dto"
	"github.com/jpacevedo/inventario-pro/internal/application/inventory"
	"github.com/jpacevedo/inventario-pro/internal/domain"
	"github.com/jpacevedo/inventario-pro/internal/infrastructure/tabular"
)

// InventoryHandler maneja movimientos manuales y la carga masiva.
type InventoryHandler struct {
	registerUC *inventory.RegisterMovementUseCase
	importUC   *inventory.BulkImportUseCase
	charset    string // charset de los CSV subidos (config IMPORT_CHARSET)
	maxFileMB  int
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(registerUC *inventory.RegisterMovementUseCase, importUC *inventory.BulkImportUseCase, charset string, maxFileMB int) *InventoryHandler {
	return &InventoryHandler{registerUC: registerUC, importUC: importUC, charset: charset, maxFileMB: maxFileMB}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario manual
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "sku, type (ENTRADA|SALIDA), quantity, unit_value, date opcional"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.registerUC.Register(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if domain.IsMovementRejected(err) {
			// El mensaje del RAISE de la BD es apto para el usuario
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REJECTED", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento registrado"})
}

// ImportMovements godoc
// @Summary      Carga masiva de entradas desde CSV o XLSX
// @Description  Procesa el archivo fila por fila: cada fila válida es un
//               movimiento ENTRADA independiente; las filas sin SKU se omiten
//               y los fallos por fila no abortan la corrida.
// @Tags         inventario
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "archivo .csv o .xlsx con columnas Código, cant, Valor Unitar"
// @Success      200   {object}  dto.ImportReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/inventario/importar [post]
func (h *InventoryHandler) ImportMovements(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo multipart 'file'"})
	}
	if fileHeader.Size > int64(h.maxFileMB)*1024*1024 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_BIG", Message: "el archivo excede el tamaño máximo permitido"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_FILE", Message: err.Error()})
	}
	defer f.Close()

	rows, err := tabular.ReadRecords(fileHeader.Filename, f, h.charset)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_FILE", Message: err.Error()})
	}

	report, err := h.importUC.Run(c.Context(), rows, nil)
	if err != nil {
		// Fallo de nivel de corrida: la BD no estaba disponible al arrancar
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(report)
}
