package inventory

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jpacevedo/inventario-pro/internal/application/dto"
	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
	"github.com/jpacevedo/inventario-pro/internal/domain/repository"
)

// Columnas esperadas en el archivo de carga masiva (coincidencia exacta,
// mismo encabezado que usan las planillas del negocio).
const (
	ColSKU       = "Código"
	ColQuantity  = "cant"
	ColUnitValue = "Valor Unitar"
)

// BulkImportUseCase procesa una planilla de movimientos de entrada contra
// sp_registrar_movimiento, fila por fila y en orden.
//
// Reglas por fila:
//   - SKU vacío: la fila se omite por completo (ni éxito ni fallo).
//   - Cantidad y valor unitario ausentes o no numéricos: se sustituyen por 0.
//   - Cada fila válida es una llamada transaccional independiente; el fallo de
//     una fila nunca aborta la corrida ni contamina a las siguientes.
//
// La sesión de BD se adquiere antes de la primera fila y se libera siempre al
// terminar. Si no hay conexión, la corrida no arranca y no hay reporte.
type BulkImportUseCase struct {
	sessions ImportSessionRunner
	log      zerolog.Logger
}

// NewBulkImportUseCase construye el caso de uso.
func NewBulkImportUseCase(sessions ImportSessionRunner, log zerolog.Logger) *BulkImportUseCase {
	return &BulkImportUseCase{sessions: sessions, log: log}
}

// Run procesa rows en orden de entrada y devuelve el reporte de la corrida.
// progress puede ser nil. Invariante del reporte:
//
//	SuccessCount + len(Failures) + SkippedCount == TotalRows
//
// El error de retorno es exclusivamente de nivel de corrida (sin conexión);
// los fallos por fila viajan dentro del reporte.
func (uc *BulkImportUseCase) Run(ctx context.Context, rows []RawRecord, progress ProgressFunc) (*dto.ImportReportDTO, error) {
	report := &dto.ImportReportDTO{
		RunID:     uuid.New().String(),
		TotalRows: len(rows),
		Failures:  []dto.ImportFailureDTO{},
	}
	// La fecha del movimiento es la fecha de proceso, no viene del archivo.
	today := time.Now()

	err := uc.sessions.RunSession(ctx, func(movRepo repository.MovementRepository) error {
		for i, row := range rows {
			uc.processRow(ctx, movRepo, i, row, today, report)
			emitProgress(progress, i+1, len(rows))
		}
		return nil
	})
	if err != nil {
		// Fallo de nivel de corrida: no se procesó ninguna fila.
		uc.log.Error().Err(err).Msg("carga masiva: no se pudo abrir sesión de BD")
		return nil, err
	}

	uc.log.Info().
		Str("run_id", report.RunID).
		Int("total", report.TotalRows).
		Int("exitos", report.SuccessCount).
		Int("fallos", len(report.Failures)).
		Int("omitidas", report.SkippedCount).
		Msg("carga masiva finalizada")
	return report, nil
}

// processRow procesa una fila de la planilla. Nunca devuelve error:
// todo fallo de fila queda registrado en el reporte.
func (uc *BulkImportUseCase) processRow(
	ctx context.Context,
	movRepo repository.MovementRepository,
	index int,
	row RawRecord,
	date time.Time,
	report *dto.ImportReportDTO,
) {
	sku := strings.TrimSpace(row[ColSKU])
	if sku == "" {
		report.SkippedCount++
		return
	}

	mov := entity.StockMovement{
		SKU:       sku,
		Date:      date,
		Type:      entity.MovementTypeEntrada, // la carga masiva solo registra entradas
		Quantity:  coerceInt(row[ColQuantity]),
		UnitValue: coerceDecimal(row[ColUnitValue]),
	}

	if err := movRepo.Register(ctx, mov); err != nil {
		report.Failures = append(report.Failures, dto.ImportFailureDTO{
			RowIndex: index,
			Detail:   err.Error(),
		})
		uc.log.Debug().Int("fila", index).Str("sku", sku).Err(err).Msg("fila rechazada")
		return
	}
	report.SuccessCount++
}

// coerceInt interpreta una cantidad textual. Vacío o no numérico vale 0 en vez
// de abortar la fila; un decimal ("5.0") se trunca como hace la planilla origen.
func coerceInt(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// coerceDecimal interpreta un valor unitario textual; vacío o no numérico vale 0.
func coerceDecimal(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func emitProgress(progress ProgressFunc, processed, total int) {
	if progress == nil || total == 0 {
		return
	}
	progress(float64(processed) / float64(total))
}
