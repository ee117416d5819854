package dto

import "github.com/shopspring/decimal"

// RegisterMovementRequest body para POST /api/inventario/movimientos.
// Date en formato "2006-01-02"; vacío = hoy.
type RegisterMovementRequest struct {
	SKU       string          `json:"sku"`
	Type      string          `json:"type"` // ENTRADA | SALIDA
	Date      string          `json:"date,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitValue decimal.Decimal `json:"unit_value"`
}

// ImportFailureDTO una fila fallida de la carga masiva, con su índice de origen.
type ImportFailureDTO struct {
	RowIndex int    `json:"row_index"`
	Detail   string `json:"detail"`
}

// ImportReportDTO respuesta de POST /api/inventario/importar.
// success_count + len(failures) + skipped_count == filas totales del archivo.
type ImportReportDTO struct {
	RunID        string             `json:"run_id"`
	TotalRows    int                `json:"total_rows"`
	SuccessCount int                `json:"success_count"`
	SkippedCount int                `json:"skipped_count"`
	Failures     []ImportFailureDTO `json:"failures"`
}
