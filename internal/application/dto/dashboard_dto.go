package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/resumen.
// Los KPIs se derivan de fn_obtener_estado_inventario(); la clasificación de
// alertas es responsabilidad de la BD.
type DashboardSummaryDTO struct {
	TotalProducts int `json:"total_products"`
	TotalStock    int `json:"total_stock"`
	CriticalCount int `json:"critical_count"`

	// Valor estimado de referencia: stock_total * valor unitario de referencia.
	// No es una valoración contable; ver EstimatedValueNote.
	EstimatedValue     decimal.Decimal `json:"estimated_value_ref"`
	EstimatedValueNote string          `json:"estimated_value_note"`

	// Distribución por estado de alerta (datos para el gráfico de torta del front).
	AlertDistribution map[string]int `json:"alert_distribution"`
}

// InventoryStatusRowDTO una fila del detalle de existencias.
type InventoryStatusRowDTO struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
	AlertState   string `json:"alert_state"`
}
