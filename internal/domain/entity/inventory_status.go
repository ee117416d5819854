package entity

// Estados de alerta que devuelve fn_obtener_estado_inventario().
const (
	AlertCritico = "CRÍTICO"
	AlertBajo    = "BAJO"
	AlertNormal  = "NORMAL"
)

// InventoryStatus es una fila de fn_obtener_estado_inventario(): la foto del
// stock de un producto con su clasificación de alerta ya calculada por la BD.
// Este backend nunca recalcula la alerta, solo la presenta.
type InventoryStatus struct {
	SKU          string
	Name         string
	Category     string
	CurrentStock int
	MinStock     int
	AlertState   string // CRÍTICO | BAJO | NORMAL
}
