package entity

// Product representa un producto del catálogo maestro.
// El alta/edición pasa por sp_gestionar_producto; aquí solo viajan los campos del formulario.
type Product struct {
	SKU      string // codigo_sku, clave única
	Name     string
	Category string
	MinStock int // umbral para alerta de stock bajo
}

// ProductRef referencia ligera para listados y dropdowns (codigo_sku + nombre).
type ProductRef struct {
	SKU  string
	Name string
}
