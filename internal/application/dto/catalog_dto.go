package dto

// SaveProductRequest body para POST /api/catalogo/productos.
// Category puede ser una existente o el nombre de una nueva; la BD decide alta o edición.
type SaveProductRequest struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Category string `json:"category"`
	MinStock int    `json:"min_stock"` // 1..50, defecto 5
}

// ProductRefDTO elemento del listado de productos (para dropdowns del front).
type ProductRefDTO struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}
