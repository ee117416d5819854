package repository

import (
	"context"

	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
)

// CatalogRepository define el puerto de catálogo maestro (productos y categorías).
// SaveProduct delega en sp_gestionar_producto (alta o actualización, decide la BD).
type CatalogRepository interface {
	SaveProduct(ctx context.Context, p entity.Product) error
	ListProducts(ctx context.Context) ([]entity.ProductRef, error)
	// ListCategories lee la tabla categorias; si no existe, cae al DISTINCT
	// de la columna categoria en productos.
	ListCategories(ctx context.Context) ([]string, error)
}
