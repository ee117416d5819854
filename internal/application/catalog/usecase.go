// Package catalog contiene los casos de uso del catálogo maestro de productos
// y categorías. El alta/edición real la decide sp_gestionar_producto en la BD.
package catalog

import (
	"context"
	"strings"

	"github.com/jpacevedo/inventario-pro/internal/application/dto"
	"github.com/jpacevedo/inventario-pro/internal/domain"
	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
	"github.com/jpacevedo/inventario-pro/internal/domain/repository"
)

// Límites del stock mínimo del formulario de producto.
const (
	minStockFloor   = 1
	minStockCeiling = 50
	minStockDefault = 5
)

// CatalogUseCase casos de uso de catálogo: guardar producto, listar productos
// y listar categorías (con fallback si la tabla categorias no existe).
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// SaveProduct valida el formulario y delega en sp_gestionar_producto.
// La categoría puede ser existente o nueva: para la BD es el mismo string.
func (uc *CatalogUseCase) SaveProduct(ctx context.Context, in dto.SaveProductRequest) error {
	sku := strings.TrimSpace(in.SKU)
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if sku == "" || name == "" || category == "" {
		return domain.ErrInvalidInput
	}

	minStock := in.MinStock
	if minStock == 0 {
		minStock = minStockDefault
	}
	if minStock < minStockFloor || minStock > minStockCeiling {
		return domain.ErrInvalidInput
	}

	return uc.repo.SaveProduct(ctx, entity.Product{
		SKU:      sku,
		Name:     name,
		Category: category,
		MinStock: minStock,
	})
}

// ListProducts devuelve las referencias (sku + nombre) ordenadas por nombre.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductRefDTO, error) {
	refs, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductRefDTO, 0, len(refs))
	for _, r := range refs {
		out = append(out, dto.ProductRefDTO{SKU: r.SKU, Name: r.Name})
	}
	return out, nil
}

// ListCategories devuelve los nombres de categoría disponibles.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]string, error) {
	return uc.repo.ListCategories(ctx)
}
