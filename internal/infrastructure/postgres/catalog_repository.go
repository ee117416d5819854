package postgres

import (
	"context"
	"fmt"

	"github.com/jpacevedo/inventario-pro/internal/domain"
	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
	"github.com/jpacevedo/inventario-pro/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// SaveProduct delega alta/edición en sp_gestionar_producto (la BD decide según
// exista o no el SKU). Un RAISE del procedimiento llega como rechazo de negocio.
func (r *CatalogRepo) SaveProduct(ctx context.Context, p entity.Product) error {
	_, err := r.q.Exec(ctx,
		`CALL sp_gestionar_producto($1, $2, $3, $4::INT)`,
		p.SKU, p.Category, p.Name, p.MinStock,
	)
	if err != nil {
		if msg := raiseMessage(err); msg != "" {
			return &domain.MovementRejectedError{Message: msg}
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("sp_gestionar_producto: %w", err)
	}
	return nil
}

// ListProducts devuelve codigo_sku y nombre de todos los productos, ordenados
// por nombre (fuente del dropdown del formulario de movimientos).
func (r *CatalogRepo) ListProducts(ctx context.Context) ([]entity.ProductRef, error) {
	rows, err := r.q.Query(ctx,
		`SELECT codigo_sku, nombre FROM productos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []entity.ProductRef
	for rows.Next() {
		var ref entity.ProductRef
		if err := rows.Scan(&ref.SKU, &ref.Name); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, ref)
	}
	return list, rows.Err()
}

// ListCategories lee la tabla categorias. Si la relación no existe (despliegues
// viejos sin esa tabla), cae al DISTINCT de la columna categoria en productos.
func (r *CatalogRepo) ListCategories(ctx context.Context) ([]string, error) {
	list, err := r.scanNames(ctx,
		`SELECT nombre FROM categorias ORDER BY nombre`)
	if err == nil {
		return list, nil
	}
	if !isUndefinedTable(err) {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	list, err = r.scanNames(ctx,
		`SELECT DISTINCT categoria FROM productos WHERE categoria IS NOT NULL ORDER BY categoria`)
	if err != nil {
		return nil, fmt.Errorf("list categorias (fallback): %w", err)
	}
	return list, nil
}

func (r *CatalogRepo) scanNames(ctx context.Context, query string) ([]string, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
