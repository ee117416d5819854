package postgres

import (
	"context"
	"fmt"

	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
	"github.com/jpacevedo/inventario-pro/internal/domain/repository"
)

var _ repository.InventoryStatusRepository = (*StatusRepo)(nil)

// StatusRepo implementación read-only del puerto InventoryStatusRepository.
// La función fn_obtener_estado_inventario() calcula stock y alerta por producto;
// aquí solo se escanean sus columnas.
type StatusRepo struct {
	q Querier
}

// NewStatusRepository construye el adaptador de lectura del dashboard.
func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{q: q}
}

// GetInventoryStatus devuelve una fila por producto con la alerta ya clasificada.
func (r *StatusRepo) GetInventoryStatus(ctx context.Context) ([]entity.InventoryStatus, error) {
	rows, err := r.q.Query(ctx,
		`SELECT codigo_sku, nombre, categoria, stock_actual, stock_minimo, alerta_estado
		 FROM fn_obtener_estado_inventario()`)
	if err != nil {
		return nil, fmt.Errorf("fn_obtener_estado_inventario: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryStatus
	for rows.Next() {
		var s entity.InventoryStatus
		if err := rows.Scan(&s.SKU, &s.Name, &s.Category, &s.CurrentStock, &s.MinStock, &s.AlertState); err != nil {
			return nil, fmt.Errorf("scan estado inventario: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
