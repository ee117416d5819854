package repository

import (
	"context"

	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
)

// InventoryStatusRepository define las consultas de lectura del dashboard.
// Las implementaciones son read-only (no modifican datos).
type InventoryStatusRepository interface {
	// GetInventoryStatus devuelve SELECT * FROM fn_obtener_estado_inventario():
	// una fila por producto con stock actual y alerta ya clasificada por la BD.
	GetInventoryStatus(ctx context.Context) ([]entity.InventoryStatus, error)
}
