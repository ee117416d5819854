package repository

import (
	"context"

	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
)

// MovementRepository define el puerto hacia sp_registrar_movimiento (DIP).
// Register es una llamada atómica y opaca: una fila, una transacción; la BD es
// la dueña de toda la lógica de stock. Un rechazo de negocio llega como
// *domain.MovementRejectedError.
type MovementRepository interface {
	Register(ctx context.Context, m entity.StockMovement) error
}
