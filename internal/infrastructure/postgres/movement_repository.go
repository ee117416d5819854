package postgres

import (
	"context"
	"fmt"

	"github.com/jpacevedo/inventario-pro/internal/domain"
	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
	"github.com/jpacevedo/inventario-pro/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL
// (usable con pool o con la conexión dedicada de una sesión de importación).
// Toda la lógica del movimiento vive en sp_registrar_movimiento: validación de
// SKU, control de stock y escritura, en una sola transacción del lado de la BD.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o conexión (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Register ejecuta la llamada atómica al stored procedure. Los casts ::INT y
// ::NUMERIC fuerzan los tipos que espera la firma del procedimiento.
// Un RAISE EXCEPTION del procedimiento se devuelve como
// *domain.MovementRejectedError con el mensaje de negocio de la BD.
func (r *MovementRepo) Register(ctx context.Context, m entity.StockMovement) error {
	_, err := r.q.Exec(ctx,
		`CALL sp_registrar_movimiento($1, $2, $3, $4::INT, $5::NUMERIC)`,
		m.SKU, m.Date, m.Type, m.Quantity, m.UnitValue,
	)
	if err != nil {
		if msg := raiseMessage(err); msg != "" {
			return &domain.MovementRejectedError{Message: msg}
		}
		return fmt.Errorf("sp_registrar_movimiento: %w", err)
	}
	return nil
}
