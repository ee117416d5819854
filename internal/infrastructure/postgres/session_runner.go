package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jpacevedo/inventario-pro/internal/application/inventory"
	"github.com/jpacevedo/inventario-pro/internal/domain"
	"github.com/jpacevedo/inventario-pro/internal/domain/repository"
)

var _ inventory.ImportSessionRunner = (*SessionRunner)(nil)

// SessionRunner implementa la sesión de la carga masiva: adquiere UNA conexión
// del pool antes de la primera fila, ejecuta fn con un MovementRepository atado
// a esa conexión y la libera en todo camino de salida. Cada Register dentro de
// fn sigue siendo su propia transacción (el procedure es la unidad atómica);
// la conexión compartida solo garantiza una sesión estable para toda la corrida.
type SessionRunner struct {
	pool *pgxpool.Pool
}

// NewSessionRunner construye el runner con el pool.
func NewSessionRunner(pool *pgxpool.Pool) *SessionRunner {
	return &SessionRunner{pool: pool}
}

// RunSession adquiere la conexión y delega en fn. Si no hay conexión disponible
// devuelve domain.ErrStoreUnavailable envuelto: la corrida no arranca.
func (r *SessionRunner) RunSession(ctx context.Context, fn func(movRepo repository.MovementRepository) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer conn.Release()

	return fn(NewMovementRepository(conn))
}
