package inventory

import (
	"context"

	"github.com/jpacevedo/inventario-pro/internal/domain/repository"
)

// RawRecord es una fila cruda del archivo tabular: nombre de columna -> valor textual.
// Las columnas se acceden por nombre exacto; las ausentes se tratan como vacías.
type RawRecord map[string]string

// ImportSessionRunner abre una sesión de BD con una conexión dedicada, ejecuta fn
// con un MovementRepository atado a esa conexión y la libera en todo camino de
// salida (éxito, fallo parcial o pánico). Si no se puede adquirir la conexión,
// devuelve el error sin invocar fn: la corrida nunca arranca.
type ImportSessionRunner interface {
	RunSession(ctx context.Context, fn func(movRepo repository.MovementRepository) error) error
}

// ProgressFunc recibe la fracción de avance (procesadas/total) después de cada fila.
// La fracción es monótona no decreciente y llega a 1.0 con la última fila.
type ProgressFunc func(fraction float64)
