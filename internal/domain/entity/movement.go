package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock. La BD valida el tipo dentro de sp_registrar_movimiento.
const (
	MovementTypeEntrada = "ENTRADA" // entrada de mercancía
	MovementTypeSalida  = "SALIDA"  // salida de mercancía
)

// StockMovement representa un movimiento de inventario a registrar.
// La entidad es transitoria: la BD es la dueña del registro persistido y de
// toda la aritmética de stock (sp_registrar_movimiento es una llamada atómica).
type StockMovement struct {
	SKU       string
	Date      time.Time
	Type      string          // ENTRADA | SALIDA
	Quantity  int             // la BD castea a INT
	UnitValue decimal.Decimal // la BD castea a NUMERIC
}
