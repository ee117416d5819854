package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpacevedo/inventario-pro/internal/application/dto"
	"github.com/jpacevedo/inventario-pro/internal/domain"
	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
	"github.com/jpacevedo/inventario-pro/internal/domain/repository"
)

// RegisterMovementUseCase registra un movimiento manual (ENTRADA o SALIDA).
// Valida el formulario y delega la transacción completa en sp_registrar_movimiento;
// la BD es quien decide si hay stock suficiente o si el SKU existe.
type RegisterMovementUseCase struct {
	movRepo repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(movRepo repository.MovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{movRepo: movRepo}
}

// Register valida la entrada y ejecuta la llamada atómica.
// Fecha vacía = hoy. Devuelve domain.ErrInvalidInput si el formulario no es
// válido y *domain.MovementRejectedError si la BD rechaza el movimiento.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) error {
	if in.SKU == "" {
		return domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeEntrada && in.Type != entity.MovementTypeSalida {
		return domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return domain.ErrInvalidInput
	}
	if in.UnitValue.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return domain.ErrInvalidInput
		}
		date = parsed
	}

	return uc.movRepo.Register(ctx, entity.StockMovement{
		SKU:       in.SKU,
		Date:      date,
		Type:      in.Type,
		Quantity:  in.Quantity,
		UnitValue: in.UnitValue,
	})
}
