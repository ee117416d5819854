package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpacevedo/inventario-pro/internal/application/dto"
	"github.com/jpacevedo/inventario-pro/internal/application/inventory"
	"github.com/jpacevedo/inventario-pro/internal/domain"
	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
)

func validRequest() dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		SKU:       "SKU-001",
		Type:      entity.MovementTypeSalida,
		Quantity:  3,
		UnitValue: decimal.RequireFromString("12.50"),
	}
}

func TestRegisterMovement_Valido(t *testing.T) {
	rec := &fakeRecorder{}
	uc := inventory.NewRegisterMovementUseCase(rec)

	require.NoError(t, uc.Register(context.Background(), validRequest()))
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "SKU-001", rec.calls[0].SKU)
	assert.Equal(t, entity.MovementTypeSalida, rec.calls[0].Type)
}

func TestRegisterMovement_FechaExplicita(t *testing.T) {
	rec := &fakeRecorder{}
	uc := inventory.NewRegisterMovementUseCase(rec)

	in := validRequest()
	in.Date = "2026-03-15"
	require.NoError(t, uc.Register(context.Background(), in))
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "2026-03-15", rec.calls[0].Date.Format("2006-01-02"))
}

func TestRegisterMovement_Invalidos(t *testing.T) {
	cases := map[string]func(*dto.RegisterMovementRequest){
		"sin SKU":           func(r *dto.RegisterMovementRequest) { r.SKU = "" },
		"tipo desconocido":  func(r *dto.RegisterMovementRequest) { r.Type = "TRASLADO" },
		"cantidad cero":     func(r *dto.RegisterMovementRequest) { r.Quantity = 0 },
		"valor negativo":    func(r *dto.RegisterMovementRequest) { r.UnitValue = decimal.NewFromInt(-1) },
		"fecha mal formada": func(r *dto.RegisterMovementRequest) { r.Date = "15/03/2026" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rec := &fakeRecorder{}
			uc := inventory.NewRegisterMovementUseCase(rec)
			in := validRequest()
			mutate(&in)

			err := uc.Register(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, rec.calls, "la BD no debe tocarse con entrada inválida")
		})
	}
}

func TestRegisterMovement_RechazoDeLaBDSePropaga(t *testing.T) {
	rec := &fakeRecorder{rejectSKU: map[string]string{"SKU-001": "stock insuficiente"}}
	uc := inventory.NewRegisterMovementUseCase(rec)

	err := uc.Register(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, domain.IsMovementRejected(err))
	assert.Equal(t, "stock insuficiente", err.Error())
}
