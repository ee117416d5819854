package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpacevedo/inventario-pro/internal/application/analytics"
	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
)

type fakeStatusRepo struct {
	rows []entity.InventoryStatus
	err  error
}

func (f *fakeStatusRepo) GetInventoryStatus(context.Context) ([]entity.InventoryStatus, error) {
	return f.rows, f.err
}

func TestDashboard_ResumenAgregaKPIs(t *testing.T) {
	repo := &fakeStatusRepo{rows: []entity.InventoryStatus{
		{SKU: "A1", CurrentStock: 10, AlertState: entity.AlertNormal},
		{SKU: "A2", CurrentStock: 2, AlertState: entity.AlertCritico},
		{SKU: "A3", CurrentStock: 0, AlertState: entity.AlertCritico},
		{SKU: "A4", CurrentStock: 4, AlertState: entity.AlertBajo},
	}}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalProducts)
	assert.Equal(t, 16, summary.TotalStock)
	assert.Equal(t, 2, summary.CriticalCount)
	// stock total 16 × valor de referencia 10
	assert.Equal(t, "160", summary.EstimatedValue.String())
	assert.NotEmpty(t, summary.EstimatedValueNote)
	assert.Equal(t, map[string]int{
		entity.AlertNormal:  1,
		entity.AlertCritico: 2,
		entity.AlertBajo:    1,
	}, summary.AlertDistribution)
}

func TestDashboard_InventarioVacio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeStatusRepo{})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.TotalProducts)
	assert.Zero(t, summary.TotalStock)
	assert.Zero(t, summary.CriticalCount)
	assert.True(t, summary.EstimatedValue.IsZero())
}

func TestDashboard_ErrorDeRepositorioSePropaga(t *testing.T) {
	boom := errors.New("timeout")
	uc := analytics.NewDashboardUseCase(&fakeStatusRepo{err: boom})

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestDashboard_DetalleConservaFilas(t *testing.T) {
	repo := &fakeStatusRepo{rows: []entity.InventoryStatus{
		{SKU: "A1", Name: "Tornillo", Category: "Ferretería", CurrentStock: 3, MinStock: 5, AlertState: entity.AlertBajo},
	}}
	uc := analytics.NewDashboardUseCase(repo)

	detail, err := uc.GetDetail(context.Background())
	require.NoError(t, err)
	require.Len(t, detail, 1)
	assert.Equal(t, "A1", detail[0].SKU)
	assert.Equal(t, "Ferretería", detail[0].Category)
	assert.Equal(t, entity.AlertBajo, detail[0].AlertState)
}
