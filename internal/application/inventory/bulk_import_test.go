package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpacevedo/inventario-pro/internal/application/inventory"
	"github.com/jpacevedo/inventario-pro/internal/domain"
	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
	"github.com/jpacevedo/inventario-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: grabadora de movimientos con rechazos programados y runner de sesión
// que simula la conexión dedicada de la corrida.
// ──────────────────────────────────────────────────────────────────────────────

type fakeRecorder struct {
	calls     []entity.StockMovement
	rejectSKU map[string]string // sku -> mensaje de rechazo de la BD
}

func (f *fakeRecorder) Register(_ context.Context, m entity.StockMovement) error {
	f.calls = append(f.calls, m)
	if msg, ok := f.rejectSKU[m.SKU]; ok {
		return &domain.MovementRejectedError{Message: msg}
	}
	return nil
}

type fakeSessions struct {
	recorder   repository.MovementRepository
	acquireErr error // simula BD inalcanzable al abrir la sesión
	released   bool
}

func (f *fakeSessions) RunSession(_ context.Context, fn func(repository.MovementRepository) error) error {
	if f.acquireErr != nil {
		return f.acquireErr
	}
	defer func() { f.released = true }()
	return fn(f.recorder)
}

func newRunner(t *testing.T, rejects map[string]string) (*inventory.BulkImportUseCase, *fakeRecorder, *fakeSessions) {
	t.Helper()
	rec := &fakeRecorder{rejectSKU: rejects}
	sess := &fakeSessions{recorder: rec}
	return inventory.NewBulkImportUseCase(sess, zerolog.Nop()), rec, sess
}

func row(sku, cant, valor string) inventory.RawRecord {
	r := inventory.RawRecord{}
	if sku != "-" {
		r[inventory.ColSKU] = sku
	}
	if cant != "-" {
		r[inventory.ColQuantity] = cant
	}
	if valor != "-" {
		r[inventory.ColUnitValue] = valor
	}
	return r
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: 1 éxito, 1 rechazo de la BD, 1 fila omitida.
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkImport_EscenarioMixto(t *testing.T) {
	uc, rec, _ := newRunner(t, map[string]string{"A2": "SKU desconocido"})

	rows := []inventory.RawRecord{
		row("A1", "5", "10.0"),
		row("A2", "x", "2.0"), // cantidad no numérica -> 0, la BD rechaza por SKU
		row("", "1", "1.0"),   // sin SKU -> omitida
	}

	report, err := uc.Run(context.Background(), rows, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.SkippedCount)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 1, report.Failures[0].RowIndex)
	assert.Equal(t, "SKU desconocido", report.Failures[0].Detail)

	// La fila omitida nunca llega a la BD
	require.Len(t, rec.calls, 2)
	assert.Equal(t, "A1", rec.calls[0].SKU)
	assert.Equal(t, "A2", rec.calls[1].SKU)
}

// Invariante de conteo: éxitos + fallos + omitidas == filas de entrada, para
// cualquier mezcla de filas.
func TestBulkImport_InvarianteDeConteo(t *testing.T) {
	uc, _, _ := newRunner(t, map[string]string{"MALO": "rechazado"})

	rows := []inventory.RawRecord{
		row("OK1", "1", "1"),
		row("", "9", "9"),
		row("MALO", "2", "2"),
		row("  ", "3", "3"), // SKU solo espacios cuenta como vacío
		row("OK2", "-", "-"),
	}

	report, err := uc.Run(context.Background(), rows, nil)
	require.NoError(t, err)
	assert.Equal(t, report.TotalRows,
		report.SuccessCount+len(report.Failures)+report.SkippedCount)
	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, 2, report.SkippedCount)
}

// Cantidad y valor ausentes o no numéricos se sustituyen por cero; la llamada
// a la BD procede con normalidad.
func TestBulkImport_CoercionConDefectoCero(t *testing.T) {
	uc, rec, _ := newRunner(t, nil)

	rows := []inventory.RawRecord{
		row("A1", "-", "-"),       // columnas ausentes
		row("A2", "", ""),         // presentes pero vacías
		row("A3", "abc", "xyz"),   // basura -> 0
		row("A4", "7.0", "19.90"), // decimal en cantidad se trunca
	}

	report, err := uc.Run(context.Background(), rows, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, report.SuccessCount)

	require.Len(t, rec.calls, 4)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, rec.calls[i].Quantity, "fila %d", i)
		assert.True(t, rec.calls[i].UnitValue.IsZero(), "fila %d", i)
	}
	assert.Equal(t, 7, rec.calls[3].Quantity)
	assert.True(t, rec.calls[3].UnitValue.Equal(decimal.RequireFromString("19.90")))
}

// Todas las filas son entradas con la fecha de proceso, nunca la del archivo.
func TestBulkImport_SiempreEntradaConFechaDeHoy(t *testing.T) {
	uc, rec, _ := newRunner(t, nil)

	_, err := uc.Run(context.Background(), []inventory.RawRecord{row("A1", "2", "5")}, nil)
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, entity.MovementTypeEntrada, rec.calls[0].Type)
	assert.False(t, rec.calls[0].Date.IsZero())
}

// El orden de procesamiento es el orden de entrada y los índices de fallo son
// estrictamente crecientes.
func TestBulkImport_OrdenPreservado(t *testing.T) {
	rejects := map[string]string{}
	var rows []inventory.RawRecord
	for i := 0; i < 10; i++ {
		sku := fmt.Sprintf("S%02d", i)
		rows = append(rows, row(sku, "1", "1"))
		if i%3 == 0 {
			rejects[sku] = "rechazado"
		}
	}

	uc, rec, _ := newRunner(t, rejects)
	report, err := uc.Run(context.Background(), rows, nil)
	require.NoError(t, err)

	for i, call := range rec.calls {
		assert.Equal(t, fmt.Sprintf("S%02d", i), call.SKU)
	}
	prev := -1
	for _, f := range report.Failures {
		assert.Greater(t, f.RowIndex, prev)
		prev = f.RowIndex
	}
}

// El fallo de una fila no impide intentar las siguientes.
func TestBulkImport_AislamientoDeFallos(t *testing.T) {
	uc, rec, _ := newRunner(t, map[string]string{"F1": "rechazo 1", "F2": "rechazo 2"})

	rows := []inventory.RawRecord{
		row("F1", "1", "1"),
		row("OK", "1", "1"),
		row("F2", "1", "1"),
	}
	report, err := uc.Run(context.Background(), rows, nil)
	require.NoError(t, err)

	assert.Len(t, rec.calls, 3, "todas las filas no omitidas deben intentarse")
	assert.Equal(t, 1, report.SuccessCount)
	assert.Len(t, report.Failures, 2)
}

// La fracción de avance es monótona no decreciente y llega exactamente a 1.0
// con la última fila, incluso si esa fila se omite.
func TestBulkImport_ProgresoMonotonoHastaUno(t *testing.T) {
	uc, _, _ := newRunner(t, map[string]string{"F": "rechazado"})

	rows := []inventory.RawRecord{
		row("A", "1", "1"),
		row("F", "1", "1"),
		row("B", "1", "1"),
		row("", "1", "1"), // omitida al final: el avance igual debe cerrar en 1.0
	}

	var fractions []float64
	_, err := uc.Run(context.Background(), rows, func(f float64) {
		fractions = append(fractions, f)
	})
	require.NoError(t, err)

	require.Len(t, fractions, len(rows))
	for i := 1; i < len(fractions); i++ {
		assert.GreaterOrEqual(t, fractions[i], fractions[i-1])
	}
	assert.InDelta(t, 1.0, fractions[len(fractions)-1], 1e-9)
}

// Todas las filas válidas y aceptadas: éxitos == total, sin fallos.
func TestBulkImport_TodoExitoso(t *testing.T) {
	uc, _, _ := newRunner(t, nil)

	rows := []inventory.RawRecord{
		row("A1", "5", "10"),
		row("A2", "3", "2.5"),
		row("A3", "1", "0"),
	}
	report, err := uc.Run(context.Background(), rows, nil)
	require.NoError(t, err)
	assert.Equal(t, len(rows), report.SuccessCount)
	assert.Empty(t, report.Failures)
	assert.Zero(t, report.SkippedCount)
}

// BD inalcanzable al abrir la sesión: la corrida aborta antes de la primera
// fila, no hay reporte y el error sube al llamador.
func TestBulkImport_SinConexionAbortaLaCorrida(t *testing.T) {
	rec := &fakeRecorder{}
	sess := &fakeSessions{recorder: rec, acquireErr: domain.ErrStoreUnavailable}
	uc := inventory.NewBulkImportUseCase(sess, zerolog.Nop())

	report, err := uc.Run(context.Background(), []inventory.RawRecord{row("A1", "1", "1")}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
	assert.Nil(t, report)
	assert.Empty(t, rec.calls, "ninguna fila debe procesarse sin conexión")
}

// La sesión se libera aunque la corrida tenga fallos por fila.
func TestBulkImport_SesionLiberadaSiempre(t *testing.T) {
	uc, _, sess := newRunner(t, map[string]string{"F": "rechazado"})

	_, err := uc.Run(context.Background(), []inventory.RawRecord{row("F", "1", "1")}, nil)
	require.NoError(t, err)
	assert.True(t, sess.released)
}

// Entrada vacía: reporte vacío sin divisiones por cero en el avance.
func TestBulkImport_EntradaVacia(t *testing.T) {
	uc, _, _ := newRunner(t, nil)

	report, err := uc.Run(context.Background(), nil, func(float64) {
		t.Fatal("no debe emitirse avance sin filas")
	})
	require.NoError(t, err)
	assert.Zero(t, report.TotalRows)
	assert.Zero(t, report.SuccessCount)
	assert.Empty(t, report.Failures)
}
