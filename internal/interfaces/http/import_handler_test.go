package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpacevedo/inventario-pro/internal/application/dto"
	"github.com/jpacevedo/inventario-pro/internal/application/inventory"
	"github.com/jpacevedo/inventario-pro/internal/domain"
	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
	"github.com/jpacevedo/inventario-pro/internal/domain/repository"
	apphttp "github.com/jpacevedo/inventario-pro/internal/interfaces/http"
)

type stubRecorder struct {
	rejectSKU map[string]string
	calls     int
}

func (s *stubRecorder) Register(_ context.Context, m entity.StockMovement) error {
	s.calls++
	if msg, ok := s.rejectSKU[m.SKU]; ok {
		return &domain.MovementRejectedError{Message: msg}
	}
	return nil
}

type stubSessions struct {
	recorder   repository.MovementRepository
	acquireErr error
}

func (s *stubSessions) RunSession(_ context.Context, fn func(repository.MovementRepository) error) error {
	if s.acquireErr != nil {
		return s.acquireErr
	}
	return fn(s.recorder)
}

func buildImportApp(sessions inventory.ImportSessionRunner, recorder repository.MovementRepository) *fiber.App {
	registerUC := inventory.NewRegisterMovementUseCase(recorder)
	importUC := inventory.NewBulkImportUseCase(sessions, zerolog.Nop())
	handler := apphttp.NewInventoryHandler(registerUC, importUC, "utf-8", 10)

	app := fiber.New()
	app.Post("/api/inventario/importar", handler.ImportMovements)
	return app
}

func multipartCSV(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postImport(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/inventario/importar", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeReport(t *testing.T, resp *http.Response) dto.ImportReportDTO {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var report dto.ImportReportDTO
	require.NoError(t, json.Unmarshal(raw, &report))
	return report
}

func TestImportEndpoint_ReporteCompleto(t *testing.T) {
	rec := &stubRecorder{rejectSKU: map[string]string{"A2": "SKU desconocido"}}
	app := buildImportApp(&stubSessions{recorder: rec}, rec)

	csv := "Código,cant,Valor Unitar\nA1,5,10.0\nA2,x,2.0\n,1,1.0\n"
	body, ct := multipartCSV(t, "movimientos.csv", csv)
	resp := postImport(t, app, body, ct)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	report := decodeReport(t, resp)
	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.SkippedCount)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 1, report.Failures[0].RowIndex)
	assert.Equal(t, "SKU desconocido", report.Failures[0].Detail)
	assert.NotEmpty(t, report.RunID)
}

func TestImportEndpoint_SinArchivo(t *testing.T) {
	rec := &stubRecorder{}
	app := buildImportApp(&stubSessions{recorder: rec}, rec)

	req := httptest.NewRequest(http.MethodPost, "/api/inventario/importar", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, rec.calls)
}

func TestImportEndpoint_FormatoNoSoportado(t *testing.T) {
	rec := &stubRecorder{}
	app := buildImportApp(&stubSessions{recorder: rec}, rec)

	body, ct := multipartCSV(t, "movimientos.txt", "lo que sea")
	resp := postImport(t, app, body, ct)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestImportEndpoint_BDNoDisponible(t *testing.T) {
	rec := &stubRecorder{}
	app := buildImportApp(&stubSessions{recorder: rec, acquireErr: domain.ErrStoreUnavailable}, rec)

	body, ct := multipartCSV(t, "movimientos.csv", "Código,cant\nA1,1\n")
	resp := postImport(t, app, body, ct)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Zero(t, rec.calls, "ninguna fila debe intentarse sin conexión")
}
