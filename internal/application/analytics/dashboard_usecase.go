// Package analytics contiene los casos de uso de lectura para el dashboard de
// salud de inventario. Todo el cálculo de alertas vive en la BD; aquí solo se
// agregan KPIs sobre las filas que devuelve fn_obtener_estado_inventario().
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jpacevedo/inventario-pro/internal/application/dto"
	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
	"github.com/jpacevedo/inventario-pro/internal/domain/repository"
)

// referenceUnitValue es el valor unitario de referencia heredado del sistema
// original para el KPI de valor estimado. No es un precio real: el valor de
// los movimientos nunca participa en esta estimación. Se expone con una nota
// explícita en el DTO para que el front no lo presente como valoración contable.
var referenceUnitValue = decimal.NewFromInt(10)

const estimatedValueNote = "estimación de referencia: stock total × valor unitario fijo, no valoración contable"

// DashboardUseCase genera el resumen de KPIs y el detalle de existencias.
type DashboardUseCase struct {
	statusRepo repository.InventoryStatusRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statusRepo repository.InventoryStatusRepository) *DashboardUseCase {
	return &DashboardUseCase{statusRepo: statusRepo}
}

// GetSummary lee el estado completo del inventario y agrega los KPIs:
// total de productos, stock total, productos en CRÍTICO, valor estimado de
// referencia y distribución por estado de alerta.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	rows, err := uc.statusRepo.GetInventoryStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: estado de inventario: %w", err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalProducts:      len(rows),
		AlertDistribution:  map[string]int{},
		EstimatedValueNote: estimatedValueNote,
	}
	for _, r := range rows {
		summary.TotalStock += r.CurrentStock
		summary.AlertDistribution[r.AlertState]++
		if r.AlertState == entity.AlertCritico {
			summary.CriticalCount++
		}
	}
	summary.EstimatedValue = decimal.NewFromInt(int64(summary.TotalStock)).
		Mul(referenceUnitValue).Round(2)

	return summary, nil
}

// GetDetail devuelve las filas crudas del estado de inventario para la tabla
// de existencias.
func (uc *DashboardUseCase) GetDetail(ctx context.Context) ([]dto.InventoryStatusRowDTO, error) {
	rows, err := uc.statusRepo.GetInventoryStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: estado de inventario: %w", err)
	}
	out := make([]dto.InventoryStatusRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InventoryStatusRowDTO{
			SKU:          r.SKU,
			Name:         r.Name,
			Category:     r.Category,
			CurrentStock: r.CurrentStock,
			MinStock:     r.MinStock,
			AlertState:   r.AlertState,
		})
	}
	return out, nil
}

// StatusRows expone las filas crudas para otros consumidores (ej. el reporte PDF).
func (uc *DashboardUseCase) StatusRows(ctx context.Context) ([]entity.InventoryStatus, error) {
	return uc.statusRepo.GetInventoryStatus(ctx)
}
