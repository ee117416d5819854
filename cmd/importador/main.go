// importador carga un archivo CSV o XLSX de movimientos de inventario contra la base
// de datos, fila por fila, y muestra el reporte de la corrida.
//
// Uso: go run ./cmd/importador ruta/movimientos.csv
// La conexión se toma de la misma configuración que cmd/api (variables DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpacevedo/inventario-pro/internal/application/inventory"
	"github.com/jpacevedo/inventario-pro/internal/infrastructure/postgres"
	"github.com/jpacevedo/inventario-pro/internal/infrastructure/tabular"
	"github.com/jpacevedo/inventario-pro/pkg/config"
	"github.com/jpacevedo/inventario-pro/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: importador <archivo.csv|archivo.xlsx>")
		os.Exit(1)
	}
	path := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir archivo: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := tabular.ReadRecords(filepath.Base(path), f, cfg.Import.Charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer archivo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Archivo %s: %d filas\n", filepath.Base(path), len(rows))

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := inventory.NewBulkImportUseCase(postgres.NewSessionRunner(pool), log.Component("importador").Zerolog())

	report, err := uc.Run(ctx, rows, func(fraction float64) {
		fmt.Printf("\rProcesando... %3.0f%%", fraction*100)
	})
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Corrida abortada: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Corrida %s terminada\n", report.RunID)
	fmt.Printf("  Filas totales: %d\n", report.TotalRows)
	fmt.Printf("  Exitosas:      %d\n", report.SuccessCount)
	fmt.Printf("  Omitidas:      %d\n", report.SkippedCount)
	fmt.Printf("  Fallidas:      %d\n", len(report.Failures))
	for _, fail := range report.Failures {
		fmt.Printf("    fila %d: %s\n", fail.RowIndex+1, fail.Detail)
	}
	if len(report.Failures) > 0 {
		os.Exit(2)
	}
}
