// Package tabular lee archivos tabulares (CSV o XLSX) y los convierte en las
// filas crudas que consume la carga masiva. El mapeo es por nombre exacto de
// columna; ninguna validación de contenido ocurre aquí.
package tabular

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jpacevedo/inventario-pro/internal/application/inventory"
)

// ReadRecords detecta el formato por la extensión del nombre de archivo y
// devuelve una RawRecord por fila de datos (la primera fila son encabezados).
// charset aplica solo a CSV: "latin1" decodifica ISO-8859-1, cualquier otro
// valor asume UTF-8.
func ReadRecords(filename string, r io.Reader, charset string) ([]inventory.RawRecord, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r, charset)
	case ".xlsx":
		return readXLSX(r)
	default:
		return nil, fmt.Errorf("formato no soportado: %q (se acepta .csv o .xlsx)", filepath.Ext(filename))
	}
}

// zipRecord arma la RawRecord de una fila: las celdas sobrantes se descartan y
// las columnas sin celda quedan ausentes (la coerción las tratará como vacías).
func zipRecord(headers, cells []string) inventory.RawRecord {
	rec := make(inventory.RawRecord, len(headers))
	for i, h := range headers {
		if h == "" || i >= len(cells) {
			continue
		}
		rec[h] = cells[i]
	}
	return rec
}

// cleanHeaders recorta espacios y remueve el BOM UTF-8 del primer encabezado.
func cleanHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}
