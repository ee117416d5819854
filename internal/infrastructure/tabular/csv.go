package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jpacevedo/inventario-pro/internal/application/inventory"
)

// readCSV lee un CSV con encabezados en la primera fila. Las planillas
// exportadas desde Excel en español suelen venir en ISO-8859-1; con
// charset "latin1" se decodifican antes de parsear.
func readCSV(r io.Reader, charset string) ([]inventory.RawRecord, error) {
	if strings.EqualFold(charset, "latin1") || strings.EqualFold(charset, "iso-8859-1") {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // filas con menos celdas que encabezados son válidas
	cr.TrimLeadingSpace = true

	headers, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv sin encabezados")
		}
		return nil, fmt.Errorf("leer encabezados csv: %w", err)
	}
	headers = cleanHeaders(headers)

	var records []inventory.RawRecord
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer fila csv %d: %w", len(records)+1, err)
		}
		records = append(records, zipRecord(headers, cells))
	}
	return records, nil
}
