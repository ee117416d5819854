package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jpacevedo/inventario-pro/internal/application/inventory"
)

// readXLSX lee la primera hoja de un libro XLSX: fila 1 = encabezados,
// el resto son datos. Celdas vacías al final de una fila simplemente no
// aparecen (excelize las recorta) y quedan como columnas ausentes.
func readXLSX(r io.Reader) ([]inventory.RawRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx sin hojas")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("xlsx sin encabezados")
	}

	headers := cleanHeaders(rows[0])
	var records []inventory.RawRecord
	for _, cells := range rows[1:] {
		records = append(records, zipRecord(headers, cells))
	}
	return records, nil
}
