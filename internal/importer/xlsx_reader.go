package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXReader lee la primera hoja de un .xlsx con encabezados en la primera fila.
type XLSXReader struct {
	path string
}

// NewXLSXReader construye el lector para la ruta dada.
func NewXLSXReader(path string) *XLSXReader {
	return &XLSXReader{path: path}
}

// Rows lee la primera hoja completa y devuelve las filas planas.
// Las fechas seriales de Excel llegan como celdas numéricas y se convierten
// más adelante en el pipeline (ver ConvertExcelDate).
func (r *XLSXReader) Rows() ([]Row, error) {
	file, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", r.path, err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("sin hojas en %s", r.path)
	}
	cells, err := file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s: %w", sheet, err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	index := headerIndex(cells[0])
	rows := make([]Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		rows = append(rows, rowFromCells(line, index))
	}
	return rows, nil
}
