package importer

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVReader lee el origen tabular desde un CSV con encabezados en la primera fila.
type CSVReader struct {
	path string
}

// NewCSVReader construye el lector para la ruta dada.
func NewCSVReader(path string) *CSVReader {
	return &CSVReader{path: path}
}

// Rows lee el archivo completo y devuelve las filas planas.
func (r *CSVReader) Rows() ([]Row, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", r.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // filas cortas degradan a celdas vacías
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", r.path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	index := headerIndex(records[0])
	rows := make([]Row, 0, len(records)-1)
	for _, cells := range records[1:] {
		rows = append(rows, rowFromCells(cells, index))
	}
	return rows, nil
}
