package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jhoicas/invoice-processor/internal/domain"
)

// Reader produce las filas planas de un origen tabular. La estrategia
// concreta (CSV, XLSX, slice en memoria) se elige por extensión del archivo.
type Reader interface {
	Rows() ([]Row, error)
}

// NewReader devuelve el lector adecuado para la extensión del archivo.
func NewReader(path string) (Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVReader(path), nil
	case ".xlsx":
		return NewXLSXReader(path), nil
	default:
		return nil, fmt.Errorf("no hay lector para %q: %w", path, domain.ErrUnsupportedFormat)
	}
}

// SliceReader entrega filas ya construidas; se usa en tests y como origen
// generado sin archivo de por medio.
type SliceReader struct {
	rows []Row
}

// NewSliceReader construye el lector en memoria.
func NewSliceReader(rows []Row) *SliceReader {
	return &SliceReader{rows: rows}
}

// Rows devuelve las filas tal cual.
func (r *SliceReader) Rows() ([]Row, error) {
	return r.rows, nil
}
