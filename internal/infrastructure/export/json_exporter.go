package export

import (
	"encoding/json"

	"github.com/jhoicas/invoice-processor/internal/application/dto"
	"github.com/jhoicas/invoice-processor/internal/application/invoicing"
)

var _ invoicing.Exporter = (*JSONExporter)(nil)

// JSONExporter serializa las vistas de factura como JSON indentado.
type JSONExporter struct{}

// NewJSONExporter construye la estrategia.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export serializa el lote completo.
func (e *JSONExporter) Export(data []*dto.InvoiceDetails) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// ContentType devuelve application/json.
func (e *JSONExporter) ContentType() string { return "application/json" }

// FileExtension devuelve json.
func (e *JSONExporter) FileExtension() string { return "json" }
