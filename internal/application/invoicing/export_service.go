package invoicing

import (
	"fmt"

	"github.com/jhoicas/invoice-processor/internal/application/dto"
	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/domain/repository"
)

// exportPageSize límite de facturas por export, heredado del comportamiento
// original (una sola página grande, sin streaming).
const exportPageSize = 1000

// Exporter serializa las vistas de factura a un formato concreto.
type Exporter interface {
	Export(data []*dto.InvoiceDetails) ([]byte, error)
	ContentType() string
	FileExtension() string
}

// ExportService arma las vistas factura+cliente+líneas y delega la
// serialización en la estrategia registrada para el formato pedido.
type ExportService struct {
	invoices   repository.InvoiceRepository
	customers  repository.CustomerRepository
	strategies map[string]Exporter
}

// NewExportService construye el servicio sin estrategias; registrarlas con Register.
func NewExportService(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
) *ExportService {
	return &ExportService{
		invoices:   invoices,
		customers:  customers,
		strategies: make(map[string]Exporter),
	}
}

// Register asocia un formato ("json", "xml") con su estrategia.
func (s *ExportService) Register(format string, exporter Exporter) {
	s.strategies[format] = exporter
}

// Export serializa todas las facturas en el formato pedido y devuelve el
// cuerpo junto con su content type.
func (s *ExportService) Export(format string) ([]byte, string, error) {
	exporter, ok := s.strategies[format]
	if !ok {
		return nil, "", fmt.Errorf("export %q: %w", format, domain.ErrUnsupportedFormat)
	}
	data, err := s.prepareData()
	if err != nil {
		return nil, "", err
	}
	body, err := exporter.Export(data)
	if err != nil {
		return nil, "", err
	}
	return body, exporter.ContentType(), nil
}

func (s *ExportService) prepareData() ([]*dto.InvoiceDetails, error) {
	invoices, err := s.invoices.FindAll(1, exportPageSize)
	if err != nil {
		return nil, err
	}
	views := make([]*dto.InvoiceDetails, 0, len(invoices))
	for _, invoice := range invoices {
		items, err := s.invoices.GetItems(invoice.ID)
		if err != nil {
			return nil, err
		}
		customer, err := s.customers.FindByID(invoice.CustomerID)
		if err != nil {
			return nil, err
		}
		views = append(views, &dto.InvoiceDetails{
			Invoice:  dto.NewInvoiceSummary(invoice),
			Customer: dto.NewCustomerResponse(customer),
			Items:    items,
		})
	}
	return views, nil
}
