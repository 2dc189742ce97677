package invoicing

import (
	"github.com/jhoicas/invoice-processor/internal/application/dto"
	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/domain/repository"
)

const defaultPerPage = 20

// InvoiceService casos de uso de lectura de facturas.
type InvoiceService struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
}

// NewInvoiceService construye el servicio.
func NewInvoiceService(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
) *InvoiceService {
	return &InvoiceService{invoices: invoices, customers: customers}
}

// PaginatedInvoices lista cabeceras de factura con paginación 1-indexada.
func (s *InvoiceService) PaginatedInvoices(page, perPage int) ([]dto.InvoiceSummary, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	invoices, err := s.invoices.FindAll(page, perPage)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceSummary, 0, len(invoices))
	for _, invoice := range invoices {
		out = append(out, dto.NewInvoiceSummary(invoice))
	}
	return out, nil
}

// InvoiceDetails arma la vista completa de una factura: cabecera, cliente y
// líneas con nombre de producto. Devuelve ErrInvoiceNotFound si no existe.
func (s *InvoiceService) InvoiceDetails(id int64) (*dto.InvoiceDetails, error) {
	invoice, err := s.invoices.FindByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	items, err := s.invoices.GetItems(id)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.FindByID(invoice.CustomerID)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceDetails{
		Invoice:  dto.NewInvoiceSummary(invoice),
		Customer: dto.NewCustomerResponse(customer),
		Items:    items,
	}, nil
}
