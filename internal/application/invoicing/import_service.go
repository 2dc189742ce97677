package invoicing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/invoice-processor/internal/domain/entity"
	"github.com/jhoicas/invoice-processor/internal/domain/repository"
	"github.com/jhoicas/invoice-processor/internal/importer"
	"github.com/jhoicas/invoice-processor/pkg/logger"
)

// ImportResult son los contadores agregados de una corrida de import.
// customers y products cuentan entidades resueltas (encontradas o creadas),
// no solo creadas.
type ImportResult struct {
	Invoices  int `json:"invoices"`
	Customers int `json:"customers"`
	Products  int `json:"products"`
	Items     int `json:"items"`
}

// ImportError envuelve cualquier falla del lector o de los repositorios en un
// único error de import, señalando la fila que falló cuando se conoce.
type ImportError struct {
	Row int // 1-indexada sobre las filas de datos; -1 si no aplica
	Err error
}

func (e *ImportError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("import falló en la fila %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("import falló: %v", e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// ImportService convierte filas planas del origen tabular en clientes,
// productos y facturas normalizadas, deduplicando por nombre.
type ImportService struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	invoices  repository.InvoiceRepository
	log       *logger.Logger
}

// NewImportService construye el servicio.
func NewImportService(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	invoices repository.InvoiceRepository,
	log *logger.Logger,
) *ImportService {
	return &ImportService{customers: customers, products: products, invoices: invoices, log: log}
}

// ImportFile elige el lector por extensión y corre el import.
func (s *ImportService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	reader, err := importer.NewReader(path)
	if err != nil {
		return nil, &ImportError{Row: -1, Err: err}
	}
	return s.ImportFrom(ctx, reader)
}

// ImportFrom lee todas las filas del lector y corre el import.
func (s *ImportService) ImportFrom(ctx context.Context, reader importer.Reader) (*ImportResult, error) {
	rows, err := reader.Rows()
	if err != nil {
		return nil, &ImportError{Row: -1, Err: err}
	}
	return s.Import(ctx, rows)
}

// Import procesa las filas en orden. Un cambio en la clave de factura abre un
// grupo nuevo: se resuelve el cliente, se arma la cabecera con la fecha y el
// grand_total de la fila que abre el grupo, y cada fila aporta una línea con
// su producto resuelto. Al final cada grupo se persiste completo en una
// transacción, así el import es reintentable a granularidad de factura.
// Revisitar una clave ya vista no fusiona: abre otro grupo (sin lookback).
func (s *ImportService) Import(ctx context.Context, rows []importer.Row) (*ImportResult, error) {
	runID := uuid.New().String()
	result := &ImportResult{}
	if len(rows) == 0 {
		return result, nil
	}

	var invoices []*entity.Invoice
	var current *entity.Invoice
	currentKey := ""
	started := false

	for i, row := range rows {
		rowNum := i + 1
		if !started || row.InvoiceKey != currentKey {
			started = true
			currentKey = row.InvoiceKey

			customer, err := s.customers.FindOrCreate(row.CustomerName, row.CustomerAddress)
			if err != nil {
				return nil, &ImportError{Row: rowNum, Err: err}
			}
			date, err := importer.ConvertExcelDate(row.Date)
			if err != nil {
				return nil, &ImportError{Row: rowNum, Err: err}
			}
			current = &entity.Invoice{
				Date:       date,
				CustomerID: customer.ID,
				GrandTotal: row.GrandTotal,
			}
			invoices = append(invoices, current)
			result.Invoices++
			result.Customers++
		}

		product, err := s.products.FindOrCreate(row.ProductName, row.Price)
		if err != nil {
			return nil, &ImportError{Row: rowNum, Err: err}
		}
		current.AddItem(&entity.InvoiceItem{
			ProductID: product.ID,
			Quantity:  row.Quantity,
			UnitPrice: row.Price,
			Total:     row.Total,
		})
		result.Products++
		result.Items++
	}

	for _, invoice := range invoices {
		if _, err := s.invoices.SaveWithItems(ctx, invoice); err != nil {
			return nil, &ImportError{Row: -1, Err: fmt.Errorf("persistir factura de %s: %w", invoice.Date.Format("2006-01-02"), err)}
		}
	}

	s.log.Info().
		Str("run_id", runID).
		Int("invoices", result.Invoices).
		Int("customers", result.Customers).
		Int("products", result.Products).
		Int("items", result.Items).
		Msg("import finalizado")
	return result, nil
}
