package invoicing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-processor/internal/application/invoicing"
	"github.com/jhoicas/invoice-processor/internal/importer"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database/memory"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/repository"
	"github.com/jhoicas/invoice-processor/pkg/logger"
)

// newImportFixture arma el servicio de import completo sobre el adapter en
// memoria, con los índices únicos que tendría un backend real.
func newImportFixture() (*invoicing.ImportService, *repository.InvoiceRepo, *repository.CustomerRepo, *repository.ProductRepo) {
	adapter := memory.NewAdapter()
	adapter.Unique("customers", "name")
	adapter.Unique("products", "name")

	customers := repository.NewCustomerRepository(adapter)
	products := repository.NewProductRepository(adapter)
	invoices := repository.NewInvoiceRepository(adapter)
	svc := invoicing.NewImportService(customers, products, invoices, logger.Nop())
	return svc, invoices, customers, products
}

func dec(value float64) decimal.Decimal { return decimal.NewFromFloat(value) }

func TestImport_AgrupaPorCambioDeClave(t *testing.T) {
	svc, invoiceRepo, _, _ := newImportFixture()

	// 3 filas, 2 grupos: la clave cambia en la tercera fila
	rows := []importer.Row{
		{InvoiceKey: "1", Date: "43831", CustomerName: "John Doe", CustomerAddress: "123 Main St",
			ProductName: "Product A", Quantity: 2, Price: dec(10.50), Total: dec(21.00), GrandTotal: dec(36.00)},
		{InvoiceKey: "1", Date: "43831", CustomerName: "John Doe", CustomerAddress: "123 Main St",
			ProductName: "Product B", Quantity: 1, Price: dec(15.00), Total: dec(15.00), GrandTotal: dec(36.00)},
		{InvoiceKey: "2", Date: "43832", CustomerName: "Jane Smith", CustomerAddress: "456 Oak Ave",
			ProductName: "Product C", Quantity: 3, Price: dec(8.00), Total: dec(24.00), GrandTotal: dec(24.00)},
	}

	result, err := svc.Import(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Invoices)
	assert.Equal(t, 2, result.Customers)
	assert.Equal(t, 3, result.Products)
	assert.Equal(t, 3, result.Items)

	invoices, err := invoiceRepo.FindAll(1, 10)
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	// El grand_total persistido es el de la fila que abre cada grupo
	assert.True(t, dec(36.00).Equal(invoices[0].GrandTotal))
	assert.True(t, dec(24.00).Equal(invoices[1].GrandTotal))
	assert.Equal(t, "2020-01-01", invoices[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2020-01-02", invoices[1].Date.Format("2006-01-02"))

	items, err := invoiceRepo.GetItems(invoices[0].ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestImport_ReusaClientesYProductosPorNombre(t *testing.T) {
	svc, _, customerRepo, productRepo := newImportFixture()

	rows := []importer.Row{
		{InvoiceKey: "1", Date: "43831", CustomerName: "John Doe",
			ProductName: "Product A", Quantity: 1, Price: dec(10), Total: dec(10), GrandTotal: dec(10)},
		{InvoiceKey: "2", Date: "43832", CustomerName: "John Doe",
			ProductName: "Product A", Quantity: 2, Price: dec(10), Total: dec(20), GrandTotal: dec(20)},
	}

	result, err := svc.Import(context.Background(), rows)
	require.NoError(t, err)

	// Los contadores cuentan resoluciones, no creaciones
	assert.Equal(t, 2, result.Customers)
	assert.Equal(t, 2, result.Products)

	customers, err := customerRepo.FindAll(1, 10)
	require.NoError(t, err)
	assert.Len(t, customers, 1, "el cliente se deduplica por nombre")

	products, err := productRepo.FindAll(1, 10)
	require.NoError(t, err)
	assert.Len(t, products, 1, "el producto se deduplica por nombre")
}

func TestImport_ClaveRevisitadaAbreOtraFactura(t *testing.T) {
	// Sin lookback: 1, 2, 1 produce tres facturas, no dos
	svc, invoiceRepo, _, _ := newImportFixture()

	rows := []importer.Row{
		{InvoiceKey: "1", Date: "43831", CustomerName: "John Doe", ProductName: "Product A",
			Quantity: 1, Price: dec(10), Total: dec(10), GrandTotal: dec(10)},
		{InvoiceKey: "2", Date: "43831", CustomerName: "Jane Smith", ProductName: "Product B",
			Quantity: 1, Price: dec(5), Total: dec(5), GrandTotal: dec(5)},
		{InvoiceKey: "1", Date: "43831", CustomerName: "John Doe", ProductName: "Product C",
			Quantity: 1, Price: dec(7), Total: dec(7), GrandTotal: dec(7)},
	}

	result, err := svc.Import(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Invoices)

	invoices, err := invoiceRepo.FindAll(1, 10)
	require.NoError(t, err)
	assert.Len(t, invoices, 3)
}

func TestImport_EntradaVacia(t *testing.T) {
	svc, _, _, _ := newImportFixture()

	result, err := svc.Import(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, &invoicing.ImportResult{}, result)
}

func TestImport_FechaInvalidaSenalaLaFila(t *testing.T) {
	svc, _, _, _ := newImportFixture()

	rows := []importer.Row{
		{InvoiceKey: "1", Date: "43831", CustomerName: "John Doe", ProductName: "Product A",
			Quantity: 1, Price: dec(10), Total: dec(10), GrandTotal: dec(10)},
		{InvoiceKey: "2", Date: "no-es-fecha", CustomerName: "Jane Smith", ProductName: "Product B",
			Quantity: 1, Price: dec(5), Total: dec(5), GrandTotal: dec(5)},
	}

	_, err := svc.Import(context.Background(), rows)
	require.Error(t, err)

	var importErr *invoicing.ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, 2, importErr.Row)
}

func TestImportFrom_LectorEnMemoria(t *testing.T) {
	svc, _, _, _ := newImportFixture()

	reader := importer.NewSliceReader([]importer.Row{
		{InvoiceKey: "1", Date: "2021-06-15", CustomerName: "John Doe", ProductName: "Product A",
			Quantity: 1, Price: dec(10), Total: dec(10), GrandTotal: dec(10)},
	})
	result, err := svc.ImportFrom(context.Background(), reader)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Invoices)
	assert.Equal(t, 1, result.Items)
}
