package invoicing_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-processor/internal/application/invoicing"
	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/domain/entity"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database/memory"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/export"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/repository"
)

func TestExportService_FormatoNoRegistrado(t *testing.T) {
	adapter := memory.NewAdapter()
	svc := invoicing.NewExportService(
		repository.NewInvoiceRepository(adapter),
		repository.NewCustomerRepository(adapter),
	)

	_, _, err := svc.Export("yaml")
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
}

func TestExportService_ExportaJSONConContentType(t *testing.T) {
	adapter := memory.NewAdapter()
	customerRepo := repository.NewCustomerRepository(adapter)
	invoiceRepo := repository.NewInvoiceRepository(adapter)
	svc := invoicing.NewExportService(invoiceRepo, customerRepo)
	svc.Register("json", export.NewJSONExporter())

	customer, err := customerRepo.FindOrCreate("John Doe", "123 Main St")
	require.NoError(t, err)

	invoice := &entity.Invoice{
		Date:       time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		CustomerID: customer.ID,
		GrandTotal: decimal.NewFromFloat(36.00),
	}
	invoice.AddItem(&entity.InvoiceItem{
		ProductID: 1,
		Quantity:  2,
		UnitPrice: decimal.NewFromFloat(10.50),
		Total:     decimal.NewFromFloat(21.00),
	})
	_, err = invoiceRepo.SaveWithItems(context.Background(), invoice)
	require.NoError(t, err)

	body, contentType, err := svc.Export("json")
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.Len(t, decoded, 1)

	customerNode, ok := decoded[0]["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "John Doe", customerNode["name"])
}

func TestExportService_SinFacturasDevuelveListaVacia(t *testing.T) {
	adapter := memory.NewAdapter()
	svc := invoicing.NewExportService(
		repository.NewInvoiceRepository(adapter),
		repository.NewCustomerRepository(adapter),
	)
	svc.Register("json", export.NewJSONExporter())

	body, _, err := svc.Export("json")
	require.NoError(t, err)

	var decoded []any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Empty(t, decoded)
}
