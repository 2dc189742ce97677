package export_test

import (
	"encoding/json"
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-processor/internal/application/dto"
	"github.com/jhoicas/invoice-processor/internal/domain/entity"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/export"
)

func sampleDetails() []*dto.InvoiceDetails {
	return []*dto.InvoiceDetails{
		{
			Invoice: dto.InvoiceSummary{
				ID:         1,
				Date:       "2020-01-01",
				CustomerID: 1,
				GrandTotal: decimal.NewFromFloat(36.00),
			},
			Customer: &dto.CustomerResponse{ID: 1, Name: "John Doe", Address: "123 Main St"},
			Items: []*entity.InvoiceItemView{
				{
					ID:          1,
					ProductID:   1,
					ProductName: "Product A",
					Quantity:    2,
					UnitPrice:   decimal.NewFromFloat(10.50),
					Total:       decimal.NewFromFloat(21.00),
				},
			},
		},
	}
}

func TestXMLExporter_EstructuraDelDocumento(t *testing.T) {
	body, err := export.NewXMLExporter().Export(sampleDetails())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(body))

	root := doc.SelectElement("invoices")
	require.NotNil(t, root)

	invoiceNode := root.SelectElement("invoice")
	require.NotNil(t, invoiceNode)
	assert.Equal(t, "1", invoiceNode.SelectElement("id").Text())
	assert.Equal(t, "2020-01-01", invoiceNode.SelectElement("date").Text())
	assert.Equal(t, "36.00", invoiceNode.SelectElement("grand_total").Text())

	customerNode := invoiceNode.SelectElement("customer")
	require.NotNil(t, customerNode)
	assert.Equal(t, "John Doe", customerNode.SelectElement("name").Text())

	items := invoiceNode.SelectElement("items").SelectElements("item")
	require.Len(t, items, 1)
	assert.Equal(t, "Product A", items[0].SelectElement("product_name").Text())
	assert.Equal(t, "2", items[0].SelectElement("quantity").Text())
	assert.Equal(t, "21.00", items[0].SelectElement("total").Text())
}

func TestXMLExporter_SinClienteOmiteElNodo(t *testing.T) {
	details := sampleDetails()
	details[0].Customer = nil

	body, err := export.NewXMLExporter().Export(details)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(body))
	invoiceNode := doc.SelectElement("invoices").SelectElement("invoice")
	assert.Nil(t, invoiceNode.SelectElement("customer"))
}

func TestJSONExporter_CuerpoValido(t *testing.T) {
	exporter := export.NewJSONExporter()
	body, err := exporter.Export(sampleDetails())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.Len(t, decoded, 1)

	invoice, ok := decoded[0]["invoice"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2020-01-01", invoice["invoice_date"])

	assert.Equal(t, "application/json", exporter.ContentType())
	assert.Equal(t, "json", exporter.FileExtension())
}
