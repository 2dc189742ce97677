package export

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/jhoicas/invoice-processor/internal/application/dto"
	"github.com/jhoicas/invoice-processor/internal/application/invoicing"
)

var _ invoicing.Exporter = (*XMLExporter)(nil)

// XMLExporter serializa las vistas de factura como XML:
// <invoices><invoice><id/><date/><grand_total/><customer/><items/></invoice></invoices>
type XMLExporter struct{}

// NewXMLExporter construye la estrategia.
func NewXMLExporter() *XMLExporter {
	return &XMLExporter{}
}

// Export serializa el lote completo.
func (e *XMLExporter) Export(data []*dto.InvoiceDetails) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("invoices")

	for _, view := range data {
		invoiceNode := root.CreateElement("invoice")
		invoiceNode.CreateElement("id").SetText(strconv.FormatInt(view.Invoice.ID, 10))
		invoiceNode.CreateElement("date").SetText(view.Invoice.Date)
		invoiceNode.CreateElement("grand_total").SetText(view.Invoice.GrandTotal.StringFixed(2))

		if view.Customer != nil {
			customerNode := invoiceNode.CreateElement("customer")
			customerNode.CreateElement("id").SetText(strconv.FormatInt(view.Customer.ID, 10))
			customerNode.CreateElement("name").SetText(view.Customer.Name)
			customerNode.CreateElement("address").SetText(view.Customer.Address)
		}

		itemsNode := invoiceNode.CreateElement("items")
		for _, item := range view.Items {
			itemNode := itemsNode.CreateElement("item")
			itemNode.CreateElement("product_name").SetText(item.ProductName)
			itemNode.CreateElement("quantity").SetText(strconv.Itoa(item.Quantity))
			itemNode.CreateElement("total").SetText(item.Total.StringFixed(2))
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// ContentType devuelve application/xml.
func (e *XMLExporter) ContentType() string { return "application/xml" }

// FileExtension devuelve xml.
func (e *XMLExporter) FileExtension() string { return "xml" }
