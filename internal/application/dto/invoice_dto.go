package dto

import (
	"github.com/jhoicas/invoice-processor/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ErrorResponse cuerpo de error uniforme de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InvoiceSummary cabecera de factura tal como se expone hacia afuera.
type InvoiceSummary struct {
	ID         int64           `json:"id"`
	Date       string          `json:"invoice_date"`
	CustomerID int64           `json:"customer_id"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// CustomerResponse cliente expuesto por la API.
type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ProductResponse producto expuesto por la API.
type ProductResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CreateCustomerRequest alta explícita de cliente vía API.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CreateProductRequest alta explícita de producto vía API.
type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// InvoiceDetails vista completa de una factura: cabecera + cliente + líneas.
// Es también la unidad que serializan los exporters JSON/XML.
type InvoiceDetails struct {
	Invoice  InvoiceSummary            `json:"invoice"`
	Customer *CustomerResponse         `json:"customer"`
	Items    []*entity.InvoiceItemView `json:"items"`
}

// NewInvoiceSummary arma el resumen desde la entidad.
func NewInvoiceSummary(invoice *entity.Invoice) InvoiceSummary {
	return InvoiceSummary{
		ID:         invoice.ID,
		Date:       invoice.Date.Format("2006-01-02"),
		CustomerID: invoice.CustomerID,
		GrandTotal: invoice.GrandTotal,
	}
}

// NewCustomerResponse arma la respuesta desde la entidad; nil pasa de largo.
func NewCustomerResponse(customer *entity.Customer) *CustomerResponse {
	if customer == nil {
		return nil
	}
	return &CustomerResponse{ID: customer.ID, Name: customer.Name, Address: customer.Address}
}
