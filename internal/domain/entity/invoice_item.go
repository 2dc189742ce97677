package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de detalle de una factura.
type InvoiceItem struct {
	ID        int64
	InvoiceID int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// InvoiceItemView es la línea enriquecida con el nombre del producto,
// tal como se expone en el detalle de la factura y en el export.
type InvoiceItemView struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}
