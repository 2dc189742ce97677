package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura y es dueña de sus líneas:
// los items no existen fuera de su factura.
type Invoice struct {
	ID         int64
	Date       time.Time
	CustomerID int64
	// GrandTotal viene del origen del import; no se recalcula desde los items.
	GrandTotal decimal.Decimal
	Items      []*InvoiceItem
}

// AddItem agrega una línea a la factura en memoria.
func (i *Invoice) AddItem(item *InvoiceItem) {
	i.Items = append(i.Items, item)
}
