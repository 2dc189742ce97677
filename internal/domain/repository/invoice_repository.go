package repository

import (
	"context"
	"time"

	"github.com/jhoicas/invoice-processor/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateInvoiceData son los campos para crear una factura sin pasar por la
// entidad (ruta directa usada por el import).
type CreateInvoiceData struct {
	Date       time.Time
	CustomerID int64
	GrandTotal decimal.Decimal
}

// ItemData son los campos de una línea a agregar a una factura existente.
type ItemData struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	FindByID(id int64) (*entity.Invoice, error)
	FindAll(page, perPage int) ([]*entity.Invoice, error)
	Save(invoice *entity.Invoice) (*entity.Invoice, error)
	Delete(id int64) (bool, error)
	// Create inserta la cabecera y devuelve el ID generado.
	Create(data CreateInvoiceData) (int64, error)
	// GetItems devuelve las líneas de la factura con el nombre del producto
	// resuelto. El precio unitario se resuelve con prioridad:
	// unit_price almacenado → price → total/quantity → 0.
	GetItems(invoiceID int64) ([]*entity.InvoiceItemView, error)
	// AddItem inserta la línea e incrementa grand_total en quantity×unit_price
	// de forma atómica: si la factura no existe no queda línea insertada.
	AddItem(ctx context.Context, invoiceID int64, item ItemData) (bool, error)
	// SaveWithItems persiste cabecera y líneas en una sola transacción.
	SaveWithItems(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error)
}
