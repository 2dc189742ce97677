package repository

import (
	"context"

	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/domain/entity"
	domrepo "github.com/jhoicas/invoice-processor/internal/domain/repository"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database"
	"github.com/shopspring/decimal"
)

var _ domrepo.InvoiceRepository = (*InvoiceRepo)(nil)

// itemsPageSize cubre el volumen esperado de líneas por import; los items se
// recuperan vía FindAll del adapter porque el contrato no tiene findAllByField.
const itemsPageSize = 1000

// InvoiceRepo implementación de InvoiceRepository sobre cualquier database.Adapter.
// Maneja la tabla de cabeceras y la de líneas (invoice_items).
type InvoiceRepo struct {
	adapter    database.Adapter
	table      string
	itemsTable string
}

// NewInvoiceRepository construye el repositorio.
func NewInvoiceRepository(adapter database.Adapter) *InvoiceRepo {
	return &InvoiceRepo{adapter: adapter, table: "invoices", itemsTable: "invoice_items"}
}

// FindByID obtiene la cabecera de una factura por ID. Devuelve nil si no existe.
func (r *InvoiceRepo) FindByID(id int64) (*entity.Invoice, error) {
	record, err := r.adapter.FindByID(r.table, id)
	if err != nil || record == nil {
		return nil, err
	}
	return invoiceFromRecord(record), nil
}

// FindAll lista cabeceras con paginación.
func (r *InvoiceRepo) FindAll(page, perPage int) ([]*entity.Invoice, error) {
	records, err := r.adapter.FindAll(r.table, page, perPage)
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Invoice, 0, len(records))
	for _, record := range records {
		list = append(list, invoiceFromRecord(record))
	}
	return list, nil
}

// Save inserta o actualiza solo la cabecera; las líneas van por SaveWithItems.
func (r *InvoiceRepo) Save(invoice *entity.Invoice) (*entity.Invoice, error) {
	if invoice == nil {
		return nil, domain.ErrInvalidEntity
	}
	data := database.Record{
		"customer_id":  invoice.CustomerID,
		"invoice_date": invoice.Date,
		"grand_total":  invoice.GrandTotal,
	}
	if invoice.ID != 0 {
		if _, err := r.adapter.Update(r.table, invoice.ID, data); err != nil {
			return nil, err
		}
		return invoice, nil
	}
	id, err := r.adapter.Insert(r.table, data)
	if err != nil {
		return nil, err
	}
	invoice.ID = id
	return invoice, nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(id int64) (bool, error) {
	return r.adapter.Delete(r.table, id)
}

// Create inserta la cabecera desde datos sueltos y devuelve el ID generado.
func (r *InvoiceRepo) Create(data domrepo.CreateInvoiceData) (int64, error) {
	return r.adapter.Insert(r.table, database.Record{
		"customer_id":  data.CustomerID,
		"invoice_date": data.Date,
		"grand_total":  data.GrandTotal,
	})
}

// GetItems devuelve las líneas de la factura con el nombre de producto resuelto.
// El precio unitario se resuelve con prioridad:
// unit_price almacenado → price → total/quantity → 0.
func (r *InvoiceRepo) GetItems(invoiceID int64) ([]*entity.InvoiceItemView, error) {
	records, err := r.adapter.FindAll(r.itemsTable, 1, itemsPageSize)
	if err != nil {
		return nil, err
	}
	var items []*entity.InvoiceItemView
	for _, record := range records {
		if database.AsInt64(record["invoice_id"]) != invoiceID {
			continue
		}
		productID := database.AsInt64(record["product_id"])
		productName := "Unknown Product"
		if productRecord, err := r.adapter.FindByID("products", productID); err != nil {
			return nil, err
		} else if productRecord != nil {
			productName = database.AsString(productRecord["name"])
		}
		items = append(items, &entity.InvoiceItemView{
			ID:          database.AsInt64(record["id"]),
			ProductID:   productID,
			ProductName: productName,
			Quantity:    database.AsInt(record["quantity"]),
			UnitPrice:   resolveUnitPrice(record),
			Total:       database.AsDecimal(record["total"]),
		})
	}
	return items, nil
}

// AddItem inserta la línea e incrementa el grand_total de la factura en
// quantity × unit_price, todo dentro de una transacción: si la factura no
// existe no queda ninguna línea huérfana insertada.
func (r *InvoiceRepo) AddItem(ctx context.Context, invoiceID int64, item domrepo.ItemData) (bool, error) {
	added := false
	err := r.adapter.WithinTx(ctx, func(tx database.Adapter) error {
		invoiceRecord, err := tx.FindByID(r.table, invoiceID)
		if err != nil {
			return err
		}
		if invoiceRecord == nil {
			return nil
		}
		_, err = tx.Insert(r.itemsTable, database.Record{
			"invoice_id": invoiceID,
			"product_id": item.ProductID,
			"quantity":   item.Quantity,
			"unit_price": item.UnitPrice,
			"total":      item.Total,
		})
		if err != nil {
			return err
		}
		increment := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		newTotal := database.AsDecimal(invoiceRecord["grand_total"]).Add(increment)
		if _, err := tx.Update(r.table, invoiceID, database.Record{"grand_total": newTotal}); err != nil {
			return err
		}
		added = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

// SaveWithItems persiste la cabecera y todas sus líneas en una transacción.
// Es la ruta del import: un grupo de factura completo o nada.
func (r *InvoiceRepo) SaveWithItems(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error) {
	if invoice == nil {
		return nil, domain.ErrInvalidEntity
	}
	err := r.adapter.WithinTx(ctx, func(tx database.Adapter) error {
		txRepo := &InvoiceRepo{adapter: tx, table: r.table, itemsTable: r.itemsTable}
		if _, err := txRepo.Save(invoice); err != nil {
			return err
		}
		for _, item := range invoice.Items {
			item.InvoiceID = invoice.ID
			id, err := tx.Insert(r.itemsTable, database.Record{
				"invoice_id": item.InvoiceID,
				"product_id": item.ProductID,
				"quantity":   item.Quantity,
				"unit_price": item.UnitPrice,
				"total":      item.Total,
			})
			if err != nil {
				return err
			}
			item.ID = id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// resolveUnitPrice aplica la cadena de fallback sobre el registro crudo.
// La presencia de la clave manda: un unit_price explícito (aunque sea 0)
// gana sobre los derivados.
func resolveUnitPrice(record database.Record) decimal.Decimal {
	if value, ok := record["unit_price"]; ok && value != nil {
		return database.AsDecimal(value)
	}
	if value, ok := record["price"]; ok && value != nil {
		return database.AsDecimal(value)
	}
	quantity := database.AsInt64(record["quantity"])
	if quantity > 0 {
		return database.AsDecimal(record["total"]).Div(decimal.NewFromInt(quantity))
	}
	return decimal.Zero
}

func invoiceFromRecord(record database.Record) *entity.Invoice {
	return &entity.Invoice{
		ID:         database.AsInt64(record["id"]),
		Date:       database.AsTime(record["invoice_date"]),
		CustomerID: database.AsInt64(record["customer_id"]),
		GrandTotal: database.AsDecimal(record["grand_total"]),
	}
}
