package repository

import (
	"errors"
	"fmt"

	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/domain/entity"
	domrepo "github.com/jhoicas/invoice-processor/internal/domain/repository"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database"
	"github.com/shopspring/decimal"
)

var _ domrepo.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre cualquier database.Adapter.
type ProductRepo struct {
	adapter database.Adapter
	table   string
}

// NewProductRepository construye el repositorio. La tabla por defecto es products.
func NewProductRepository(adapter database.Adapter) *ProductRepo {
	return &ProductRepo{adapter: adapter, table: "products"}
}

// FindByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) FindByID(id int64) (*entity.Product, error) {
	record, err := r.adapter.FindByID(r.table, id)
	if err != nil || record == nil {
		return nil, err
	}
	return productFromRecord(record), nil
}

// FindAll lista productos con paginación.
func (r *ProductRepo) FindAll(page, perPage int) ([]*entity.Product, error) {
	records, err := r.adapter.FindAll(r.table, page, perPage)
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Product, 0, len(records))
	for _, record := range records {
		list = append(list, productFromRecord(record))
	}
	return list, nil
}

// Save inserta cuando ID == 0 y actualiza en caso contrario.
func (r *ProductRepo) Save(product *entity.Product) (*entity.Product, error) {
	if product == nil {
		return nil, domain.ErrInvalidEntity
	}
	data := database.Record{
		"name":  product.Name,
		"price": product.Price,
	}
	if product.ID != 0 {
		if _, err := r.adapter.Update(r.table, product.ID, data); err != nil {
			return nil, err
		}
		return product, nil
	}
	id, err := r.adapter.Insert(r.table, data)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return product, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int64) (bool, error) {
	return r.adapter.Delete(r.table, id)
}

// FindByName busca por la clave natural. Devuelve nil si no existe.
func (r *ProductRepo) FindByName(name string) (*entity.Product, error) {
	record, err := r.adapter.FindByField(r.table, "name", name)
	if err != nil || record == nil {
		return nil, err
	}
	return productFromRecord(record), nil
}

// FindOrCreate busca por nombre; crea el producto solo si no existe.
// Si ya existe, el precio almacenado se conserva aunque difiera del recibido.
func (r *ProductRepo) FindOrCreate(name string, price decimal.Decimal) (*entity.Product, error) {
	existing, err := r.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	product, err := r.Save(&entity.Product{Name: name, Price: price})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			if winner, findErr := r.FindByName(name); findErr == nil && winner != nil {
				return winner, nil
			}
		}
		return nil, fmt.Errorf("find or create product %q: %w", name, err)
	}
	return product, nil
}

func productFromRecord(record database.Record) *entity.Product {
	return &entity.Product{
		ID:    database.AsInt64(record["id"]),
		Name:  database.AsString(record["name"]),
		Price: database.AsDecimal(record["price"]),
	}
}
