package repository

import (
	"github.com/jhoicas/invoice-processor/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	FindByID(id int64) (*entity.Product, error)
	FindAll(page, perPage int) ([]*entity.Product, error)
	Save(product *entity.Product) (*entity.Product, error)
	Delete(id int64) (bool, error)
	FindByName(name string) (*entity.Product, error)
	// FindOrCreate busca por nombre; si el producto ya existe conserva el
	// precio almacenado aunque difiera del recibido (first-write-wins).
	FindOrCreate(name string, price decimal.Decimal) (*entity.Product, error)
}
