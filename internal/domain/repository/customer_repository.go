package repository

import "github.com/jhoicas/invoice-processor/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// FindByID devuelve nil (sin error) cuando el cliente no existe.
	FindByID(id int64) (*entity.Customer, error)
	FindAll(page, perPage int) ([]*entity.Customer, error)
	// Save inserta cuando ID == 0 y actualiza en caso contrario; siempre
	// devuelve la entidad con el ID poblado.
	Save(customer *entity.Customer) (*entity.Customer, error)
	Delete(id int64) (bool, error)
	FindByName(name string) (*entity.Customer, error)
	// FindOrCreate busca por nombre y crea el cliente solo si no existe.
	FindOrCreate(name, address string) (*entity.Customer, error)
}
