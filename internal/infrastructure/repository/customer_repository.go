package repository

import (
	"errors"
	"fmt"

	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/domain/entity"
	domrepo "github.com/jhoicas/invoice-processor/internal/domain/repository"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database"
)

var _ domrepo.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre cualquier
// database.Adapter. No conoce SQL ni BSON: solo el contrato del adapter.
type CustomerRepo struct {
	adapter database.Adapter
	table   string
}

// NewCustomerRepository construye el repositorio. La tabla por defecto es customers.
func NewCustomerRepository(adapter database.Adapter) *CustomerRepo {
	return &CustomerRepo{adapter: adapter, table: "customers"}
}

// FindByID obtiene un cliente por ID. Devuelve nil si no existe.
func (r *CustomerRepo) FindByID(id int64) (*entity.Customer, error) {
	record, err := r.adapter.FindByID(r.table, id)
	if err != nil || record == nil {
		return nil, err
	}
	return customerFromRecord(record), nil
}

// FindAll lista clientes con paginación.
func (r *CustomerRepo) FindAll(page, perPage int) ([]*entity.Customer, error) {
	records, err := r.adapter.FindAll(r.table, page, perPage)
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Customer, 0, len(records))
	for _, record := range records {
		list = append(list, customerFromRecord(record))
	}
	return list, nil
}

// Save inserta cuando ID == 0 y actualiza en caso contrario.
func (r *CustomerRepo) Save(customer *entity.Customer) (*entity.Customer, error) {
	if customer == nil {
		return nil, domain.ErrInvalidEntity
	}
	data := database.Record{
		"name":    customer.Name,
		"address": customer.Address,
	}
	if customer.ID != 0 {
		if _, err := r.adapter.Update(r.table, customer.ID, data); err != nil {
			return nil, err
		}
		return customer, nil
	}
	id, err := r.adapter.Insert(r.table, data)
	if err != nil {
		return nil, err
	}
	customer.ID = id
	return customer, nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id int64) (bool, error) {
	return r.adapter.Delete(r.table, id)
}

// FindByName busca por la clave natural. Devuelve nil si no existe.
func (r *CustomerRepo) FindByName(name string) (*entity.Customer, error) {
	record, err := r.adapter.FindByField(r.table, "name", name)
	if err != nil || record == nil {
		return nil, err
	}
	return customerFromRecord(record), nil
}

// FindOrCreate busca por nombre y crea el cliente solo si no existe.
// Ante una carrera con otro import (insert concurrente del mismo nombre),
// el índice único produce ErrDuplicate y se relee la fila ganadora.
func (r *CustomerRepo) FindOrCreate(name, address string) (*entity.Customer, error) {
	existing, err := r.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	customer, err := r.Save(&entity.Customer{Name: name, Address: address})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			if winner, findErr := r.FindByName(name); findErr == nil && winner != nil {
				return winner, nil
			}
		}
		return nil, fmt.Errorf("find or create customer %q: %w", name, err)
	}
	return customer, nil
}

func customerFromRecord(record database.Record) *entity.Customer {
	return &entity.Customer{
		ID:      database.AsInt64(record["id"]),
		Name:    database.AsString(record["name"]),
		Address: database.AsString(record["address"]),
	}
}
