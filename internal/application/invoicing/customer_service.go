package invoicing

import (
	"github.com/jhoicas/invoice-processor/internal/application/dto"
	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/domain/entity"
	"github.com/jhoicas/invoice-processor/internal/domain/repository"
)

// CustomerService casos de uso de clientes (alta explícita y listado).
type CustomerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService construye el servicio.
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// Create da de alta un cliente. El nombre es la clave natural: si ya existe
// uno igual se devuelve ErrDuplicate.
func (s *CustomerService) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := s.repo.FindByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	customer, err := s.repo.Save(&entity.Customer{Name: in.Name, Address: in.Address})
	if err != nil {
		return nil, err
	}
	return dto.NewCustomerResponse(customer), nil
}

// List lista clientes con paginación.
func (s *CustomerService) List(page, perPage int) ([]*dto.CustomerResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	customers, err := s.repo.FindAll(page, perPage)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		out = append(out, dto.NewCustomerResponse(customer))
	}
	return out, nil
}
