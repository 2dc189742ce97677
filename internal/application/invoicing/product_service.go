package invoicing

import (
	"github.com/jhoicas/invoice-processor/internal/application/dto"
	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/domain/entity"
	"github.com/jhoicas/invoice-processor/internal/domain/repository"
)

// ProductService casos de uso de productos (alta explícita y listado).
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService construye el servicio.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// Create da de alta un producto; nombre duplicado devuelve ErrDuplicate.
func (s *ProductService) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
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
	product, err := s.repo.Save(&entity.Product{Name: in.Name, Price: in.Price})
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{ID: product.ID, Name: product.Name, Price: product.Price}, nil
}

// List lista productos con paginación.
func (s *ProductService) List(page, perPage int) ([]*dto.ProductResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	products, err := s.repo.FindAll(page, perPage)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, &dto.ProductResponse{ID: product.ID, Name: product.Name, Price: product.Price})
	}
	return out, nil
}
