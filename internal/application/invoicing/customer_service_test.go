package invoicing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-processor/internal/application/dto"
	"github.com/jhoicas/invoice-processor/internal/application/invoicing"
	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database/memory"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/repository"
)

func TestCustomerService_Create(t *testing.T) {
	svc := invoicing.NewCustomerService(repository.NewCustomerRepository(memory.NewAdapter()))

	created, err := svc.Create(dto.CreateCustomerRequest{Name: "John Doe", Address: "123 Main St"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "John Doe", created.Name)
}

func TestCustomerService_CreateNombreVacio(t *testing.T) {
	svc := invoicing.NewCustomerService(repository.NewCustomerRepository(memory.NewAdapter()))

	_, err := svc.Create(dto.CreateCustomerRequest{Address: "123 Main St"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCustomerService_CreateDuplicado(t *testing.T) {
	svc := invoicing.NewCustomerService(repository.NewCustomerRepository(memory.NewAdapter()))

	_, err := svc.Create(dto.CreateCustomerRequest{Name: "John Doe"})
	require.NoError(t, err)

	_, err = svc.Create(dto.CreateCustomerRequest{Name: "John Doe"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestProductService_CreateYList(t *testing.T) {
	svc := invoicing.NewProductService(repository.NewProductRepository(memory.NewAdapter()))

	created, err := svc.Create(dto.CreateProductRequest{Name: "Product A", Price: decimal.NewFromFloat(10.50)})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.Create(dto.CreateProductRequest{Name: "Product A", Price: decimal.NewFromInt(99)})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	list, err := svc.List(0, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, decimal.NewFromFloat(10.50).Equal(list[0].Price))
}
