package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-processor/internal/infrastructure/database/memory"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/repository"
)

func TestCustomerRepo_SaveYFindByID(t *testing.T) {
	repo := repository.NewCustomerRepository(memory.NewAdapter())

	created, err := repo.FindOrCreate("John Doe", "123 Main St")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "John Doe", found.Name)
	assert.Equal(t, "123 Main St", found.Address)
}

func TestCustomerRepo_FindByIDAusente(t *testing.T) {
	repo := repository.NewCustomerRepository(memory.NewAdapter())
	found, err := repo.FindByID(42)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCustomerRepo_FindOrCreateEsIdempotente(t *testing.T) {
	adapter := memory.NewAdapter()
	adapter.Unique("customers", "name")
	repo := repository.NewCustomerRepository(adapter)

	first, err := repo.FindOrCreate("John Doe", "123 Main St")
	require.NoError(t, err)

	// Segunda llamada con otra dirección: mismo ID, la dirección original gana
	second, err := repo.FindOrCreate("John Doe", "otra dirección")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "123 Main St", second.Address)

	all, err := repo.FindAll(1, 10)
	require.NoError(t, err)
	assert.Len(t, all, 1, "no debe quedar fila duplicada")
}

func TestCustomerRepo_Delete(t *testing.T) {
	repo := repository.NewCustomerRepository(memory.NewAdapter())
	created, err := repo.FindOrCreate("Jane Smith", "456 Oak Ave")
	require.NoError(t, err)

	ok, err := repo.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
