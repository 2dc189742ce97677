package repository_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-processor/internal/infrastructure/database/memory"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/repository"
)

func TestProductRepo_FindOrCreateConservaPrecioOriginal(t *testing.T) {
	adapter := memory.NewAdapter()
	adapter.Unique("products", "name")
	repo := repository.NewProductRepository(adapter)

	first, err := repo.FindOrCreate("Product A", decimal.NewFromFloat(10.50))
	require.NoError(t, err)

	// El mismo nombre con otro precio no sobreescribe: gana la primera escritura
	second, err := repo.FindOrCreate("Product A", decimal.NewFromFloat(99.99))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, decimal.NewFromFloat(10.50).Equal(second.Price),
		"precio esperado 10.50, obtenido %s", second.Price)
}

func TestProductRepo_FindByName(t *testing.T) {
	repo := repository.NewProductRepository(memory.NewAdapter())

	_, err := repo.FindOrCreate("Product B", decimal.NewFromFloat(15))
	require.NoError(t, err)

	found, err := repo.FindByName("Product B")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Product B", found.Name)

	missing, err := repo.FindByName("no existe")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepo_FindAllPaginado(t *testing.T) {
	repo := repository.NewProductRepository(memory.NewAdapter())
	names := []string{"Product A", "Product B", "Product C"}
	for _, name := range names {
		_, err := repo.FindOrCreate(name, decimal.NewFromInt(1))
		require.NoError(t, err)
	}

	page1, err := repo.FindAll(1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)

	page2, err := repo.FindAll(2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)

	assert.Less(t, page1[1].ID, page2[0].ID, "orden determinista por id")
}
