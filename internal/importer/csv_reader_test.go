package importer_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/importer"
)

// writeTempCSV escribe un CSV de prueba y devuelve su ruta.
func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "facturas.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVReader_FilasCompletas(t *testing.T) {
	// "Qyantity" es el error de tipeo histórico de los archivos de origen
	path := writeTempCSV(t, `invoice,Invoice Date,Customer Name,Customer Address,Product Name,Qyantity,Price,Total,Grand Total
1,43831,John Doe,"123 Main St, City",Product A,2,10.50,21.00,21.00
1,43831,John Doe,"123 Main St, City",Product B,1,15.00,15.00,36.00
2,43832,Jane Smith,"456 Oak Ave, Town",Product C,3,8.00,24.00,24.00
`)

	reader, err := importer.NewReader(path)
	require.NoError(t, err)
	rows, err := reader.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first := rows[0]
	assert.Equal(t, "1", first.InvoiceKey)
	assert.Equal(t, "43831", first.Date)
	assert.Equal(t, "John Doe", first.CustomerName)
	assert.Equal(t, "123 Main St, City", first.CustomerAddress)
	assert.Equal(t, "Product A", first.ProductName)
	assert.Equal(t, 2, first.Quantity)
	assert.True(t, decimal.NewFromFloat(10.50).Equal(first.Price))
	assert.True(t, decimal.NewFromFloat(21.00).Equal(first.Total))
	assert.True(t, decimal.NewFromFloat(21.00).Equal(first.GrandTotal))

	assert.Equal(t, "2", rows[2].InvoiceKey)
	assert.Equal(t, "Jane Smith", rows[2].CustomerName)
}

func TestCSVReader_CeldasFaltantesDegradanEnSilencio(t *testing.T) {
	// Fila corta: los numéricos ausentes quedan en cero, los textos en vacío
	path := writeTempCSV(t, `invoice,Invoice Date,Customer Name,Customer Address,Product Name,Quantity,Price,Total,Grand Total
1,2020-01-01,John Doe
`)

	reader := importer.NewCSVReader(path)
	rows, err := reader.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "", row.ProductName)
	assert.Equal(t, 0, row.Quantity)
	assert.True(t, row.Price.IsZero())
	assert.True(t, row.GrandTotal.IsZero())
}

func TestCSVReader_ArchivoVacio(t *testing.T) {
	path := writeTempCSV(t, "")
	rows, err := importer.NewCSVReader(path).Rows()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNewReader_ExtensionNoSoportada(t *testing.T) {
	_, err := importer.NewReader("facturas.pdf")
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
}

func TestSliceReader_DevuelveFilasTalCual(t *testing.T) {
	rows := []importer.Row{{InvoiceKey: "1", ProductName: "Product A"}}
	got, err := importer.NewSliceReader(rows).Rows()
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
