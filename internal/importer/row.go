package importer

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Row es la forma plana que producen todos los lectores, sea cual sea el
// formato de origen. Las celdas numéricas ausentes quedan en cero y las de
// texto en vacío: esta capa no valida, degrada en silencio.
type Row struct {
	// InvoiceKey agrupa filas contiguas en una misma factura.
	InvoiceKey string
	// Date es la celda cruda: serial de Excel ("43831") o fecha "2020-01-01".
	Date            string
	CustomerName    string
	CustomerAddress string
	ProductName     string
	Quantity        int
	Price           decimal.Decimal
	Total           decimal.Decimal
	GrandTotal      decimal.Decimal
}

// Encabezados canónicos tras normalizar (minúsculas, espacios colapsados).
// "qyantity" es un error de tipeo histórico en los archivos de origen que
// seguimos tolerando.
const (
	headerInvoice         = "invoice"
	headerInvoiceDate     = "invoice date"
	headerCustomerName    = "customer name"
	headerCustomerAddress = "customer address"
	headerProductName     = "product name"
	headerQuantity        = "quantity"
	headerQuantityTypo    = "qyantity"
	headerPrice           = "price"
	headerTotal           = "total"
	headerGrandTotal      = "grand total"
)

// normalizeHeader colapsa mayúsculas y espacios para casar encabezados.
func normalizeHeader(header string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(header))), " ")
}

// headerIndex mapea encabezado canónico → índice de columna.
func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, header := range headers {
		key := normalizeHeader(header)
		if key == headerQuantityTypo {
			key = headerQuantity
		}
		if _, taken := index[key]; !taken {
			index[key] = i
		}
	}
	return index
}

// rowFromCells arma una Row desde las celdas crudas según el índice de encabezados.
func rowFromCells(cells []string, index map[string]int) Row {
	cell := func(key string) string {
		i, ok := index[key]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}
	return Row{
		InvoiceKey:      cell(headerInvoice),
		Date:            cell(headerInvoiceDate),
		CustomerName:    cell(headerCustomerName),
		CustomerAddress: cell(headerCustomerAddress),
		ProductName:     cell(headerProductName),
		Quantity:        parseInt(cell(headerQuantity)),
		Price:           parseDecimal(cell(headerPrice)),
		Total:           parseDecimal(cell(headerTotal)),
		GrandTotal:      parseDecimal(cell(headerGrandTotal)),
	}
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Celdas como "2.0" que algunos exports producen para enteros
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
