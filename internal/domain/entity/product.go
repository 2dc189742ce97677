package entity

import "github.com/shopspring/decimal"

// Product representa un producto facturable.
// Price es el precio visto la primera vez que el producto aparece en un
// import; imports posteriores con otro precio no lo modifican.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}
