package database

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coerciones tolerantes: cada backend devuelve tipos nativos distintos para
// la misma columna (int32 de Mongo, decimal de pgx, float64 de JSON), así que
// los repositorios leen los Record a través de estos helpers.

// AsInt64 convierte el valor de un Record a int64; cero si falta o no aplica.
func AsInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	case decimal.Decimal:
		return n.IntPart()
	case string:
		parsed, _ := strconv.ParseInt(n, 10, 64)
		return parsed
	default:
		return 0
	}
}

// AsInt convierte a int (cantidades).
func AsInt(v any) int {
	return int(AsInt64(v))
}

// AsString convierte a string; cadena vacía si falta.
func AsString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}

// AsDecimal convierte montos a decimal; decimal.Zero si falta o no aplica.
func AsDecimal(v any) decimal.Decimal {
	switch d := v.(type) {
	case decimal.Decimal:
		return d
	case float64:
		return decimal.NewFromFloat(d)
	case int64:
		return decimal.NewFromInt(d)
	case int:
		return decimal.NewFromInt(int64(d))
	case int32:
		return decimal.NewFromInt32(d)
	case string:
		parsed, err := decimal.NewFromString(d)
		if err != nil {
			return decimal.Zero
		}
		return parsed
	case primitive.Decimal128:
		parsed, err := decimal.NewFromString(d.String())
		if err != nil {
			return decimal.Zero
		}
		return parsed
	default:
		return decimal.Zero
	}
}

// AsTime convierte fechas; acepta time.Time, DateTime de Mongo y "YYYY-MM-DD".
func AsTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case primitive.DateTime:
		return t.Time().UTC()
	case string:
		parsed, err := time.Parse("2006-01-02", t)
		if err != nil {
			return time.Time{}
		}
		return parsed
	default:
		return time.Time{}
	}
}
