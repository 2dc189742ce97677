package importer

import (
	"fmt"
	"strconv"
	"time"
)

// excelEpoch es el día cero del sistema de fechas 1900 de Excel. El offset
// de dos días absorbe el bug histórico del año bisiesto 1900.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ConvertExcelDate interpreta la celda de fecha del origen: un serial
// numérico de Excel se convierte sumando N días a 1899-12-30; una fecha en
// texto "YYYY-MM-DD" pasa directo.
func ConvertExcelDate(cell string) (time.Time, error) {
	if serial, err := strconv.Atoi(cell); err == nil {
		return excelEpoch.AddDate(0, 0, serial), nil
	}
	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		return excelEpoch.AddDate(0, 0, int(serial)), nil
	}
	date, err := time.Parse("2006-01-02", cell)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: %w", cell, err)
	}
	return date, nil
}
