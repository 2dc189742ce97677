package entity

// Customer representa un cliente de facturación.
// El nombre actúa como clave natural para la deduplicación durante el import.
type Customer struct {
	ID      int64 // 0 = aún no persistido; el backend asigna el ID
	Name    string
	Address string
}
