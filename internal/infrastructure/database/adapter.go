package database

import "context"

// Record es una fila/documento normalizado como mapa clave→valor.
// Los adapters traducen la forma nativa de cada backend a este mapa para que
// los repositorios sean agnósticos del motor.
type Record = map[string]any

// Adapter es el contrato CRUD uniforme que implementa cada backend
// (PostgreSQL, MongoDB, memoria). Los repositorios solo dependen de esta
// interfaz; cambiar de backend no toca código de capas superiores.
type Adapter interface {
	// FindByID devuelve nil (sin error) cuando el registro no existe.
	FindByID(table string, id int64) (Record, error)
	// FindAll pagina con page 1-indexado y orden determinista por id
	// ascendente (offset = (page-1)*perPage).
	FindAll(table string, page, perPage int) ([]Record, error)
	// Insert persiste el registro y devuelve el ID asignado por el backend.
	// Violaciones de unicidad se traducen a domain.ErrDuplicate.
	Insert(table string, data Record) (int64, error)
	// Update devuelve false cuando el ID no existe (no-op idempotente).
	Update(table string, id int64, data Record) (bool, error)
	Delete(table string, id int64) (bool, error)
	// FindByField devuelve el primer registro (en orden de id) cuyo campo
	// coincide, o nil si no hay coincidencias.
	FindByField(table, field string, value any) (Record, error)
	// Execute es la vía de escape para consultas crudas. En backends de
	// documentos devuelve un handle opaco del driver.
	Execute(query string, args ...any) (any, error)
	// WithinTx ejecuta fn dentro de una transacción con un Adapter atado a
	// ella. Backends sin transacciones reales ofrecen garantía reducida.
	WithinTx(ctx context.Context, fn func(tx Adapter) error) error
}
