package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database"
)

var _ database.Adapter = (*Adapter)(nil)

// Adapter implementa database.Adapter en memoria. Se usa en los tests y como
// backend efímero para demos; el comportamiento replica el de los backends
// reales: IDs secuenciales, orden por id y ErrDuplicate en índices únicos.
type Adapter struct {
	mu      sync.RWMutex
	tables  map[string]map[int64]database.Record
	seq     map[string]int64
	uniques map[string][]string
}

// NewAdapter construye un adapter vacío.
func NewAdapter() *Adapter {
	return &Adapter{
		tables:  make(map[string]map[int64]database.Record),
		seq:     make(map[string]int64),
		uniques: make(map[string][]string),
	}
}

// Unique registra un índice único sobre field, como los índices de
// deduplicación de los backends reales.
func (a *Adapter) Unique(table, field string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.uniques[table] = append(a.uniques[table], field)
}

// FindByID devuelve una copia del registro o nil si no existe.
func (a *Adapter) FindByID(table string, id int64) (database.Record, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	record, ok := a.tables[table][id]
	if !ok {
		return nil, nil
	}
	return copyRecord(record), nil
}

// FindAll pagina en orden de id ascendente.
func (a *Adapter) FindAll(table string, page, perPage int) ([]database.Record, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if page < 1 {
		page = 1
	}
	ids := a.sortedIDs(table)
	offset := (page - 1) * perPage
	if offset >= len(ids) {
		return nil, nil
	}
	end := offset + perPage
	if end > len(ids) {
		end = len(ids)
	}
	records := make([]database.Record, 0, end-offset)
	for _, id := range ids[offset:end] {
		records = append(records, copyRecord(a.tables[table][id]))
	}
	return records, nil
}

// Insert asigna el siguiente id de la tabla y guarda una copia del registro.
func (a *Adapter) Insert(table string, data database.Record) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, field := range a.uniques[table] {
		if a.matchLocked(table, field, data[field]) != 0 {
			return 0, fmt.Errorf("insert %s: %w", table, domain.ErrDuplicate)
		}
	}
	a.seq[table]++
	id := a.seq[table]
	if a.tables[table] == nil {
		a.tables[table] = make(map[int64]database.Record)
	}
	record := copyRecord(data)
	record["id"] = id
	a.tables[table][id] = record
	return id, nil
}

// Update mezcla los campos recibidos; false si el id no existe.
func (a *Adapter) Update(table string, id int64, data database.Record) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	record, ok := a.tables[table][id]
	if !ok {
		return false, nil
	}
	for _, field := range a.uniques[table] {
		if value, present := data[field]; present {
			if other := a.matchLocked(table, field, value); other != 0 && other != id {
				return false, fmt.Errorf("update %s: %w", table, domain.ErrDuplicate)
			}
		}
	}
	for key, value := range data {
		record[key] = value
	}
	return true, nil
}

// Delete elimina por id; false si no había registro.
func (a *Adapter) Delete(table string, id int64) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.tables[table][id]; !ok {
		return false, nil
	}
	delete(a.tables[table], id)
	return true, nil
}

// FindByField devuelve el primer registro (por id) con field = value.
func (a *Adapter) FindByField(table, field string, value any) (database.Record, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if id := a.matchLocked(table, field, value); id != 0 {
		return copyRecord(a.tables[table][id]), nil
	}
	return nil, nil
}

// Execute no tiene lenguaje de consulta; devuelve el adapter como handle opaco.
func (a *Adapter) Execute(query string, args ...any) (any, error) {
	return a, nil
}

// WithinTx toma un snapshot de todas las tablas y lo restaura si fn falla.
func (a *Adapter) WithinTx(ctx context.Context, fn func(tx database.Adapter) error) error {
	a.mu.Lock()
	snapshot := a.snapshotLocked()
	seqSnapshot := make(map[string]int64, len(a.seq))
	for table, n := range a.seq {
		seqSnapshot[table] = n
	}
	a.mu.Unlock()

	if err := fn(a); err != nil {
		a.mu.Lock()
		a.tables = snapshot
		a.seq = seqSnapshot
		a.mu.Unlock()
		return err
	}
	return nil
}

func (a *Adapter) sortedIDs(table string) []int64 {
	ids := make([]int64, 0, len(a.tables[table]))
	for id := range a.tables[table] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// matchLocked devuelve el menor id cuyo campo coincide, o 0.
func (a *Adapter) matchLocked(table, field string, value any) int64 {
	for _, id := range a.sortedIDs(table) {
		if fmt.Sprintf("%v", a.tables[table][id][field]) == fmt.Sprintf("%v", value) {
			return id
		}
	}
	return 0
}

func (a *Adapter) snapshotLocked() map[string]map[int64]database.Record {
	snapshot := make(map[string]map[int64]database.Record, len(a.tables))
	for table, records := range a.tables {
		copied := make(map[int64]database.Record, len(records))
		for id, record := range records {
			copied[id] = copyRecord(record)
		}
		snapshot[table] = copied
	}
	return snapshot
}

func copyRecord(record database.Record) database.Record {
	copied := make(database.Record, len(record))
	for key, value := range record {
		copied[key] = value
	}
	return copied
}
