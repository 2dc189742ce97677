package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database"
)

var _ database.Adapter = (*Adapter)(nil)

// Querier abstrae pool y transacción de pgx; el adapter funciona con ambos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Adapter implementa database.Adapter sobre PostgreSQL (pgx).
// Las consultas se arman dinámicamente a partir del Record; los nombres de
// tabla y columna se validan como identificadores antes de interpolarse.
type Adapter struct {
	q    Querier
	pool *pgxpool.Pool // nil cuando el adapter está atado a una transacción
}

// NewAdapter construye el adapter sobre el pool.
func NewAdapter(pool *pgxpool.Pool) *Adapter {
	return &Adapter{q: pool, pool: pool}
}

var identRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func checkIdent(name string) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("identificador inválido %q: %w", name, domain.ErrInvalidInput)
	}
	return nil
}

// FindByID busca un registro por clave primaria. Devuelve nil si no existe.
func (a *Adapter) FindByID(table string, id int64) (database.Record, error) {
	if err := checkIdent(table); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, table)
	return a.queryOne(query, id)
}

// FindAll pagina con orden determinista por id ascendente.
func (a *Adapter) FindAll(table string, page, perPage int) ([]database.Record, error) {
	if err := checkIdent(table); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY id LIMIT $1 OFFSET $2`, table)
	rows, err := a.q.Query(context.Background(), query, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("find all %s: %w", table, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}
	return records, nil
}

// Insert arma el INSERT desde las claves del Record y devuelve el id generado.
func (a *Adapter) Insert(table string, data database.Record) (int64, error) {
	if err := checkIdent(table); err != nil {
		return 0, err
	}
	columns := make([]string, 0, len(data))
	for column := range data {
		if err := checkIdent(column); err != nil {
			return 0, err
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, column := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = data[column]
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	var id int64
	if err := a.q.QueryRow(context.Background(), query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert %s: %w", table, domain.ErrDuplicate)
		}
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}

// Update arma el SET desde las claves del Record; false si el id no existe.
func (a *Adapter) Update(table string, id int64, data database.Record) (bool, error) {
	if err := checkIdent(table); err != nil {
		return false, err
	}
	columns := make([]string, 0, len(data))
	for column := range data {
		if err := checkIdent(column); err != nil {
			return false, err
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	setClauses := make([]string, len(columns))
	args := make([]any, 0, len(columns)+1)
	args = append(args, id)
	for i, column := range columns {
		setClauses[i] = fmt.Sprintf("%s = $%d", column, i+2)
		args = append(args, data[column])
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1`,
		table, strings.Join(setClauses, ", "))
	tag, err := a.q.Exec(context.Background(), query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("update %s: %w", table, domain.ErrDuplicate)
		}
		return false, fmt.Errorf("update %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina por id; false si no había registro.
func (a *Adapter) Delete(table string, id int64) (bool, error) {
	if err := checkIdent(table); err != nil {
		return false, err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)
	tag, err := a.q.Exec(context.Background(), query, id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindByField devuelve el primer registro (por id) con field = value.
func (a *Adapter) FindByField(table, field string, value any) (database.Record, error) {
	if err := checkIdent(table); err != nil {
		return nil, err
	}
	if err := checkIdent(field); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1 ORDER BY id LIMIT 1`, table, field)
	return a.queryOne(query, value)
}

// Execute ejecuta SQL crudo y devuelve el CommandTag de pgx.
func (a *Adapter) Execute(query string, args ...any) (any, error) {
	tag, err := a.q.Exec(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	return tag, nil
}

// WithinTx ejecuta fn con un Adapter atado a una transacción pgx.
// Si el adapter ya está dentro de una transacción, reutiliza la misma.
func (a *Adapter) WithinTx(ctx context.Context, fn func(tx database.Adapter) error) error {
	if a.pool == nil {
		return fn(a)
	}
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&Adapter{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (a *Adapter) queryOne(query string, args ...any) (database.Record, error) {
	rows, err := a.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	record, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan: %w", err)
	}
	return record, nil
}
