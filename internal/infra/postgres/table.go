package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/entity"
	"github.com/boddenberg/cards-api-go/internal/infra/resilience"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("postgres")

// Queries holds the statements for one table, derived from its column list.
type Queries struct {
	Find       string
	List       string
	ListOwned  string
	Count      string
	CountOwned string
	Insert     string
	Update     string
	Delete     string
}

// BuildQueries derives every statement for table from columns, which must
// start with "id".
func BuildQueries(table string, columns []string) Queries {
	cols := strings.Join(columns, ", ")

	placeholders := make([]string, len(columns))
	sets := make([]string, 0, len(columns)-1)
	for i, c := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if i > 0 {
			sets = append(sets, fmt.Sprintf("%s = $%d", c, i+1))
		}
	}

	const order = " ORDER BY created_at, id"
	return Queries{
		Find:       fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", cols, table),
		List:       fmt.Sprintf("SELECT %s FROM %s%s LIMIT $1 OFFSET $2", cols, table, order),
		ListOwned:  fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1%s LIMIT $2 OFFSET $3", cols, table, entity.OwnerColumn, order),
		Count:      fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
		CountOwned: fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", table, entity.OwnerColumn),
		Insert:     fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, cols, strings.Join(placeholders, ", ")),
		Update:     fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", table, strings.Join(sets, ", ")),
		Delete:     fmt.Sprintf("DELETE FROM %s WHERE id = $1", table),
	}
}

// Table implements port.Repository for one PostgreSQL table.
type Table[E any, PE entity.Ptr[E]] struct {
	db    *sql.DB
	exec  *resilience.Executor
	table string
	q     Queries
}

// NewTable creates the adapter for E's table.
func NewTable[E any, PE entity.Ptr[E]](db *sql.DB, exec *resilience.Executor) *Table[E, PE] {
	var zero E
	pe := PE(&zero)
	return &Table[E, PE]{
		db:    db,
		exec:  exec,
		table: pe.Table(),
		q:     BuildQueries(pe.Table(), pe.Columns()),
	}
}

func (t *Table[E, PE]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	ctx, span := tracer.Start(ctx, "Postgres.FindByID")
	defer span.End()
	span.SetAttributes(attribute.String("table", t.table), attribute.String("id", id.String()))

	var (
		e     E
		found bool
	)
	err := t.exec.Read(ctx, func(ctx context.Context) error {
		err := t.db.QueryRowContext(ctx, t.q.Find, id).Scan(PE(&e).Fields()...)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return classify(err)
		}
		found = true
		return nil
	})
	if err != nil {
		return nil, t.wrap("find", err)
	}
	if !found {
		return nil, nil
	}
	return &e, nil
}

func (t *Table[E, PE]) List(ctx context.Context, owner uuid.UUID, limit, offset int) ([]E, error) {
	ctx, span := tracer.Start(ctx, "Postgres.List")
	defer span.End()
	span.SetAttributes(attribute.String("table", t.table), attribute.Int("limit", limit), attribute.Int("offset", offset))

	query, args := t.q.List, []any{limit, offset}
	if owner != uuid.Nil {
		query, args = t.q.ListOwned, []any{owner, limit, offset}
	}

	var out []E
	err := t.exec.Read(ctx, func(ctx context.Context) error {
		rows, err := t.db.QueryContext(ctx, query, args...)
		if err != nil {
			return classify(err)
		}
		defer rows.Close()

		out = make([]E, 0, limit)
		for rows.Next() {
			var e E
			if err := rows.Scan(PE(&e).Fields()...); err != nil {
				return resilience.Permanent(err)
			}
			out = append(out, e)
		}
		return classify(rows.Err())
	})
	if err != nil {
		return nil, t.wrap("list", err)
	}
	return out, nil
}

func (t *Table[E, PE]) Count(ctx context.Context, owner uuid.UUID) (int64, error) {
	ctx, span := tracer.Start(ctx, "Postgres.Count")
	defer span.End()
	span.SetAttributes(attribute.String("table", t.table))

	query, args := t.q.Count, []any(nil)
	if owner != uuid.Nil {
		query, args = t.q.CountOwned, []any{owner}
	}

	var n int64
	err := t.exec.Read(ctx, func(ctx context.Context) error {
		return classify(t.db.QueryRowContext(ctx, query, args...).Scan(&n))
	})
	if err != nil {
		return 0, t.wrap("count", err)
	}
	return n, nil
}

func (t *Table[E, PE]) Insert(ctx context.Context, e *E) error {
	ctx, span := tracer.Start(ctx, "Postgres.Insert")
	defer span.End()
	span.SetAttributes(attribute.String("table", t.table), attribute.String("id", PE(e).Key().String()))

	err := t.exec.Write(ctx, func(ctx context.Context) error {
		_, err := t.db.ExecContext(ctx, t.q.Insert, PE(e).Fields()...)
		return classify(err)
	})
	return t.wrap("insert", err)
}

func (t *Table[E, PE]) Update(ctx context.Context, e *E) error {
	ctx, span := tracer.Start(ctx, "Postgres.Update")
	defer span.End()
	id := PE(e).Key()
	span.SetAttributes(attribute.String("table", t.table), attribute.String("id", id.String()))

	err := t.exec.Write(ctx, func(ctx context.Context) error {
		res, err := t.db.ExecContext(ctx, t.q.Update, PE(e).Fields()...)
		if err != nil {
			return classify(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return &domain.ErrNotFound{Resource: t.table, ID: id.String()}
		}
		return nil
	})
	return t.wrap("update", err)
}

func (t *Table[E, PE]) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "Postgres.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("table", t.table), attribute.String("id", id.String()))

	err := t.exec.Write(ctx, func(ctx context.Context) error {
		_, err := t.db.ExecContext(ctx, t.q.Delete, id)
		return classify(err)
	})
	return t.wrap("delete", err)
}

// wrap reports driver failures as *domain.ErrExternalService, leaving
// not-found, circuit-breaker and cancellation errors untouched.
func (t *Table[E, PE]) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var nf *domain.ErrNotFound
	var open *domain.ErrCircuitOpen
	if errors.As(err, &nf) || errors.As(err, &open) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &domain.ErrExternalService{Service: "postgres/" + t.table, Err: fmt.Errorf("%s: %w", op, err)}
}

// classify marks errors that a retry cannot fix: SQL syntax, data and
// constraint violations.
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "22", "23", "42":
			return resilience.Permanent(err)
		}
	}
	return err
}
