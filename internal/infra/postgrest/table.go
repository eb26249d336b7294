package postgrest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/entity"
	"github.com/boddenberg/cards-api-go/internal/port"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// Table implements port.Repository for one PostgREST table. Rows are
// (de)serialised through the entity's JSON tags, which match the columns.
type Table[E any, PE entity.Ptr[E]] struct {
	c     *Client
	table string
}

// NewTable creates the adapter for E's table.
func NewTable[E any, PE entity.Ptr[E]](c *Client) *Table[E, PE] {
	var zero E
	return &Table[E, PE]{c: c, table: PE(&zero).Table()}
}

func (t *Table[E, PE]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	ctx, span := tracer.Start(ctx, "PostgREST.FindByID")
	defer span.End()
	span.SetAttributes(attribute.String("table", t.table), attribute.String("id", id.String()))

	q := url.Values{}
	q.Set("id", "eq."+id.String())
	q.Set("limit", "1")

	var rows []E
	err := t.c.exec.Read(ctx, func(ctx context.Context) error {
		resp, err := t.c.do(ctx, http.MethodGet, t.table+"?"+q.Encode(), nil, "")
		if err != nil {
			return err
		}
		return decodeRows(resp.body, &rows)
	})
	if err != nil {
		return nil, t.wrap(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (t *Table[E, PE]) List(ctx context.Context, owner uuid.UUID, limit, offset int) ([]E, error) {
	ctx, span := tracer.Start(ctx, "PostgREST.List")
	defer span.End()
	span.SetAttributes(attribute.String("table", t.table), attribute.Int("limit", limit), attribute.Int("offset", offset))

	q := t.ownerFilter(owner)
	q.Set("order", "created_at.asc,id.asc")
	q.Set("limit", fmt.Sprint(limit))
	q.Set("offset", fmt.Sprint(offset))

	rows := []E{}
	err := t.c.exec.Read(ctx, func(ctx context.Context) error {
		resp, err := t.c.do(ctx, http.MethodGet, t.table+"?"+q.Encode(), nil, "")
		if err != nil {
			return err
		}
		return decodeRows(resp.body, &rows)
	})
	if err != nil {
		return nil, t.wrap(err)
	}
	return rows, nil
}

func (t *Table[E, PE]) Count(ctx context.Context, owner uuid.UUID) (int64, error) {
	ctx, span := tracer.Start(ctx, "PostgREST.Count")
	defer span.End()
	span.SetAttributes(attribute.String("table", t.table))

	q := t.ownerFilter(owner)
	q.Set("select", "id")
	q.Set("limit", "1")

	var total int64
	err := t.c.exec.Read(ctx, func(ctx context.Context) error {
		resp, err := t.c.do(ctx, http.MethodGet, t.table+"?"+q.Encode(), nil, "count=exact")
		if err != nil {
			return err
		}
		total, err = parseContentRange(resp.header.Get("Content-Range"))
		return err
	})
	if err != nil {
		return 0, t.wrap(err)
	}
	return total, nil
}

func (t *Table[E, PE]) Insert(ctx context.Context, e *E) error {
	ctx, span := tracer.Start(ctx, "PostgREST.Insert")
	defer span.End()
	span.SetAttributes(attribute.String("table", t.table), attribute.String("id", PE(e).Key().String()))

	err := t.c.exec.Write(ctx, func(ctx context.Context) error {
		_, err := t.c.do(ctx, http.MethodPost, t.table, e, "return=minimal")
		return err
	})
	return t.wrap(err)
}

func (t *Table[E, PE]) Update(ctx context.Context, e *E) error {
	ctx, span := tracer.Start(ctx, "PostgREST.Update")
	defer span.End()
	id := PE(e).Key()
	span.SetAttributes(attribute.String("table", t.table), attribute.String("id", id.String()))

	q := url.Values{}
	q.Set("id", "eq."+id.String())

	var rows []json.RawMessage
	err := t.c.exec.Write(ctx, func(ctx context.Context) error {
		resp, err := t.c.do(ctx, http.MethodPatch, t.table+"?"+q.Encode(), e, "return=representation")
		if err != nil {
			return err
		}
		return decodeRows(resp.body, &rows)
	})
	if err != nil {
		return t.wrap(err)
	}
	if len(rows) == 0 {
		return &domain.ErrNotFound{Resource: t.table, ID: id.String()}
	}
	return nil
}

func (t *Table[E, PE]) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "PostgREST.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("table", t.table), attribute.String("id", id.String()))

	q := url.Values{}
	q.Set("id", "eq."+id.String())

	err := t.c.exec.Write(ctx, func(ctx context.Context) error {
		_, err := t.c.do(ctx, http.MethodDelete, t.table+"?"+q.Encode(), nil, "return=minimal")
		return err
	})
	return t.wrap(err)
}

func (t *Table[E, PE]) ownerFilter(owner uuid.UUID) url.Values {
	q := url.Values{}
	if owner != uuid.Nil {
		q.Set(entity.OwnerColumn, "eq."+owner.String())
	}
	return q
}

// wrap reports transport and server failures as *domain.ErrExternalService,
// leaving circuit-breaker and cancellation errors untouched.
func (t *Table[E, PE]) wrap(err error) error {
	if err == nil {
		return nil
	}
	var open *domain.ErrCircuitOpen
	if errors.As(err, &open) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &domain.ErrExternalService{Service: "postgrest/" + t.table, Err: err}
}

func decodeRows(body []byte, out any) error {
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode rows: %w", err)
	}
	return nil
}

// NewRepositories creates a PostgREST-backed repository for every resource.
func NewRepositories(c *Client) port.Repositories {
	return port.Repositories{
		Cards:       NewTable[entity.Card](c),
		Balances:    NewTable[entity.CardBalance](c),
		Disputes:    NewTable[entity.CardDispute](c),
		Enrollments: NewTable[entity.CardEnrollment](c),
		Interests:   NewTable[entity.CardInterest](c),
		Promotions:  NewTable[entity.CardPromotion](c),
		Payments:    NewTable[entity.CardPayment](c),
		Activities:  NewTable[entity.CardActivity](c),

		BINs:       NewTable[entity.BIN](c),
		Networks:   NewTable[entity.CardNetwork](c),
		Issuers:    NewTable[entity.Issuer](c),
		Merchants:  NewTable[entity.CardMerchant](c),
		Acquirers:  NewTable[entity.CardAcquirer](c),
		Gateways:   NewTable[entity.CardGateway](c),
		Processors: NewTable[entity.CardProcessor](c),
		Terminals:  NewTable[entity.CardTerminal](c),
	}
}
