// Package memstore is an in-process implementation of port.Repository used
// for local development and tests.
package memstore

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/entity"
	"github.com/boddenberg/cards-api-go/internal/port"

	"github.com/google/uuid"
)

// Table holds the rows of one entity type keyed by id.
// Rows are copied on the way in and out.
type Table[E any, PE entity.Ptr[E]] struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]E
}

// NewTable creates an empty table.
func NewTable[E any, PE entity.Ptr[E]]() *Table[E, PE] {
	return &Table[E, PE]{rows: make(map[uuid.UUID]E)}
}

func (t *Table[E, PE]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (t *Table[E, PE]) List(ctx context.Context, owner uuid.UUID, limit, offset int) ([]E, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := t.matching(owner)
	sort.Slice(rows, func(i, j int) bool {
		ci, _ := PE(&rows[i]).Audit()
		cj, _ := PE(&rows[j]).Audit()
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		ki, kj := PE(&rows[i]).Key(), PE(&rows[j]).Key()
		return bytes.Compare(ki[:], kj[:]) < 0
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []E{}, nil
	}
	end := len(rows)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return rows[offset:end], nil
}

func (t *Table[E, PE]) Count(ctx context.Context, owner uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(len(t.matching(owner))), nil
}

func (t *Table[E, PE]) Insert(ctx context.Context, e *E) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	id := PE(e).Key()
	if _, exists := t.rows[id]; exists {
		return fmt.Errorf("%s: duplicate key %s", PE(e).Table(), id)
	}
	t.rows[id] = *e
	return nil
}

func (t *Table[E, PE]) Update(ctx context.Context, e *E) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	id := PE(e).Key()
	if _, exists := t.rows[id]; !exists {
		return &domain.ErrNotFound{Resource: PE(e).Table(), ID: id.String()}
	}
	t.rows[id] = *e
	return nil
}

func (t *Table[E, PE]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.rows, id)
	return nil
}

func (t *Table[E, PE]) matching(owner uuid.UUID) []E {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]E, 0, len(t.rows))
	for _, row := range t.rows {
		if owner != uuid.Nil {
			o, ok := any(PE(&row)).(entity.Owned)
			if !ok || o.Owner() != owner {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}

// Store is the memory backend. It is always reachable.
type Store struct{}

// Ping implements port.Pinger.
func (Store) Ping(context.Context) error { return nil }

// NewRepositories creates an empty table for every resource.
func NewRepositories() port.Repositories {
	return port.Repositories{
		Cards:       NewTable[entity.Card](),
		Balances:    NewTable[entity.CardBalance](),
		Disputes:    NewTable[entity.CardDispute](),
		Enrollments: NewTable[entity.CardEnrollment](),
		Interests:   NewTable[entity.CardInterest](),
		Promotions:  NewTable[entity.CardPromotion](),
		Payments:    NewTable[entity.CardPayment](),
		Activities:  NewTable[entity.CardActivity](),

		BINs:       NewTable[entity.BIN](),
		Networks:   NewTable[entity.CardNetwork](),
		Issuers:    NewTable[entity.Issuer](),
		Merchants:  NewTable[entity.CardMerchant](),
		Acquirers:  NewTable[entity.CardAcquirer](),
		Gateways:   NewTable[entity.CardGateway](),
		Processors: NewTable[entity.CardProcessor](),
		Terminals:  NewTable[entity.CardTerminal](),
	}
}
