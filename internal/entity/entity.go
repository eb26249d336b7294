// Package entity holds the persistence-facing representation of every
// resource: one struct per table, with columns mapped 1:1 to fields.
//
// Each entity lists its columns and hands out pointers to the matching
// fields in the same order, which is all the SQL and PostgREST adapters
// need to read and write it generically. JSON tags carry the column names
// for the PostgREST adapter.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnerColumn is the foreign-key column shared by every card-scoped table.
const OwnerColumn = "card_id"

// Entity is a row of a single table keyed by a UUID.
type Entity interface {
	Key() uuid.UUID
	SetKey(id uuid.UUID)
	Audit() (createdAt, updatedAt time.Time)
	SetAudit(createdAt, updatedAt time.Time)
	Table() string
	// Columns and Fields must list the same columns in the same order,
	// with "id" first.
	Columns() []string
	Fields() []any
}

// Ptr constrains a type parameter to a pointer to an entity struct.
type Ptr[E any] interface {
	*E
	Entity
}

// Owned is implemented by entities scoped to a parent card.
type Owned interface {
	Owner() uuid.UUID
	SetOwner(cardID uuid.UUID)
}

// OwnedPtr constrains a type parameter to a pointer to a card-scoped entity.
type OwnedPtr[E any] interface {
	*E
	Entity
	Owned
}

// Base carries the key and audit columns common to all tables.
type Base struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) Key() uuid.UUID      { return b.ID }
func (b *Base) SetKey(id uuid.UUID) { b.ID = id }

func (b *Base) Audit() (time.Time, time.Time) { return b.CreatedAt, b.UpdatedAt }

func (b *Base) SetAudit(createdAt, updatedAt time.Time) {
	b.CreatedAt = createdAt
	b.UpdatedAt = updatedAt
}

// CardScoped carries the owning card of a scoped entity.
type CardScoped struct {
	CardID uuid.UUID `json:"card_id"`
}

func (s *CardScoped) Owner() uuid.UUID          { return s.CardID }
func (s *CardScoped) SetOwner(cardID uuid.UUID) { s.CardID = cardID }

// Clone returns a copy of e that shares no memory with it. Nullable
// columns are the only pointer fields an entity carries.
func Clone[E any, PE Ptr[E]](e *E) *E {
	c := *e
	for _, f := range PE(&c).Fields() {
		switch p := f.(type) {
		case **uuid.UUID:
			if *p != nil {
				v := **p
				*p = &v
			}
		case **time.Time:
			if *p != nil {
				v := **p
				*p = &v
			}
		}
	}
	return &c
}
