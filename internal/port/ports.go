// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the service
// layer from concrete store implementations.
package port

import (
	"context"

	"github.com/boddenberg/cards-api-go/internal/entity"

	"github.com/google/uuid"
)

// Repository is single-table data access for entity type E.
//
// FindByID returns (nil, nil) when no row has the given key. List and Count
// filter on entity.OwnerColumn when owner is not uuid.Nil, and scan the
// whole table otherwise. List orders by created_at, then id.
type Repository[E any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*E, error)
	List(ctx context.Context, owner uuid.UUID, limit, offset int) ([]E, error)
	Count(ctx context.Context, owner uuid.UUID) (int64, error)
	Insert(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Repositories is the full set of tables a store backend serves.
type Repositories struct {
	Cards       Repository[entity.Card]
	Balances    Repository[entity.CardBalance]
	Disputes    Repository[entity.CardDispute]
	Enrollments Repository[entity.CardEnrollment]
	Interests   Repository[entity.CardInterest]
	Promotions  Repository[entity.CardPromotion]
	Payments    Repository[entity.CardPayment]
	Activities  Repository[entity.CardActivity]

	BINs       Repository[entity.BIN]
	Networks   Repository[entity.CardNetwork]
	Issuers    Repository[entity.Issuer]
	Merchants  Repository[entity.CardMerchant]
	Acquirers  Repository[entity.CardAcquirer]
	Gateways   Repository[entity.CardGateway]
	Processors Repository[entity.CardProcessor]
	Terminals  Repository[entity.CardTerminal]
}
