// Package postgres is the PostgreSQL store backend (database/sql + lib/pq).
package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/boddenberg/cards-api-go/internal/entity"
	"github.com/boddenberg/cards-api-go/internal/infra/resilience"
	"github.com/boddenberg/cards-api-go/internal/port"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

// Open connects to PostgreSQL and verifies the connection. dsn is either a
// postgres:// URL or a key=value connection string.
func Open(ctx context.Context, dsn string, maxOpenConns int) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns / 2)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Store bundles the connection pool with the executor shared by all tables.
type Store struct {
	db     *sql.DB
	exec   *resilience.Executor
	logger *zap.Logger
}

// NewStore creates the backend over an open pool.
func NewStore(db *sql.DB, exec *resilience.Executor, logger *zap.Logger) *Store {
	return &Store{db: db, exec: exec, logger: logger}
}

// Ping implements port.Pinger.
func (s *Store) Ping(ctx context.Context) error {
	return s.exec.Read(ctx, s.db.PingContext)
}

// Migrate applies the embedded bootstrap schema.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	s.logger.Info("database schema applied")
	return nil
}

// Close closes the pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Repositories creates a table adapter for every resource.
func (s *Store) Repositories() port.Repositories {
	return port.Repositories{
		Cards:       NewTable[entity.Card](s.db, s.exec),
		Balances:    NewTable[entity.CardBalance](s.db, s.exec),
		Disputes:    NewTable[entity.CardDispute](s.db, s.exec),
		Enrollments: NewTable[entity.CardEnrollment](s.db, s.exec),
		Interests:   NewTable[entity.CardInterest](s.db, s.exec),
		Promotions:  NewTable[entity.CardPromotion](s.db, s.exec),
		Payments:    NewTable[entity.CardPayment](s.db, s.exec),
		Activities:  NewTable[entity.CardActivity](s.db, s.exec),

		BINs:       NewTable[entity.BIN](s.db, s.exec),
		Networks:   NewTable[entity.CardNetwork](s.db, s.exec),
		Issuers:    NewTable[entity.Issuer](s.db, s.exec),
		Merchants:  NewTable[entity.CardMerchant](s.db, s.exec),
		Acquirers:  NewTable[entity.CardAcquirer](s.db, s.exec),
		Gateways:   NewTable[entity.CardGateway](s.db, s.exec),
		Processors: NewTable[entity.CardProcessor](s.db, s.exec),
		Terminals:  NewTable[entity.CardTerminal](s.db, s.exec),
	}
}
