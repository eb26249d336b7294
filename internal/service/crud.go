package service

import (
	"context"
	"fmt"
	"time"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/entity"
	"github.com/boddenberg/cards-api-go/internal/infra/observability"
	"github.com/boddenberg/cards-api-go/internal/pagination"
	"github.com/boddenberg/cards-api-go/internal/port"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var crudTracer = otel.Tracer("service/crud")

// BeforeSave runs after mapping and before persisting on create and update.
// stored is nil on create.
type BeforeSave[D, E any] func(in *D, next, stored *E) error

// CRUD is the engine for top-level resources (cards and the reference
// catalog). Update is fetch-merge-save: every DTO field is copied onto the
// stored record, whose id and creation time are kept.
type CRUD[D any, E any, PE entity.Ptr[E]] struct {
	resource   string
	repo       port.Repository[E]
	toEntity   func(*D) *E
	toDTO      func(*E) *D
	beforeSave BeforeSave[D, E]
	cache      port.Cache[any]
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewCRUD creates the engine for one top-level resource.
func NewCRUD[D any, E any, PE entity.Ptr[E]](
	resource string,
	repo port.Repository[E],
	toEntity func(*D) *E,
	toDTO func(*E) *D,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *CRUD[D, E, PE] {
	return &CRUD[D, E, PE]{
		resource: resource,
		repo:     repo,
		toEntity: toEntity,
		toDTO:    toDTO,
		metrics:  metrics,
		logger:   logger.With(zap.String("resource", resource)),
		now:      time.Now,
	}
}

// WithCache enables read-through caching of Get. Entries are dropped on
// update and delete. A Get that misses while an Update of the same record
// is in flight may cache the old row; it is served until the TTL expires.
func (s *CRUD[D, E, PE]) WithCache(c port.Cache[any]) *CRUD[D, E, PE] {
	s.cache = c
	return s
}

// WithBeforeSave installs a hook that can derive extra columns from the input.
func (s *CRUD[D, E, PE]) WithBeforeSave(fn BeforeSave[D, E]) *CRUD[D, E, PE] {
	s.beforeSave = fn
	return s
}

// Resource returns the resource name used in errors, logs and metrics.
func (s *CRUD[D, E, PE]) Resource() string { return s.resource }

// List returns one page of records plus the total count.
func (s *CRUD[D, E, PE]) List(ctx context.Context, req pagination.Request) (*domain.Page[D], error) {
	ctx, span := crudTracer.Start(ctx, "CRUD.List")
	defer span.End()
	span.SetAttributes(attribute.String("resource", s.resource))
	defer s.observe("list", time.Now())

	page, err := pagination.Paginate(ctx, req, s.toDTO,
		func(ctx context.Context, limit, offset int) ([]E, error) {
			return s.repo.List(ctx, uuid.Nil, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return s.repo.Count(ctx, uuid.Nil)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.resource, err)
	}
	return page, nil
}

// Create stores a new record with a server-assigned id and timestamps.
func (s *CRUD[D, E, PE]) Create(ctx context.Context, in *D) (*D, error) {
	ctx, span := crudTracer.Start(ctx, "CRUD.Create")
	defer span.End()
	span.SetAttributes(attribute.String("resource", s.resource))
	defer s.observe("create", time.Now())

	e := s.toEntity(in)
	pe := PE(e)
	now := s.timestamp()
	pe.SetKey(uuid.New())
	pe.SetAudit(now, now)

	if s.beforeSave != nil {
		if err := s.beforeSave(in, e, nil); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Insert(ctx, e); err != nil {
		s.logger.Error("failed to create record", zap.Error(err))
		return nil, fmt.Errorf("create %s: %w", s.resource, err)
	}

	s.logger.Info("record created", zap.String("id", pe.Key().String()))
	return s.toDTO(e), nil
}

// Get returns the record with the given id or *domain.ErrNotFound.
func (s *CRUD[D, E, PE]) Get(ctx context.Context, id uuid.UUID) (*D, error) {
	ctx, span := crudTracer.Start(ctx, "CRUD.Get")
	defer span.End()
	span.SetAttributes(attribute.String("resource", s.resource), attribute.String("id", id.String()))
	defer s.observe("get", time.Now())

	key := s.cacheKey(id)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			if e, ok := cached.(*E); ok {
				s.metrics.IncrCacheHit(s.resource)
				return s.toDTO(entity.Clone[E, PE](e)), nil
			}
		}
		s.metrics.IncrCacheMiss(s.resource)
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.resource, err)
	}
	if e == nil {
		return nil, &domain.ErrNotFound{Resource: s.resource, ID: id.String()}
	}

	if s.cache != nil {
		s.cache.Set(key, entity.Clone[E, PE](e))
	}
	return s.toDTO(e), nil
}

// Update copies every field of the input onto the stored record and saves it.
func (s *CRUD[D, E, PE]) Update(ctx context.Context, id uuid.UUID, in *D) (*D, error) {
	ctx, span := crudTracer.Start(ctx, "CRUD.Update")
	defer span.End()
	span.SetAttributes(attribute.String("resource", s.resource), attribute.String("id", id.String()))
	defer s.observe("update", time.Now())

	stored, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.resource, err)
	}
	if stored == nil {
		return nil, &domain.ErrNotFound{Resource: s.resource, ID: id.String()}
	}

	next := s.toEntity(in)
	pn := PE(next)
	createdAt, _ := PE(stored).Audit()
	pn.SetKey(id)
	pn.SetAudit(createdAt, s.timestamp())

	if s.beforeSave != nil {
		if err := s.beforeSave(in, next, stored); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, next); err != nil {
		s.logger.Error("failed to update record", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("update %s: %w", s.resource, err)
	}
	s.evict(id)

	s.logger.Info("record updated", zap.String("id", id.String()))
	return s.toDTO(next), nil
}

// Delete removes the record. Deleting a missing record is a no-op.
func (s *CRUD[D, E, PE]) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := crudTracer.Start(ctx, "CRUD.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("resource", s.resource), attribute.String("id", id.String()))
	defer s.observe("delete", time.Now())

	stored, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find %s: %w", s.resource, err)
	}
	if stored == nil {
		s.evict(id)
		s.logger.Debug("delete of missing record ignored", zap.String("id", id.String()))
		return nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete record", zap.String("id", id.String()), zap.Error(err))
		return fmt.Errorf("delete %s: %w", s.resource, err)
	}
	s.evict(id)

	s.logger.Info("record deleted", zap.String("id", id.String()))
	return nil
}

func (s *CRUD[D, E, PE]) cacheKey(id uuid.UUID) string {
	return s.resource + ":" + id.String()
}

func (s *CRUD[D, E, PE]) evict(id uuid.UUID) {
	if s.cache != nil {
		s.cache.Delete(s.cacheKey(id))
	}
}

func (s *CRUD[D, E, PE]) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *CRUD[D, E, PE]) observe(op string, start time.Time) {
	s.metrics.RecordRequestDuration(s.resource+"."+op, time.Since(start))
}
