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

var scopedTracer = otel.Tracer("service/scoped")

// Scoped is the CRUD engine for resources owned by a card.
//
// Records are always looked up by their own id; the owning card from the
// caller is then compared with the stored card_id. A missing record and a
// record owned by another card are reported as different errors
// (*domain.ErrNotFound and *domain.ErrOwnership) so callers can tell them
// apart with errors.As. Delete treats a missing record as success.
type Scoped[D any, E any, PE entity.OwnedPtr[E]] struct {
	resource string
	repo     port.Repository[E]
	toEntity func(*D) *E
	toDTO    func(*E) *D
	metrics  *observability.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewScoped creates the engine for one card-scoped resource.
func NewScoped[D any, E any, PE entity.OwnedPtr[E]](
	resource string,
	repo port.Repository[E],
	toEntity func(*D) *E,
	toDTO func(*E) *D,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Scoped[D, E, PE] {
	return &Scoped[D, E, PE]{
		resource: resource,
		repo:     repo,
		toEntity: toEntity,
		toDTO:    toDTO,
		metrics:  metrics,
		logger:   logger.With(zap.String("resource", resource)),
		now:      time.Now,
	}
}

// Resource returns the resource name used in errors, logs and metrics.
func (s *Scoped[D, E, PE]) Resource() string { return s.resource }

// List returns one page of the card's records plus their total count.
func (s *Scoped[D, E, PE]) List(ctx context.Context, cardID uuid.UUID, req pagination.Request) (*domain.Page[D], error) {
	ctx, span := scopedTracer.Start(ctx, "Scoped.List")
	defer span.End()
	span.SetAttributes(attribute.String("resource", s.resource), attribute.String("card.id", cardID.String()))
	defer s.observe("list", time.Now())

	if cardID == uuid.Nil {
		return nil, &domain.ErrValidation{Field: "cardId", Message: "required"}
	}

	page, err := pagination.Paginate(ctx, req, s.toDTO,
		func(ctx context.Context, limit, offset int) ([]E, error) {
			return s.repo.List(ctx, cardID, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return s.repo.Count(ctx, cardID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.resource, err)
	}
	return page, nil
}

// Create stores a new record under cardID, ignoring any card id in the input.
// The card itself is not checked for existence.
func (s *Scoped[D, E, PE]) Create(ctx context.Context, cardID uuid.UUID, in *D) (*D, error) {
	ctx, span := scopedTracer.Start(ctx, "Scoped.Create")
	defer span.End()
	span.SetAttributes(attribute.String("resource", s.resource), attribute.String("card.id", cardID.String()))
	defer s.observe("create", time.Now())

	if cardID == uuid.Nil {
		return nil, &domain.ErrValidation{Field: "cardId", Message: "required"}
	}

	e := s.toEntity(in)
	pe := PE(e)
	now := s.timestamp()
	pe.SetKey(uuid.New())
	pe.SetOwner(cardID)
	pe.SetAudit(now, now)

	if err := s.repo.Insert(ctx, e); err != nil {
		s.logger.Error("failed to create record", zap.String("card_id", cardID.String()), zap.Error(err))
		return nil, fmt.Errorf("create %s: %w", s.resource, err)
	}

	s.logger.Info("record created",
		zap.String("card_id", cardID.String()),
		zap.String("id", pe.Key().String()),
	)
	return s.toDTO(e), nil
}

// Get returns the record only if it exists and belongs to cardID.
func (s *Scoped[D, E, PE]) Get(ctx context.Context, cardID, id uuid.UUID) (*D, error) {
	ctx, span := scopedTracer.Start(ctx, "Scoped.Get")
	defer span.End()
	span.SetAttributes(attribute.String("resource", s.resource), attribute.String("id", id.String()))
	defer s.observe("get", time.Now())

	e, err := s.load(ctx, cardID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, &domain.ErrNotFound{Resource: s.resource, ID: id.String()}
	}
	return s.toDTO(e), nil
}

// Update replaces every field of an owned record. The id, card id and
// creation time of the stored record always win over the input.
func (s *Scoped[D, E, PE]) Update(ctx context.Context, cardID, id uuid.UUID, in *D) (*D, error) {
	ctx, span := scopedTracer.Start(ctx, "Scoped.Update")
	defer span.End()
	span.SetAttributes(attribute.String("resource", s.resource), attribute.String("id", id.String()))
	defer s.observe("update", time.Now())

	stored, err := s.load(ctx, cardID, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, &domain.ErrNotFound{Resource: s.resource, ID: id.String()}
	}

	next := s.toEntity(in)
	pn := PE(next)
	createdAt, _ := PE(stored).Audit()
	pn.SetKey(id)
	pn.SetOwner(cardID)
	pn.SetAudit(createdAt, s.timestamp())

	if err := s.repo.Update(ctx, next); err != nil {
		s.logger.Error("failed to update record", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("update %s: %w", s.resource, err)
	}

	s.logger.Info("record updated",
		zap.String("card_id", cardID.String()),
		zap.String("id", id.String()),
	)
	return s.toDTO(next), nil
}

// Delete removes an owned record. Deleting a missing record is a no-op.
func (s *Scoped[D, E, PE]) Delete(ctx context.Context, cardID, id uuid.UUID) error {
	ctx, span := scopedTracer.Start(ctx, "Scoped.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("resource", s.resource), attribute.String("id", id.String()))
	defer s.observe("delete", time.Now())

	stored, err := s.load(ctx, cardID, id)
	if err != nil {
		return err
	}
	if stored == nil {
		s.logger.Debug("delete of missing record ignored", zap.String("id", id.String()))
		return nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete record", zap.String("id", id.String()), zap.Error(err))
		return fmt.Errorf("delete %s: %w", s.resource, err)
	}

	s.logger.Info("record deleted",
		zap.String("card_id", cardID.String()),
		zap.String("id", id.String()),
	)
	return nil
}

// load fetches a record by id and applies the ownership check.
// It returns (nil, nil) when the record does not exist.
func (s *Scoped[D, E, PE]) load(ctx context.Context, cardID, id uuid.UUID) (*E, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.resource, err)
	}
	if e == nil {
		return nil, nil
	}

	if owner := PE(e).Owner(); owner != cardID {
		s.metrics.IncrOwnershipViolation(s.resource)
		s.logger.Warn("ownership check failed",
			zap.String("id", id.String()),
			zap.String("card_id", cardID.String()),
			zap.String("owner_card_id", owner.String()),
		)
		return nil, &domain.ErrOwnership{Resource: s.resource, ID: id.String(), CardID: cardID.String()}
	}
	return e, nil
}

func (s *Scoped[D, E, PE]) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Scoped[D, E, PE]) observe(op string, start time.Time) {
	s.metrics.RecordRequestDuration(s.resource+"."+op, time.Since(start))
}
