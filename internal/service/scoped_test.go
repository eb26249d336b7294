package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/entity"
	"github.com/boddenberg/cards-api-go/internal/infra/memstore"
	"github.com/boddenberg/cards-api-go/internal/infra/observability"
	"github.com/boddenberg/cards-api-go/internal/mapper"
	"github.com/boddenberg/cards-api-go/internal/pagination"
	"github.com/boddenberg/cards-api-go/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type balanceService = service.Scoped[domain.CardBalance, entity.CardBalance, *entity.CardBalance]

func newBalanceService(t *testing.T) (*balanceService, *observability.Metrics) {
	t.Helper()
	metrics := observability.NewMetrics()
	svc := service.NewScoped[domain.CardBalance, entity.CardBalance](
		"balance", memstore.NewTable[entity.CardBalance](),
		mapper.BalanceToEntity, mapper.BalanceToDTO, metrics, zap.NewNop(),
	)
	return svc, metrics
}

func sampleBalance() *domain.CardBalance {
	since := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	return &domain.CardBalance{
		BalanceType:     "AVAILABLE",
		Amount:          decimal.RequireFromString("1250.75"),
		Currency:        "USD",
		CreditLimit:     decimal.RequireFromString("5000"),
		IsDelinquent:    true,
		DelinquentSince: &since,
		AsOf:            time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestScoped_CreateForcesOwner(t *testing.T) {
	svc, _ := newBalanceService(t)
	ctx := context.Background()
	cardA, cardB := uuid.New(), uuid.New()

	in := sampleBalance()
	in.CardID = cardB

	out, err := svc.Create(ctx, cardA, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.CardID != cardA {
		t.Errorf("expected owner %s, got %s", cardA, out.CardID)
	}
	if out.ID == uuid.Nil {
		t.Error("expected server-assigned id")
	}
	if out.CreatedAt.IsZero() || !out.CreatedAt.Equal(out.UpdatedAt) {
		t.Errorf("expected equal non-zero timestamps, got %v / %v", out.CreatedAt, out.UpdatedAt)
	}

	if _, err := svc.Get(ctx, cardA, out.ID); err != nil {
		t.Errorf("expected record under card A, got %v", err)
	}
}

func TestScoped_RoundTrip(t *testing.T) {
	svc, _ := newBalanceService(t)
	ctx := context.Background()
	cardID := uuid.New()
	in := sampleBalance()

	created, err := svc.Create(ctx, cardID, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(ctx, cardID, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.BalanceType != in.BalanceType ||
		!got.Amount.Equal(in.Amount) ||
		got.Currency != in.Currency ||
		!got.CreditLimit.Equal(in.CreditLimit) ||
		got.IsDelinquent != in.IsDelinquent ||
		got.DelinquentSince == nil || !got.DelinquentSince.Equal(*in.DelinquentSince) ||
		!got.AsOf.Equal(in.AsOf) {
		t.Errorf("round trip mismatch:\n in  %+v\n got %+v", in, got)
	}
}

func TestScoped_GetWrongOwnerIsOwnershipViolation(t *testing.T) {
	svc, metrics := newBalanceService(t)
	ctx := context.Background()
	cardA, cardB := uuid.New(), uuid.New()

	created, _ := svc.Create(ctx, cardA, sampleBalance())

	_, err := svc.Get(ctx, cardB, created.ID)

	var own *domain.ErrOwnership
	if !errors.As(err, &own) {
		t.Fatalf("expected ErrOwnership, got %v", err)
	}
	var nf *domain.ErrNotFound
	if errors.As(err, &nf) {
		t.Fatal("ownership violation must not be reported as not found")
	}
	if got := metrics.Summary().OwnershipViolations["balance"]; got != 1 {
		t.Errorf("expected 1 recorded violation, got %d", got)
	}
}

func TestScoped_GetMissingIsNotFound(t *testing.T) {
	svc, _ := newBalanceService(t)

	_, err := svc.Get(context.Background(), uuid.New(), uuid.New())

	var nf *domain.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if nf.Resource != "balance" {
		t.Errorf("expected resource balance, got %s", nf.Resource)
	}
}

func TestScoped_UpdateKeepsIdentity(t *testing.T) {
	svc, _ := newBalanceService(t)
	ctx := context.Background()
	cardA := uuid.New()

	created, _ := svc.Create(ctx, cardA, sampleBalance())

	in := sampleBalance()
	in.ID = uuid.New()
	in.CardID = uuid.New()
	in.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	in.Amount = decimal.RequireFromString("10")

	updated, err := svc.Update(ctx, cardA, created.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("id changed: %s -> %s", created.ID, updated.ID)
	}
	if updated.CardID != cardA {
		t.Errorf("owner changed: %s -> %s", cardA, updated.CardID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("createdAt changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}

	stored, err := svc.Get(ctx, cardA, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !stored.Amount.Equal(decimal.RequireFromString("10")) {
		t.Errorf("expected amount 10, got %s", stored.Amount)
	}
}

func TestScoped_UpdateWrongOwnerAndMissing(t *testing.T) {
	svc, _ := newBalanceService(t)
	ctx := context.Background()
	cardA, cardB := uuid.New(), uuid.New()
	created, _ := svc.Create(ctx, cardA, sampleBalance())

	var own *domain.ErrOwnership
	if _, err := svc.Update(ctx, cardB, created.ID, sampleBalance()); !errors.As(err, &own) {
		t.Fatalf("expected ErrOwnership, got %v", err)
	}

	var nf *domain.ErrNotFound
	if _, err := svc.Update(ctx, cardA, uuid.New(), sampleBalance()); !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScoped_Delete(t *testing.T) {
	svc, _ := newBalanceService(t)
	ctx := context.Background()
	cardA, cardB := uuid.New(), uuid.New()
	created, _ := svc.Create(ctx, cardA, sampleBalance())

	t.Run("wrong owner fails and keeps the record", func(t *testing.T) {
		var own *domain.ErrOwnership
		if err := svc.Delete(ctx, cardB, created.ID); !errors.As(err, &own) {
			t.Fatalf("expected ErrOwnership, got %v", err)
		}
		if _, err := svc.Get(ctx, cardA, created.ID); err != nil {
			t.Fatalf("expected record to survive, got %v", err)
		}
	})

	t.Run("missing record is a no-op", func(t *testing.T) {
		if err := svc.Delete(ctx, cardA, uuid.New()); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})

	t.Run("owner deletes", func(t *testing.T) {
		if err := svc.Delete(ctx, cardA, created.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		var nf *domain.ErrNotFound
		if _, err := svc.Get(ctx, cardA, created.ID); !errors.As(err, &nf) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestScoped_ListActivitiesByCard(t *testing.T) {
	ctx := context.Background()
	svc := service.NewScoped[domain.CardActivity, entity.CardActivity](
		"activity", memstore.NewTable[entity.CardActivity](),
		mapper.ActivityToEntity, mapper.ActivityToDTO, observability.NewMetrics(), zap.NewNop(),
	)
	cardA, cardB := uuid.New(), uuid.New()

	activity := func() *domain.CardActivity {
		return &domain.CardActivity{
			ActivityType: "PURCHASE",
			Channel:      "POS",
			Amount:       decimal.RequireFromString("9.99"),
			Currency:     "USD",
			OccurredAt:   time.Now(),
		}
	}
	for i := 0; i < 13; i++ {
		if _, err := svc.Create(ctx, cardA, activity()); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	for i := 0; i < 4; i++ {
		_, _ = svc.Create(ctx, cardB, activity())
	}

	page, err := svc.List(ctx, cardA, pagination.Request{Page: 0, Size: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 10 {
		t.Errorf("expected 10 items, got %d", len(page.Items))
	}
	for _, it := range page.Items {
		if it.CardID != cardA {
			t.Errorf("item %s belongs to %s", it.ID, it.CardID)
		}
	}
	if page.Total != 13 {
		t.Errorf("expected total 13, got %d", page.Total)
	}
	if page.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", page.TotalPages)
	}

	second, _ := svc.List(ctx, cardA, pagination.Request{Page: 1, Size: 10})
	if len(second.Items) != 3 || second.Total != 13 {
		t.Errorf("expected 3 items / total 13 on page 1, got %d / %d", len(second.Items), second.Total)
	}
}

func TestScoped_NilCardRejected(t *testing.T) {
	svc, _ := newBalanceService(t)

	var ve *domain.ErrValidation
	if _, err := svc.List(context.Background(), uuid.Nil, pagination.Request{Size: 10}); !errors.As(err, &ve) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create(context.Background(), uuid.Nil, sampleBalance()); !errors.As(err, &ve) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// --- failing repository ---

type failingRepo[E any] struct {
	err error
}

func (f failingRepo[E]) FindByID(context.Context, uuid.UUID) (*E, error) { return nil, f.err }
func (f failingRepo[E]) List(context.Context, uuid.UUID, int, int) ([]E, error) {
	return nil, f.err
}
func (f failingRepo[E]) Count(context.Context, uuid.UUID) (int64, error) { return 0, f.err }
func (f failingRepo[E]) Insert(context.Context, *E) error               { return f.err }
func (f failingRepo[E]) Update(context.Context, *E) error               { return f.err }
func (f failingRepo[E]) Delete(context.Context, uuid.UUID) error        { return f.err }

func TestScoped_StoreErrorsPropagate(t *testing.T) {
	storeErr := &domain.ErrCircuitOpen{Service: "postgres"}
	svc := service.NewScoped[domain.CardBalance, entity.CardBalance](
		"balance", failingRepo[entity.CardBalance]{err: storeErr},
		mapper.BalanceToEntity, mapper.BalanceToDTO, observability.NewMetrics(), zap.NewNop(),
	)
	ctx := context.Background()

	var open *domain.ErrCircuitOpen
	if _, err := svc.Get(ctx, uuid.New(), uuid.New()); !errors.As(err, &open) {
		t.Errorf("get: expected ErrCircuitOpen, got %v", err)
	}
	if _, err := svc.List(ctx, uuid.New(), pagination.Request{Size: 5}); !errors.As(err, &open) {
		t.Errorf("list: expected ErrCircuitOpen, got %v", err)
	}
	if _, err := svc.Create(ctx, uuid.New(), sampleBalance()); !errors.As(err, &open) {
		t.Errorf("create: expected ErrCircuitOpen, got %v", err)
	}
	if err := svc.Delete(ctx, uuid.New(), uuid.New()); !errors.As(err, &open) {
		t.Errorf("delete: expected ErrCircuitOpen, got %v", err)
	}
}
