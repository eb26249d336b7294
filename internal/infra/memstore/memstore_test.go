package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/entity"
	"github.com/boddenberg/cards-api-go/internal/infra/memstore"

	"github.com/google/uuid"
)

func newBalance(cardID uuid.UUID, created time.Time) *entity.CardBalance {
	b := &entity.CardBalance{BalanceType: "AVAILABLE", Currency: "USD"}
	b.ID = uuid.New()
	b.CardID = cardID
	b.CreatedAt = created
	b.UpdatedAt = created
	return b
}

func TestTable_FindByIDMissing(t *testing.T) {
	tbl := memstore.NewTable[entity.CardBalance]()

	got, err := tbl.FindByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestTable_ListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	tbl := memstore.NewTable[entity.CardBalance]()
	cardA, cardB := uuid.New(), uuid.New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	third := newBalance(cardA, base.Add(2*time.Hour))
	first := newBalance(cardA, base)
	second := newBalance(cardA, base.Add(time.Hour))
	other := newBalance(cardB, base)

	for _, b := range []*entity.CardBalance{third, first, other, second} {
		if err := tbl.Insert(ctx, b); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	rows, err := tbl.List(ctx, cardA, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []uuid.UUID{first.ID, second.ID, third.ID}
	for i, r := range rows {
		if r.ID != want[i] {
			t.Errorf("row %d: expected %s, got %s", i, want[i], r.ID)
		}
	}

	page, _ := tbl.List(ctx, cardA, 2, 2)
	if len(page) != 1 || page[0].ID != third.ID {
		t.Errorf("expected last page to hold the third row, got %+v", page)
	}

	n, _ := tbl.Count(ctx, cardA)
	if n != 3 {
		t.Errorf("expected count 3, got %d", n)
	}
	all, _ := tbl.Count(ctx, uuid.Nil)
	if all != 4 {
		t.Errorf("expected unscoped count 4, got %d", all)
	}

	past, _ := tbl.List(ctx, cardA, 10, 50)
	if past == nil || len(past) != 0 {
		t.Errorf("expected empty non-nil slice past the end, got %v", past)
	}
}

func TestTable_ListNegativeOffset(t *testing.T) {
	ctx := context.Background()
	tbl := memstore.NewTable[entity.CardBalance]()
	cardID := uuid.New()
	if err := tbl.Insert(ctx, newBalance(cardID, time.Now())); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := tbl.List(ctx, cardID, 20, -20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected negative offset to read from the start, got %d rows", len(rows))
	}
}

func TestTable_UpdateMissing(t *testing.T) {
	tbl := memstore.NewTable[entity.CardBalance]()

	err := tbl.Update(context.Background(), newBalance(uuid.New(), time.Now()))

	var nf *domain.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTable_InsertDuplicate(t *testing.T) {
	ctx := context.Background()
	tbl := memstore.NewTable[entity.CardBalance]()
	b := newBalance(uuid.New(), time.Now())

	if err := tbl.Insert(ctx, b); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := tbl.Insert(ctx, b); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestTable_RowsAreCopied(t *testing.T) {
	ctx := context.Background()
	tbl := memstore.NewTable[entity.CardBalance]()
	b := newBalance(uuid.New(), time.Now())
	_ = tbl.Insert(ctx, b)

	b.Currency = "EUR"
	got, _ := tbl.FindByID(ctx, b.ID)
	if got.Currency != "USD" {
		t.Errorf("expected stored copy to be unchanged, got %s", got.Currency)
	}
}

func TestTable_DeleteMissingIsNoop(t *testing.T) {
	tbl := memstore.NewTable[entity.Card]()
	if err := tbl.Delete(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTable_CancelledContext(t *testing.T) {
	tbl := memstore.NewTable[entity.Card]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := tbl.List(ctx, uuid.Nil, 10, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
