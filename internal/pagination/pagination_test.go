package pagination_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http/httptest"
	"testing"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/pagination"
)

type row struct{ n int }
type item struct{ N int }

func toItem(r *row) *item { return &item{N: r.n} }

func TestFromQuery_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/cards", nil)
	req, err := pagination.FromQuery(r, pagination.DefaultLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Page != 0 {
		t.Errorf("expected page 0, got %d", req.Page)
	}
	if req.Size != pagination.DefaultSize {
		t.Errorf("expected size %d, got %d", pagination.DefaultSize, req.Size)
	}
}

func TestFromQuery_InvalidValuesFallBack(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/cards?page=-3&size=5000", nil)
	req, err := pagination.FromQuery(r, pagination.Limits{DefaultSize: 10, MaxSize: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Page != 0 {
		t.Errorf("expected page 0, got %d", req.Page)
	}
	if req.Size != 10 {
		t.Errorf("expected size 10, got %d", req.Size)
	}
}

func TestFromQuery_Explicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/cards?page=2&size=15", nil)
	req, err := pagination.FromQuery(r, pagination.DefaultLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Page != 2 || req.Size != 15 {
		t.Errorf("expected page 2 size 15, got page %d size %d", req.Page, req.Size)
	}
	if req.Offset() != 30 {
		t.Errorf("expected offset 30, got %d", req.Offset())
	}
}

func TestFromQuery_PageBeyondMaxOffset(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/cards?page=9223372036854775807&size=20", nil)
	_, err := pagination.FromQuery(r, pagination.DefaultLimits)

	var ve *domain.ErrValidation
	if !errors.As(err, &ve) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if ve.Field != "page" {
		t.Errorf("expected field page, got %q", ve.Field)
	}
}

func TestFromQuery_LastAllowedPage(t *testing.T) {
	r := httptest.NewRequest("GET", fmt.Sprintf("/api/v1/cards?page=%d&size=20", pagination.MaxOffset/20), nil)
	req, err := pagination.FromQuery(r, pagination.DefaultLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Offset() < 0 || req.Offset() > pagination.MaxOffset {
		t.Errorf("offset out of range: %d", req.Offset())
	}
}

func TestNormalize_ClampsHugePage(t *testing.T) {
	req := pagination.Request{Page: math.MaxInt, Size: 50}.Normalize()

	if req.Offset() < 0 || req.Offset() > pagination.MaxOffset {
		t.Errorf("offset out of range: %d", req.Offset())
	}
}

func TestPaginate_AssemblesPage(t *testing.T) {
	var gotLimit, gotOffset int
	page, err := pagination.Paginate(context.Background(),
		pagination.Request{Page: 1, Size: 2},
		toItem,
		func(_ context.Context, limit, offset int) ([]row, error) {
			gotLimit, gotOffset = limit, offset
			return []row{{n: 3}, {n: 4}}, nil
		},
		func(_ context.Context) (int64, error) { return 5, nil },
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotLimit != 2 || gotOffset != 2 {
		t.Errorf("expected limit 2 offset 2, got %d %d", gotLimit, gotOffset)
	}
	if len(page.Items) != 2 || page.Items[0].N != 3 {
		t.Errorf("unexpected items: %+v", page.Items)
	}
	if page.Total != 5 {
		t.Errorf("expected total 5, got %d", page.Total)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", page.TotalPages)
	}
}

func TestPaginate_EmptyResultHasNonNilItems(t *testing.T) {
	page, err := pagination.Paginate(context.Background(),
		pagination.Request{Page: 0, Size: 10},
		toItem,
		func(_ context.Context, _, _ int) ([]row, error) { return nil, nil },
		func(_ context.Context) (int64, error) { return 0, nil },
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.Items == nil {
		t.Error("expected empty, non-nil items")
	}
	if page.TotalPages != 0 {
		t.Errorf("expected 0 total pages, got %d", page.TotalPages)
	}
}

func TestPaginate_CountErrorFailsCall(t *testing.T) {
	_, err := pagination.Paginate(context.Background(),
		pagination.Request{Page: 0, Size: 10},
		toItem,
		func(_ context.Context, _, _ int) ([]row, error) { return []row{{n: 1}}, nil },
		func(_ context.Context) (int64, error) { return 0, errors.New("count failed") },
	)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
