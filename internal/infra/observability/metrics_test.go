package observability_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/boddenberg/cards-api-go/internal/infra/observability"
	"go.uber.org/zap"
)

func TestMetrics_Summary(t *testing.T) {
	m := observability.NewMetrics()

	m.IncrOwnershipViolation("balance")
	m.IncrOwnershipViolation("balance")
	m.IncrOwnershipViolation("payment")
	m.IncrStoreError("postgres")
	m.IncrCacheHit("bin")
	m.IncrCacheHit("issuer")
	m.IncrCacheHit("bin")
	m.IncrCacheMiss("bin")
	m.RecordRequestDuration("card.get", 5*time.Millisecond)

	s := m.Summary()

	if s.OwnershipViolations["balance"] != 2 {
		t.Errorf("expected 2 balance violations, got %d", s.OwnershipViolations["balance"])
	}
	if s.OwnershipViolations["payment"] != 1 {
		t.Errorf("expected 1 payment violation, got %d", s.OwnershipViolations["payment"])
	}
	if s.StoreErrors["postgres"] != 1 {
		t.Errorf("expected 1 postgres error, got %d", s.StoreErrors["postgres"])
	}
	if s.CacheHits != 3 || s.CacheMisses != 1 {
		t.Errorf("expected 3 hits / 1 miss, got %d / %d", s.CacheHits, s.CacheMisses)
	}
	if s.CacheHitRate != 0.75 {
		t.Errorf("expected hit rate 0.75, got %f", s.CacheHitRate)
	}
}

func TestMetrics_SummaryEmpty(t *testing.T) {
	s := observability.NewMetrics().Summary()

	if s.OwnershipViolations == nil || s.StoreErrors == nil {
		t.Fatal("expected non-nil maps")
	}
	if s.CacheHitRate != 0 {
		t.Errorf("expected hit rate 0, got %f", s.CacheHitRate)
	}
	if s.Period != "all_time" {
		t.Errorf("expected period all_time, got %s", s.Period)
	}
}

func TestInitTracer_EmptyEndpointIsNoop(t *testing.T) {
	shutdown, err := observability.InitTracer("", "cards-api-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}

func TestZapLoggerMiddleware_PassesThrough(t *testing.T) {
	var seen string
	h := observability.ZapLoggerMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.WithSubject(r.Context(), "user-1")
		seen = observability.SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("expected 418, got %d", rec.Code)
	}
	if seen != "user-1" {
		t.Errorf("expected subject user-1, got %q", seen)
	}
}
