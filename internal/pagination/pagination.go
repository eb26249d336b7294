// Package pagination turns a page request into a window over a result set
// and assembles the page envelope from an item query and a count query.
package pagination

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/boddenberg/cards-api-go/internal/domain"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultSize = 20
	MaxSize     = 100

	// MaxOffset bounds page*size so the offset never overflows.
	MaxOffset = math.MaxInt32
)

// Request is a 0-based page index and a page size.
type Request struct {
	Page int
	Size int
}

// Limits bounds the size accepted from clients.
type Limits struct {
	DefaultSize int
	MaxSize     int
}

// DefaultLimits are used when no explicit limits are configured.
var DefaultLimits = Limits{DefaultSize: DefaultSize, MaxSize: MaxSize}

// FromQuery reads ?page= and ?size= from the request. Missing or invalid
// values fall back to page 0 and the default size. A page whose offset
// would exceed MaxOffset is rejected with *domain.ErrValidation.
func FromQuery(r *http.Request, l Limits) (Request, error) {
	req := Request{Page: 0, Size: l.DefaultSize}
	if v := r.URL.Query().Get("size"); v != "" {
		if s, err := strconv.Atoi(v); err == nil && s > 0 && s <= l.MaxSize {
			req.Size = s
		}
	}
	if v := r.URL.Query().Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p >= 0 {
			req.Page = p
		}
	}
	if req.Size <= 0 {
		req.Size = DefaultSize
	}
	if maxPage := MaxOffset / req.Size; req.Page > maxPage {
		return Request{}, &domain.ErrValidation{Field: "page", Message: fmt.Sprintf("must be at most %d", maxPage)}
	}
	return req, nil
}

// Normalize clamps a request built outside FromQuery.
func (r Request) Normalize() Request {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = DefaultSize
	}
	if maxPage := MaxOffset / r.Size; r.Page > maxPage {
		r.Page = maxPage
	}
	return r
}

// Offset is the number of rows to skip.
func (r Request) Offset() int {
	return r.Page * r.Size
}

// Paginate runs pageFn and countFn concurrently, maps every item with
// mapFn and returns the assembled page. Either query failing fails the call.
func Paginate[E, D any](
	ctx context.Context,
	req Request,
	mapFn func(*E) *D,
	pageFn func(ctx context.Context, limit, offset int) ([]E, error),
	countFn func(ctx context.Context) (int64, error),
) (*domain.Page[D], error) {
	req = req.Normalize()

	var (
		rows  []E
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = pageFn(gctx, req.Size, req.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = countFn(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]D, 0, len(rows))
	for i := range rows {
		items = append(items, *mapFn(&rows[i]))
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return &domain.Page[D]{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
