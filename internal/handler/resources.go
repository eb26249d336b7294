package handler

import (
	"context"
	"net/http"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/pagination"
	"github.com/boddenberg/cards-api-go/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Generic resource handlers
//
// Every resource exposes the same five operations, so the handlers are
// written once against these interfaces and mounted per resource.
// ============================================================

type scopedService[D any] interface {
	Resource() string
	List(ctx context.Context, cardID uuid.UUID, req pagination.Request) (*domain.Page[D], error)
	Create(ctx context.Context, cardID uuid.UUID, in *D) (*D, error)
	Get(ctx context.Context, cardID, id uuid.UUID) (*D, error)
	Update(ctx context.Context, cardID, id uuid.UUID, in *D) (*D, error)
	Delete(ctx context.Context, cardID, id uuid.UUID) error
}

type crudService[D any] interface {
	Resource() string
	List(ctx context.Context, req pagination.Request) (*domain.Page[D], error)
	Create(ctx context.Context, in *D) (*D, error)
	Get(ctx context.Context, id uuid.UUID) (*D, error)
	Update(ctx context.Context, id uuid.UUID, in *D) (*D, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// deps is what every resource handler needs besides its service.
type deps struct {
	validator *validation.Validator
	limits    pagination.Limits
	logger    *zap.Logger
}

// mountScoped registers /{path} and /{path}/{id} under the current
// /cards/{cardId} route.
func mountScoped[D any](r chi.Router, path string, svc scopedService[D], d *deps) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", scopedList(svc, d))
		r.Post("/", scopedCreate(svc, d))
		r.Get("/{id}", scopedGet(svc, d))
		r.Put("/{id}", scopedUpdate(svc, d))
		r.Delete("/{id}", scopedDelete(svc, d))
	})
}

// mountCRUD registers /{path} and /{path}/{idParam} for a top-level
// resource. nested, when set, registers child routes below the item route.
func mountCRUD[D any](r chi.Router, path, idParam string, svc crudService[D], d *deps, nested func(chi.Router)) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", crudList(svc, d))
		r.Post("/", crudCreate(svc, d))
		r.Route("/{"+idParam+"}", func(r chi.Router) {
			r.Get("/", crudGet(svc, idParam, d))
			r.Put("/", crudUpdate(svc, idParam, d))
			r.Delete("/", crudDelete(svc, idParam, d))
			if nested != nil {
				nested(r)
			}
		})
	})
}

// --- card-scoped ---

func scopedList[D any](svc scopedService[D], d *deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/cards/{cardId}/"+svc.Resource())
		defer span.End()

		cardID, err := pathUUID(r, "cardId")
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}
		span.SetAttributes(attribute.String("card.id", cardID.String()))

		req, err := pagination.FromQuery(r, d.limits)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		page, err := svc.List(ctx, cardID, req)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func scopedCreate[D any](svc scopedService[D], d *deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/cards/{cardId}/"+svc.Resource())
		defer span.End()

		cardID, err := pathUUID(r, "cardId")
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		in := new(D)
		if err := d.bind(w, r, in); err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		out, err := svc.Create(ctx, cardID, in)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

func scopedGet[D any](svc scopedService[D], d *deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/cards/{cardId}/"+svc.Resource()+"/{id}")
		defer span.End()

		cardID, id, err := scopedIDs(r)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		out, err := svc.Get(ctx, cardID, id)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func scopedUpdate[D any](svc scopedService[D], d *deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /api/v1/cards/{cardId}/"+svc.Resource()+"/{id}")
		defer span.End()

		cardID, id, err := scopedIDs(r)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		in := new(D)
		if err := d.bind(w, r, in); err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		out, err := svc.Update(ctx, cardID, id, in)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func scopedDelete[D any](svc scopedService[D], d *deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /api/v1/cards/{cardId}/"+svc.Resource()+"/{id}")
		defer span.End()

		cardID, id, err := scopedIDs(r)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		if err := svc.Delete(ctx, cardID, id); err != nil {
			handleServiceError(w, err, d.logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func scopedIDs(r *http.Request) (cardID, id uuid.UUID, err error) {
	if cardID, err = pathUUID(r, "cardId"); err != nil {
		return
	}
	id, err = pathUUID(r, "id")
	return
}

// --- top-level ---

func crudList[D any](svc crudService[D], d *deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/"+svc.Resource())
		defer span.End()

		req, err := pagination.FromQuery(r, d.limits)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		page, err := svc.List(ctx, req)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func crudCreate[D any](svc crudService[D], d *deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/"+svc.Resource())
		defer span.End()

		in := new(D)
		if err := d.bind(w, r, in); err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		out, err := svc.Create(ctx, in)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

func crudGet[D any](svc crudService[D], idParam string, d *deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/"+svc.Resource()+"/{id}")
		defer span.End()

		id, err := pathUUID(r, idParam)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		out, err := svc.Get(ctx, id)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func crudUpdate[D any](svc crudService[D], idParam string, d *deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /api/v1/"+svc.Resource()+"/{id}")
		defer span.End()

		id, err := pathUUID(r, idParam)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		in := new(D)
		if err := d.bind(w, r, in); err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		out, err := svc.Update(ctx, id, in)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func crudDelete[D any](svc crudService[D], idParam string, d *deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /api/v1/"+svc.Resource()+"/{id}")
		defer span.End()

		id, err := pathUUID(r, idParam)
		if err != nil {
			handleServiceError(w, err, d.logger)
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			handleServiceError(w, err, d.logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// bind decodes the body into in and validates it.
func (d *deps) bind(w http.ResponseWriter, r *http.Request, in any) error {
	if err := decodeBody(w, r, in); err != nil {
		return err
	}
	return d.validator.Struct(in)
}
