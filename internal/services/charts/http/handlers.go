// Package http provides http transport for charts
package http

import (
	stdhttp "net/http"
	"strconv"

	"astrolabe/internal/modkit/httpkit"
	perr "astrolabe/internal/platform/errors"
	"astrolabe/internal/services/charts/domain"
	svc "astrolabe/internal/services/charts/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Register mounts charts endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ChartRequest](r, "/", h.create)
	httpkit.PostJSON[domain.ChartRequest](r, "/preview", h.preview)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// pathID parses the chart id route parameter
func pathID(r *stdhttp.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, perr.InvalidArgf("chart id %q is not a uuid", raw)
	}
	return id, nil
}

// @Summary Compute and store a natal chart
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.ChartRequest true "Birth data"
// @Success 200 {object} domain.CreateResponse "ok"
// @Router /charts [post]
func (h *handlers) create(r *stdhttp.Request, in domain.ChartRequest) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// @Summary Compute a chart without storing it
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.ChartRequest true "Birth data"
// @Success 200 {object} natal.Result "ok"
// @Router /charts/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in domain.ChartRequest) (any, error) {
	return h.svc.Preview(r.Context(), in)
}

// @Summary Fetch a stored chart
// @Tags Charts
// @Produce json
// @Param id path string true "Chart id"
// @Success 200 {object} domain.Chart "ok"
// @Router /charts/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// @Summary Delete a stored chart
// @Tags Charts
// @Produce json
// @Param id path string true "Chart id"
// @Success 200 {object} struct{} "ok"
// @Router /charts/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": id}, nil
}

// @Summary List recent charts
// @Tags Charts
// @Produce json
// @Param limit query int false "Max rows"
// @Success 200 {array} domain.Summary "ok"
// @Router /charts [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.InvalidArgf("limit %q is not an integer", raw)
		}
		limit = n
	}
	return h.svc.ListRecent(r.Context(), limit)
}
