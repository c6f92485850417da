// Package http provides http transport for transits
package http

import (
	stdhttp "net/http"

	"astrolabe/internal/modkit/httpkit"
	"astrolabe/internal/services/transits/domain"
	svc "astrolabe/internal/services/transits/service"
)

// Register mounts transits endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.TransitRequest](r, "/", h.compute)
}

type handlers struct{ svc svc.Service }

// @Summary Ranked transits against a stored chart or inline positions
// @Tags Transits
// @Accept json
// @Produce json
// @Param payload body domain.TransitRequest true "Query"
// @Success 200 {object} domain.TransitResponse "ok"
// @Router /transits [post]
func (h *handlers) compute(r *stdhttp.Request, in domain.TransitRequest) (any, error) {
	return h.svc.Compute(r.Context(), in)
}
