// Package http provides http transport for the feed
package http

import (
	stdhttp "net/http"
	"strconv"

	"chirp/internal/modkit/httpkit"
	perr "chirp/internal/platform/errors"
	svc "chirp/internal/services/api/feed/service"
)

// Register mounts feed endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /feed Feed feedList
// @Summary Latest posts joined with author profiles, newest first
// @Tags Feed
// @Produce json
// @Param limit query int false "page size, 1 to 100" default(100)
// @Success 200 {array} domain.Entry "ok"
// @Failure 500 {object} httpkit.Envelope "author resolution failed"
// @Router /feed [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			return nil, perr.WithField(perr.InvalidArgf("limit must be an integer between 1 and 100"), "limit")
		}
		limit = n
	}
	return h.svc.List(r.Context(), limit)
}
