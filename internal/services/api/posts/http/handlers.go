// Package http provides http transport for posts
package http

import (
	stdhttp "net/http"

	"chirp/internal/modkit/httpkit"
	"chirp/internal/platform/net/middleware"
	"chirp/internal/services/api/posts/domain"
	svc "chirp/internal/services/api/posts/service"
)

// Register mounts posts endpoints on the given router behind bearer auth
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.CreateInput](pr, "/", h.create)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /posts Posts postsCreate
// @Summary Publish an emoji-only status update
// @Tags Posts
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Post content"
// @Success 201 {object} domain.Post "created"
// @Failure 400 {object} httpkit.Envelope "validation failure"
// @Failure 401 {object} httpkit.Envelope "missing or invalid bearer token"
// @Failure 429 {object} httpkit.Envelope "rate limit exceeded"
// @Router /posts [post]
// @Security BearerAuth
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	out, err := h.svc.Create(r.Context(), uid, in.Content)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}
