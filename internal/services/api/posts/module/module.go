// Package module wires posts into the API using modkit
package module

import (
	"net/http"

	"chirp/internal/core/emoji"
	modkit "chirp/internal/modkit"
	"chirp/internal/modkit/httpkit"
	"chirp/internal/platform/net/http/bind"
	"chirp/internal/platform/net/middleware"
	str "chirp/internal/platform/strings"
	postshttp "chirp/internal/services/api/posts/http"
	postsrepo "chirp/internal/services/api/posts/repo"
	postssvc "chirp/internal/services/api/posts/service"
	ratedom "chirp/internal/services/ratelimit/domain"
)

// Ports declares the injected ports for this module
type Ports struct {
	Limiter ratedom.LimiterPort
	Auth    middleware.AuthPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc postssvc.Service
}

// New constructs a posts module with the provided dependencies and options
// the limiter port must be injected via modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("posts"), modkit.WithPrefix("/posts")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Limiter == nil || ports.Auth == nil {
		panic("posts: module requires Limiter and Auth ports (use modkit.WithPorts)")
	}

	// transport-level content rule, service re-checks authoritatively
	_ = bind.RegisterValidationTranslated("emoji",
		func(fl bind.FieldLevel) bool { return emoji.IsEmojiOnly(fl.Field().String()) },
		"only emojis are allowed",
	)

	repo := postsrepo.NewPG()
	svc := postssvc.New(deps.PG, repo, ports.Limiter)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptPostsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		postshttp.Register(r, m.svc, ports.Auth)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
