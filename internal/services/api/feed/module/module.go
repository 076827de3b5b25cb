// Package module wires the feed into the API using modkit
package module

import (
	"net/http"

	modkit "chirp/internal/modkit"
	"chirp/internal/modkit/httpkit"
	str "chirp/internal/platform/strings"
	feeddom "chirp/internal/services/api/feed/domain"
	feedhttp "chirp/internal/services/api/feed/http"
	feedrepo "chirp/internal/services/api/feed/repo"
	feedsvc "chirp/internal/services/api/feed/service"
)

// Ports declares the injected identity port for this module
type Ports struct {
	Identity feeddom.IdentityPort
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

	svc feedsvc.Service
}

// New constructs a feed module with the provided dependencies and options
// the identity port must be injected via modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("feed"), modkit.WithPrefix("/feed")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Identity == nil {
		panic("feed: module requires an Identity port (use modkit.WithPorts)")
	}

	repo := feedrepo.NewPG()
	svc := feedsvc.New(deps.PG, repo, ports.Identity)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptFeedPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		feedhttp.Register(r, m.svc)
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
