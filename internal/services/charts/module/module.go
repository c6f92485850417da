// Package module wires charts into the API using modkit
package module

import (
	"net/http"

	modkit "astrolabe/internal/modkit"
	"astrolabe/internal/modkit/httpkit"
	str "astrolabe/internal/platform/strings"

	"astrolabe/internal/core/natal"
	chartshttp "astrolabe/internal/services/charts/http"
	chartsrepo "astrolabe/internal/services/charts/repo"
	chartssvc "astrolabe/internal/services/charts/service"
)

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

	svc chartssvc.Service
}

// New constructs a charts module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("charts"),
		modkit.WithPrefix("/charts"),
	}, opts...)...)

	mopts := FromConfig(deps.Cfg)

	eng := natal.NewEngine(deps.Ephem)
	svc := chartssvc.New(deps.PG, chartsrepo.NewPG(), eng, chartssvc.Config{
		HardLimit: mopts.HardLimit,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Reader: svc, Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		chartshttp.Register(r, m.svc)
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

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
