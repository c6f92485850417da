// Package api provides the HTTP API for the application
package api

import (
	"astrolabe/internal/core/ephem"
	"astrolabe/internal/platform/config"
	"astrolabe/internal/platform/logger"
	phttp "astrolabe/internal/platform/net/http"
	"astrolabe/internal/platform/store"

	"astrolabe/internal/modkit"
	"astrolabe/internal/modkit/httpkit"
	"astrolabe/internal/modkit/module"
	"astrolabe/internal/modkit/swaggerkit"

	chartsmod "astrolabe/internal/services/charts/module"
	metamod "astrolabe/internal/services/api/meta/module"
	transitsmod "astrolabe/internal/services/transits/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Ephemeris      ephem.Provider
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		Ephem: opt.Ephemeris,
	}

	// charts owns chart computation and persistence; transits needs its
	// Reader port to resolve stored chart ids
	charts := chartsmod.New(deps)
	reader := module.MustPortsOf[chartsmod.Ports](charts).Reader

	transits := transitsmod.New(
		deps,
		modkit.WithPorts(transitsmod.Ports{
			ChartReader: reader,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		charts,
		transits,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
