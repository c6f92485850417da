// Package modkit provides module wiring and core deps
package modkit

import (
	"astrolabe/internal/core/ephem"
	"astrolabe/internal/modkit/repokit"
	"astrolabe/internal/platform/config"
	"astrolabe/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner

	// Ephem is the ephemeris provider injected into chart and transit
	// computation; modules must not construct their own
	Ephem ephem.Provider
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }
