package module

import "astrolabe/internal/services/charts/domain"

// Ports exposed by the charts module for cross-module lookups
type Ports struct {
	Reader  domain.ReaderPort
	Service domain.ServicePort
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
