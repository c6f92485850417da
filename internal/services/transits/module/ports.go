package module

import (
	"context"

	tdom "astrolabe/internal/services/transits/domain"
	tsvc "astrolabe/internal/services/transits/service"
)

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }

// adaptTransitsPort adapts the transits service to the domain port interface
type adaptTransitsPort struct{ svc tsvc.Service }

// Compute implements the domain ServicePort interface
func (a adaptTransitsPort) Compute(ctx context.Context, req tdom.TransitRequest) (tdom.TransitResponse, error) {
	return a.svc.Compute(ctx, req)
}
