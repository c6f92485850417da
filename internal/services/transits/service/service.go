// Package service contains transits workflows
package service

import (
	"context"

	"astrolabe/internal/core/transit"
	perr "astrolabe/internal/platform/errors"
	ptime "astrolabe/internal/platform/time"
	chartsdom "astrolabe/internal/services/charts/domain"
	"astrolabe/internal/services/transits/domain"

	"github.com/google/uuid"
)

// Service defines the service contract for transits
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	calc   *transit.Calculator
	charts chartsdom.ReaderPort
	now    ptime.Clock // seam for tests
}

// New creates a new transits service. The charts reader resolves stored
// chart ids into natal positions
func New(calc *transit.Calculator, charts chartsdom.ReaderPort) *Svc {
	if calc == nil {
		panic("transits.Service requires a non nil calculator")
	}
	if charts == nil {
		panic("transits.Service requires the charts reader port")
	}
	return &Svc{calc: calc, charts: charts, now: ptime.NowUTC}
}

// Compute resolves the natal positions, queries current positions, and
// returns the ranked transit aspects
func (s *Svc) Compute(ctx context.Context, req domain.TransitRequest) (domain.TransitResponse, error) {
	if (req.ChartID == "") == (len(req.Positions) == 0) {
		return domain.TransitResponse{}, perr.InvalidArgf("provide exactly one of chart_id or positions")
	}

	positions := req.Positions
	if req.ChartID != "" {
		id, err := uuid.Parse(req.ChartID)
		if err != nil {
			return domain.TransitResponse{}, perr.InvalidArgf("chart_id %q is not a uuid", req.ChartID)
		}
		positions, err = s.charts.Positions(ctx, id)
		if err != nil {
			return domain.TransitResponse{}, err
		}
		if len(positions) == 0 {
			return domain.TransitResponse{}, perr.InvalidArgf("chart %s has no stored positions", id)
		}
	}

	at := s.now().UTC()
	if req.At != nil {
		at = req.At.UTC()
	}

	var aspects []transit.Aspect
	var err error
	if req.Top > 0 {
		aspects, err = s.calc.Top(ctx, positions, at, req.Top)
	} else {
		aspects, err = s.calc.Compute(ctx, positions, at)
	}
	if err != nil {
		return domain.TransitResponse{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "transit computation failed")
	}

	return domain.TransitResponse{At: at, ChartID: req.ChartID, Aspects: aspects}, nil
}
