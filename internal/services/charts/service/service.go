// Package service contains charts workflows
package service

import (
	"context"

	"astrolabe/internal/core/natal"
	"astrolabe/internal/modkit/repokit"
	perr "astrolabe/internal/platform/errors"
	ptime "astrolabe/internal/platform/time"
	"astrolabe/internal/services/charts/domain"
	"astrolabe/internal/services/charts/repo"

	"github.com/google/uuid"
)

// Config for the charts service
type Config struct {
	HardLimit int
}

// Service defines the service contract for charts
type Service interface {
	domain.ServicePort
	domain.ReaderPort
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
	eng    *natal.Engine
	cfg    Config
	now    ptime.Clock // seam for tests
}

// New creates a new charts service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], eng *natal.Engine, cfg Config) *Svc {
	if db == nil {
		panic("charts.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("charts.Service requires a non nil Storage binder")
	}
	if eng == nil {
		panic("charts.Service requires a non nil engine")
	}
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 100
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, eng: eng, cfg: cfg, now: ptime.NowUTC}
}

// Create computes a chart and persists it when the result is usable.
// Results needing geocoding or carrying errors are returned without an id
// and never stored; the status field is authoritative for callers
func (s *Svc) Create(ctx context.Context, req domain.ChartRequest) (domain.CreateResponse, error) {
	in, err := req.Input()
	if err != nil {
		return domain.CreateResponse{}, err
	}

	res := s.eng.ComputeChart(ctx, in)
	if res.Status != natal.StatusOK {
		return domain.CreateResponse{Result: res}, nil
	}

	id := uuid.New()
	chart := domain.Chart{
		ID:        id,
		CreatedAt: s.now(),
		ChartType: res.ChartType,
		Status:    res.Status,
		PlaceName: in.PlaceName,
		Result:    res,
	}
	if err := s.Repo.Insert(ctx, chart); err != nil {
		return domain.CreateResponse{}, err
	}
	return domain.CreateResponse{ID: &id, Result: res}, nil
}

// Preview computes a chart without persisting anything
func (s *Svc) Preview(ctx context.Context, req domain.ChartRequest) (natal.Result, error) {
	in, err := req.Input()
	if err != nil {
		return natal.Result{}, err
	}
	return s.eng.ComputeChart(ctx, in), nil
}

// Get returns a stored chart by id
func (s *Svc) Get(ctx context.Context, id uuid.UUID) (domain.Chart, error) {
	return s.Repo.Get(ctx, id)
}

// Delete removes a stored chart. Missing rows surface as not found
func (s *Svc) Delete(ctx context.Context, id uuid.UUID) error {
	existed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return perr.NotFoundf("chart %s not found", id)
	}
	return nil
}

// ListRecent returns recent chart summaries, newest first
func (s *Svc) ListRecent(ctx context.Context, limit int) ([]domain.Summary, error) {
	if limit <= 0 || limit > s.cfg.HardLimit {
		limit = s.cfg.HardLimit
	}
	return s.Repo.ListRecent(ctx, limit)
}

// Positions implements domain.ReaderPort for cross-module consumers
func (s *Svc) Positions(ctx context.Context, id uuid.UUID) ([]natal.Position, error) {
	chart, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return chart.Result.Positions, nil
}
