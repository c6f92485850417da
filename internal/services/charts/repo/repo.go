// Package repo provides the charts repository implementation
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"astrolabe/internal/core/natal"
	"astrolabe/internal/modkit/repokit"
	perr "astrolabe/internal/platform/errors"
	"astrolabe/internal/platform/store"
	"astrolabe/internal/services/charts/domain"

	"github.com/google/uuid"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the charts repository
type Storage interface {
	Insert(ctx context.Context, c domain.Chart) error
	Get(ctx context.Context, id uuid.UUID) (domain.Chart, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Summary, error)
}

// Insert implements Storage. The full result rides in a jsonb column so
// every optional field round-trips losslessly
func (s *pg) Insert(ctx context.Context, c domain.Chart) error {
	payload, err := json.Marshal(c.Result)
	if err != nil {
		return fmt.Errorf("marshal chart result: %w", err)
	}
	_, err = s.q.Exec(ctx, `
		INSERT INTO charts (id, created_at, chart_type, status, place_name, result)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.CreatedAt, string(c.ChartType), string(c.Status), c.PlaceName, payload,
	)
	if err != nil {
		return perr.FromPostgres(err, "insert chart")
	}
	return nil
}

// Get implements Storage
func (s *pg) Get(ctx context.Context, id uuid.UUID) (domain.Chart, error) {
	c, err := store.One(ctx, s.q, scanChart, `
		SELECT id, created_at, chart_type, status, place_name, result
		FROM charts WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return domain.Chart{}, perr.NotFoundf("chart %s not found", id)
		}
		return domain.Chart{}, perr.FromPostgres(err, "get chart")
	}
	return c, nil
}

// scanChart maps one charts row, rehydrating the jsonb result payload
func scanChart(r store.Row) (domain.Chart, error) {
	var c domain.Chart
	var chartType, status string
	var payload []byte
	if err := r.Scan(&c.ID, &c.CreatedAt, &chartType, &status, &c.PlaceName, &payload); err != nil {
		return domain.Chart{}, err
	}
	c.ChartType = natal.ChartType(chartType)
	c.Status = natal.Status(status)
	if err := json.Unmarshal(payload, &c.Result); err != nil {
		return domain.Chart{}, fmt.Errorf("unmarshal chart result: %w", err)
	}
	return c, nil
}

// Delete implements Storage; reports whether a row existed
func (s *pg) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.q.Exec(ctx, `DELETE FROM charts WHERE id = $1`, id)
	if err != nil {
		return false, perr.FromPostgres(err, "delete chart")
	}
	return tag.RowsAffected() > 0, nil
}

// ListRecent implements Storage
func (s *pg) ListRecent(ctx context.Context, limit int) ([]domain.Summary, error) {
	out, err := store.Many(ctx, s.q, scanSummary, `
		SELECT id, created_at, chart_type, status, place_name
		FROM charts ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list charts")
	}
	return out, nil
}

// scanSummary maps one summary row
func scanSummary(r store.Row) (domain.Summary, error) {
	var s domain.Summary
	var chartType, status string
	if err := r.Scan(&s.ID, &s.CreatedAt, &chartType, &status, &s.PlaceName); err != nil {
		return domain.Summary{}, err
	}
	s.ChartType = natal.ChartType(chartType)
	s.Status = natal.Status(status)
	return s, nil
}
