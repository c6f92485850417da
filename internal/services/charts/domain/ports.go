package domain

import (
	"context"

	"astrolabe/internal/core/natal"

	"github.com/google/uuid"
)

// ReaderPort exposes stored natal positions for other modules, keeping the
// full chart payload private to this service
type ReaderPort interface {
	Positions(ctx context.Context, id uuid.UUID) ([]natal.Position, error)
}

// ServicePort is the charts surface mounted over http
type ServicePort interface {
	Create(ctx context.Context, req ChartRequest) (CreateResponse, error)
	Preview(ctx context.Context, req ChartRequest) (natal.Result, error)
	Get(ctx context.Context, id uuid.UUID) (Chart, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListRecent(ctx context.Context, limit int) ([]Summary, error)
}
