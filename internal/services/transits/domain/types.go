// Package domain holds DTOs and ports for the transits service
package domain

import (
	"time"

	"astrolabe/internal/core/natal"
	"astrolabe/internal/core/transit"
)

// TransitRequest queries transits against either a stored chart or an
// inline set of natal positions; exactly one source must be given.
// At defaults to the current instant; Top of zero returns the full ranking
type TransitRequest struct {
	ChartID   string           `json:"chart_id,omitempty" validate:"omitempty,uuid" example:"6b2f0c4e-1f3a-4f0e-9c1e-2a9d1f6b7c8d"`
	Positions []natal.Position `json:"positions,omitempty" validate:"omitempty,max=24"`
	At        *time.Time       `json:"at,omitempty"`
	Top       int              `json:"top,omitempty" validate:"omitempty,min=1,max=200" example:"10"`
}

// TransitResponse is the ranked transit answer. Aspects are recomputed on
// every query and never persisted
type TransitResponse struct {
	At      time.Time        `json:"at"`
	ChartID string           `json:"chart_id,omitempty"`
	Aspects []transit.Aspect `json:"aspects"`
}
