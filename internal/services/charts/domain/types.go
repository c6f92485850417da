// Package domain holds DTOs and ports for the charts service
package domain

import (
	"time"

	"astrolabe/internal/core/natal"
	"astrolabe/internal/core/place"
	perr "astrolabe/internal/platform/errors"

	"github.com/google/uuid"
)

// ChartRequest is the input for computing a chart. Missing time or place
// degrades the chart rather than failing validation
type ChartRequest struct {
	Date        string   `json:"date" validate:"required,calendar_date" example:"1990-07-15"`
	Time        string   `json:"time,omitempty" validate:"omitempty,datetime=15:04:05|datetime=15:04" example:"14:30"`
	TimeUnknown bool     `json:"time_unknown,omitempty"`
	PlaceName   string   `json:"place_name,omitempty" validate:"omitempty,min=1,max=200" example:"London"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude" example:"51.5074"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude" example:"-0.1278"`
	Timezone    string   `json:"timezone,omitempty" validate:"omitempty,iana_tz" example:"Europe/London"`
	TrueNode    bool     `json:"true_node,omitempty"`
}

// Input converts the request into an engine input. The place name is tidied
// so stored charts agree on spelling regardless of entry style
func (r ChartRequest) Input() (natal.Input, error) {
	day, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return natal.Input{}, perr.InvalidArgf("date %q: want YYYY-MM-DD", r.Date)
	}

	in := natal.Input{
		Date:        natal.Date{Year: day.Year(), Month: int(day.Month()), Day: day.Day()},
		TimeUnknown: r.TimeUnknown,
		PlaceName:   place.Display(r.PlaceName),
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Timezone:    r.Timezone,
		TrueNode:    r.TrueNode,
	}

	if r.Time != "" {
		layout := "15:04:05"
		if len(r.Time) == 5 {
			layout = "15:04"
		}
		clk, err := time.Parse(layout, r.Time)
		if err != nil {
			return natal.Input{}, perr.InvalidArgf("time %q: want HH:MM or HH:MM:SS", r.Time)
		}
		in.Time = &natal.Clock{Hour: clk.Hour(), Minute: clk.Minute(), Second: clk.Second()}
	}
	return in, nil
}

// PlaceKey returns the canonical lookup key for the requested place
func (r ChartRequest) PlaceKey() string { return place.Key(r.PlaceName) }

// Chart is a stored chart row
type Chart struct {
	ID        uuid.UUID       `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	ChartType natal.ChartType `json:"chart_type"`
	Status    natal.Status    `json:"status"`
	PlaceName string          `json:"place_name,omitempty"`
	Result    natal.Result    `json:"result"`
}

// Summary is a stored chart without its full result payload
type Summary struct {
	ID        uuid.UUID       `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	ChartType natal.ChartType `json:"chart_type"`
	Status    natal.Status    `json:"status"`
	PlaceName string          `json:"place_name,omitempty"`
}

// CreateResponse carries the computed result plus the stored id when the
// result was complete enough to persist. Results that need geocoding or
// failed are returned but never stored
type CreateResponse struct {
	ID     *uuid.UUID   `json:"id,omitempty"`
	Result natal.Result `json:"result"`
}

// ListRequest bounds a recent-charts listing
type ListRequest struct {
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}
