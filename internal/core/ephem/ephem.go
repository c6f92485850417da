// Package ephem defines the ephemeris contract the chart engine consumes and
// ships a built-in analytic provider backed by embedded orbital element tables.
// Longitudes are geocentric tropical ecliptic degrees in [0,360); speeds are
// degrees per day with negative meaning retrograde
package ephem

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Body identifies a chart body the provider can position
type Body int

// Bodies in traditional order; nodes last
const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	NorthNode
	SouthNode
)

// Planets is the fixed query order for the ten classical/modern planets
var Planets = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

var bodyNames = map[Body]string{
	Sun: "sun", Moon: "moon", Mercury: "mercury", Venus: "venus", Mars: "mars",
	Jupiter: "jupiter", Saturn: "saturn", Uranus: "uranus", Neptune: "neptune",
	Pluto: "pluto", NorthNode: "north_node", SouthNode: "south_node",
}

// String returns the lowercase body name
func (b Body) String() string {
	if n, ok := bodyNames[b]; ok {
		return n
	}
	return fmt.Sprintf("body(%d)", int(b))
}

// MarshalJSON encodes the body as its lowercase name
func (b Body) MarshalJSON() ([]byte, error) { return json.Marshal(b.String()) }

// UnmarshalJSON decodes a lowercase body name
func (b *Body) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return err
	}
	for k, v := range bodyNames {
		if strings.EqualFold(v, name) {
			*b = k
			return nil
		}
	}
	return fmt.Errorf("ephem: unknown body %q", name)
}

// IsOuter reports whether b is one of the slow outer planets
func (b Body) IsOuter() bool { return b == Uranus || b == Neptune || b == Pluto }

// IsPersonal reports whether b is one of the fast personal planets
func (b Body) IsPersonal() bool {
	switch b {
	case Sun, Moon, Mercury, Venus, Mars:
		return true
	}
	return false
}

// Position is a raw ephemeris answer for one body at one instant
type Position struct {
	// Lon is the geocentric ecliptic longitude in degrees [0,360)
	Lon float64
	// Speed is the instantaneous longitude rate in degrees per day;
	// negative speed means the body is retrograde
	Speed float64
}

// Houses carries the Placidus angles and cusps for a date and place.
// Cusps[0] is the first house cusp (the Ascendant)
type Houses struct {
	Ascendant float64
	Midheaven float64
	Cusps     [12]float64
}

// Provider is the ephemeris surface the chart engine depends on.
// Implementations must be safe for concurrent use and must report failures
// as errors; they must never substitute default positions.
//
// Houses returns (nil, nil) when the house system is mathematically
// undefined at the requested latitude; callers degrade to a houseless chart
type Provider interface {
	Position(ctx context.Context, body Body, at time.Time) (Position, error)
	Node(ctx context.Context, at time.Time, trueNode bool) (float64, error)
	Houses(ctx context.Context, at time.Time, lat, lon float64) (*Houses, error)
}
