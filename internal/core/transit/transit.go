// Package transit compares live planetary positions against a stored natal
// chart and ranks the resulting aspects by significance. Results are always
// recomputed on demand and never treated as a source of truth
package transit

import (
	"context"
	"fmt"
	"sort"
	"time"

	"astrolabe/internal/core/ephem"
	"astrolabe/internal/core/natal"
	"astrolabe/internal/core/zodiac"
)

// Aspect is one transit hit with its ranking score
type Aspect struct {
	Transiting natal.Position   `json:"transiting"`
	Natal      natal.Position   `json:"natal"`
	Type       natal.AspectType `json:"type"`
	Separation float64          `json:"separation"`
	Orb        float64          `json:"orb"`
	Applying   *bool            `json:"applying,omitempty"`
	Score      int              `json:"score"`
}

// Calculator computes transits against an injected ephemeris provider
type Calculator struct {
	provider ephem.Provider
}

// NewCalculator wires a calculator over a provider
func NewCalculator(p ephem.Provider) *Calculator {
	return &Calculator{provider: p}
}

// transitingBodies is the fixed transit query order. The South Node is
// excluded on both sides of the comparison; it duplicates the North Node
var transitingBodies = append(append([]ephem.Body{}, ephem.Planets...), ephem.NorthNode)

// transitOrb is the tolerance keyed by the transiting body alone
func transitOrb(b ephem.Body) float64 {
	switch b {
	case ephem.Pluto, ephem.Neptune, ephem.Uranus:
		return 3
	case ephem.Saturn, ephem.Jupiter:
		return 4
	case ephem.Sun, ephem.Moon:
		return 5
	default:
		return 3
	}
}

// significance scores one transit aspect for ranking. Bonuses stack
func significance(transiting, natalBody ephem.Body, typ natal.AspectType, orb float64) int {
	score := 0
	if transiting.IsOuter() && natalBody.IsPersonal() {
		score += 10
	}
	if transiting == ephem.Saturn || transiting == ephem.Jupiter {
		score += 7
	}
	if natalBody == ephem.Sun || natalBody == ephem.Moon {
		score += 5
	}
	if typ == natal.Conjunction || typ == natal.Opposition {
		score += 3
	}
	switch {
	case orb < 1:
		score += 3
	case orb < 2:
		score += 2
	}
	return score
}

// Compute queries current positions at the given instant and returns every
// aspect they form against the natal positions, ranked by score. Ties break
// by transiting body order then natal body order so the ranking is stable
// across platforms. Node queries always use the true node
func (c *Calculator) Compute(ctx context.Context, natalPositions []natal.Position, at time.Time) ([]Aspect, error) {
	current, err := c.currentPositions(ctx, at)
	if err != nil {
		return nil, err
	}

	var out []Aspect
	for _, tr := range current {
		orb := transitOrb(tr.Body)
		for _, np := range natalPositions {
			if np.Body == ephem.SouthNode {
				continue
			}
			sep := zodiac.Separation(tr.Longitude, np.Longitude)
			typ, dev, ok := natal.MatchAspect(sep, orb)
			if !ok {
				continue
			}
			out = append(out, Aspect{
				Transiting: tr,
				Natal:      np,
				Type:       typ,
				Separation: sep,
				Orb:        dev,
				Score:      significance(tr.Body, np.Body, typ, dev),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Transiting.Body != out[j].Transiting.Body {
			return out[i].Transiting.Body < out[j].Transiting.Body
		}
		return out[i].Natal.Body < out[j].Natal.Body
	})
	return out, nil
}

// Top computes transits and truncates to the n highest ranked
func (c *Calculator) Top(ctx context.Context, natalPositions []natal.Position, at time.Time, n int) ([]Aspect, error) {
	all, err := c.Compute(ctx, natalPositions, at)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all, nil
}

// currentPositions queries each transiting body at the instant
func (c *Calculator) currentPositions(ctx context.Context, at time.Time) ([]natal.Position, error) {
	out := make([]natal.Position, 0, len(transitingBodies))
	for _, body := range transitingBodies {
		var lon float64
		var retro bool

		if body == ephem.NorthNode {
			node, err := c.provider.Node(ctx, at, true)
			if err != nil {
				return nil, fmt.Errorf("node: %w", err)
			}
			lon, retro = node, true
		} else {
			pos, err := c.provider.Position(ctx, body, at)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", body, err)
			}
			lon, retro = pos.Lon, pos.Speed < 0
		}

		lon = zodiac.Normalize(lon)
		out = append(out, natal.Position{
			Body:         body,
			Longitude:    lon,
			Sign:         zodiac.SignOf(lon),
			DegreeInSign: zodiac.DegreeInSign(lon),
			Retrograde:   retro,
		})
	}
	return out, nil
}
