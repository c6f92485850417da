package natal

import (
	"context"
	"fmt"

	"astrolabe/internal/core/ephem"
	"astrolabe/internal/core/zodiac"
)

// Engine computes charts against an injected ephemeris provider. It holds
// no other state and is safe for concurrent use
type Engine struct {
	provider ephem.Provider
}

// NewEngine wires an engine over a provider
func NewEngine(p ephem.Provider) *Engine {
	return &Engine{provider: p}
}

// chartBodies is the fixed output order: the ten planets then both nodes
var chartBodies = append(append([]ephem.Body{}, ephem.Planets...), ephem.NorthNode, ephem.SouthNode)

// ComputeChart derives a full chart result for the input. Incomplete input
// degrades the completeness tier and is never an error; provider failures
// surface as StatusError with diagnostics in Errors
func (e *Engine) ComputeChart(ctx context.Context, in Input) Result {
	tier := ResolveChartType(in)

	// a named place without resolved coordinates or zone needs the caller
	// to geocode and retry; nothing useful can be computed yet
	if in.PlaceName != "" && (in.Latitude == nil || in.Longitude == nil || in.Timezone == "") {
		return Result{
			Status:    StatusNeedsGeocoding,
			ChartType: tier,
			Metadata: Metadata{
				Input:       in,
				HouseSystem: HouseSystemPlacidus,
				NodeMode:    in.NodeMode(),
			},
			Errors: []string{fmt.Sprintf("place %q is not resolved to coordinates and timezone", in.PlaceName)},
		}
	}

	moment := ResolveMoment(in, tier)
	meta := Metadata{
		Input:        in,
		Timezone:     moment.Timezone,
		HouseSystem:  HouseSystemPlacidus,
		NodeMode:     in.NodeMode(),
		CalculatedAt: moment.UTC,
		Assumptions:  moment.Assumptions,
	}

	positions, err := e.computePositions(ctx, in, moment)
	if err != nil {
		return Result{
			Status:    StatusError,
			ChartType: tier,
			Metadata:  meta,
			Errors:    []string{fmt.Sprintf("ephemeris query failed: %v", err)},
		}
	}

	// the uncertainty check always runs so metadata stays consistent, but
	// only charts computed without an exact time carry the flag
	start, end, differs, err := moonUncertainty(ctx, e.provider, in.Date, moment.Location)
	if err != nil {
		return Result{
			Status:    StatusError,
			ChartType: tier,
			Metadata:  meta,
			Errors:    []string{fmt.Sprintf("moon uncertainty check failed: %v", err)},
		}
	}
	if differs && tier != ChartFull {
		for i := range positions {
			if positions[i].Body == ephem.Moon {
				positions[i].SignUncertain = true
				positions[i].PossibleSigns = []zodiac.Sign{start, end}
			}
		}
	}

	var angles *Angles
	var houses []House
	if tier == ChartFull {
		h, err := e.provider.Houses(ctx, moment.UTC, *in.Latitude, *in.Longitude)
		if err != nil {
			return Result{
				Status:    StatusError,
				ChartType: tier,
				Metadata:  meta,
				Errors:    []string{fmt.Sprintf("house computation failed: %v", err)},
			}
		}
		if h == nil {
			// Placidus is undefined at this latitude; degrade, not fail
			meta.Assumptions = append(meta.Assumptions, assumeNoHouses)
		} else {
			angles = buildAngles(h)
			houses = buildHouses(h)
			assignHouses(positions, angles.Ascendant.Sign)
		}
	}

	return Result{
		Status:       StatusOK,
		ChartType:    tier,
		Metadata:     meta,
		Angles:       angles,
		Houses:       houses,
		Positions:    positions,
		Aspects:      ComputeAspects(positions),
		Evolutionary: buildEvolutionaryCore(positions, angles, tier),
	}
}

// computePositions queries every chart body at the resolved instant, in the
// fixed output order
func (e *Engine) computePositions(ctx context.Context, in Input, moment Moment) ([]Position, error) {
	out := make([]Position, 0, len(chartBodies))
	for _, body := range chartBodies {
		var lon float64
		var retro bool

		switch body {
		case ephem.NorthNode, ephem.SouthNode:
			node, err := e.provider.Node(ctx, moment.UTC, in.TrueNode)
			if err != nil {
				return nil, fmt.Errorf("node: %w", err)
			}
			if body == ephem.SouthNode {
				node = zodiac.Opposite(node)
			}
			lon = node
			retro = true // nodes are retrograde by convention
		default:
			pos, err := e.provider.Position(ctx, body, moment.UTC)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", body, err)
			}
			lon = pos.Lon
			retro = pos.Speed < 0
		}

		lon = zodiac.Normalize(lon)
		out = append(out, Position{
			Body:         body,
			Longitude:    lon,
			Sign:         zodiac.SignOf(lon),
			DegreeInSign: zodiac.DegreeInSign(lon),
			Retrograde:   retro,
		})
	}
	return out, nil
}
