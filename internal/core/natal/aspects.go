package natal

import (
	"math"

	"astrolabe/internal/core/ephem"
	"astrolabe/internal/core/zodiac"
)

// categoryOrb is the per-body aspect tolerance. Luminaries get the widest
// orb, personal planets a middle one, everything else the tightest
func categoryOrb(b ephem.Body) float64 {
	switch b {
	case ephem.Sun, ephem.Moon:
		return 8
	case ephem.Mercury, ephem.Venus, ephem.Mars:
		return 6
	default:
		return 5
	}
}

// MatchAspect tests the five aspect angles in fixed order against a
// separation and returns the first one within orb. Only one aspect is ever
// reported for a pair. Transit matching shares this exact logic
func MatchAspect(separation, orb float64) (AspectType, float64, bool) {
	for _, aa := range aspectAngles {
		dev := math.Abs(separation - aa.Angle)
		if dev <= orb {
			return aa.Type, dev, true
		}
	}
	return "", 0, false
}

// ComputeAspects derives every pairwise aspect among the given positions.
// Pairs iterate in ascending index order so output ordering is reproducible.
// The pair tolerance is the smaller of the two bodies' category orbs
func ComputeAspects(positions []Position) []Aspect {
	var out []Aspect
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			a, b := positions[i], positions[j]
			orb := math.Min(categoryOrb(a.Body), categoryOrb(b.Body))
			sep := zodiac.Separation(a.Longitude, b.Longitude)
			typ, dev, ok := MatchAspect(sep, orb)
			if !ok {
				continue
			}
			out = append(out, Aspect{
				BodyA:      a.Body,
				BodyB:      b.Body,
				Type:       typ,
				Separation: sep,
				Orb:        dev,
			})
		}
	}
	return out
}
