package natal

import (
	"astrolabe/internal/core/ephem"
	"astrolabe/internal/core/zodiac"
)

// buildAngles shapes the provider's house answer into the four chart angles
func buildAngles(h *ephem.Houses) *Angles {
	point := func(name string, lon float64) AnglePoint {
		lon = zodiac.Normalize(lon)
		return AnglePoint{
			Name:         name,
			Longitude:    lon,
			Sign:         zodiac.SignOf(lon),
			DegreeInSign: zodiac.DegreeInSign(lon),
		}
	}
	return &Angles{
		Ascendant:  point("ascendant", h.Ascendant),
		Midheaven:  point("midheaven", h.Midheaven),
		Descendant: point("descendant", zodiac.Opposite(h.Ascendant)),
		IC:         point("ic", zodiac.Opposite(h.Midheaven)),
	}
}

// buildHouses shapes the provider's twelve cusp longitudes
func buildHouses(h *ephem.Houses) []House {
	out := make([]House, 12)
	for i, cusp := range h.Cusps {
		cusp = zodiac.Normalize(cusp)
		out[i] = House{
			Number:     i + 1,
			Sign:       zodiac.SignOf(cusp),
			CuspDegree: cusp,
		}
	}
	return out
}

// assignHouses sets each position's house by whole-sign offset from the
// rising sign. Houses follow sign boundaries, not literal cusp degrees,
// even though exact cusp degrees are computed and exposed alongside
func assignHouses(positions []Position, rising zodiac.Sign) {
	for i := range positions {
		h := ((positions[i].Sign.Index()-rising.Index())+12)%12 + 1
		positions[i].House = &h
	}
}
