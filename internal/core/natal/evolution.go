package natal

import "astrolabe/internal/core/ephem"

// Caveat notes emitted on the evolutionary core
const (
	notePlacidus      = "Placidus houses used"
	noteHousesOmitted = "Houses omitted when birth time/place unknown"
)

// buildEvolutionaryCore extracts the curated point subset and its caveats.
// Each point is optional and simply absent when not computed
func buildEvolutionaryCore(positions []Position, angles *Angles, tier ChartType) EvolutionaryCore {
	core := EvolutionaryCore{Notes: []string{notePlacidus}}

	for i := range positions {
		p := &positions[i]
		switch p.Body {
		case ephem.Pluto:
			core.Pluto = p
		case ephem.NorthNode:
			core.NorthNode = p
		case ephem.SouthNode:
			core.SouthNode = p
		case ephem.Moon:
			core.Moon = p
		case ephem.Sun:
			core.Sun = p
		}
	}

	if angles != nil {
		rising := angles.Ascendant.Sign
		core.RisingSign = &rising
	}

	if tier != ChartFull {
		core.Notes = append(core.Notes, noteHousesOmitted)
	}
	if core.Moon != nil && core.Moon.SignUncertain {
		core.Notes = append(core.Notes, noteMoonUncertain)
	}
	return core
}
