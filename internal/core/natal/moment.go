package natal

import (
	"fmt"
	"time"
)

// Assumption strings recorded when the birth moment is approximated
const (
	assumeLocalNoon   = "birth time unknown; using local noon"
	assumeTZHintNoon  = "birth time and place unknown; using local noon in %s"
	assumeUTCNoon     = "birth time and place unknown; using 12:00 UTC"
	assumeTZFellBack  = "timezone %q unrecognized; using UTC"
	assumeNoHouses    = "houses undefined at this latitude; omitted"
	noteMoonUncertain = "moon sign uncertain: moon changes sign during the birth day"
)

// ResolveChartType classifies input completeness. A time without a resolved
// place still lands on the date-only tier since houses need coordinates
func ResolveChartType(in Input) ChartType {
	hasTime := in.Time != nil && !in.TimeUnknown
	hasPlace := in.Latitude != nil && in.Longitude != nil && in.Timezone != ""
	switch {
	case hasTime && hasPlace:
		return ChartFull
	case hasPlace:
		return ChartPlaceOnly
	default:
		return ChartDateOnly
	}
}

// Moment is the single resolved calculation instant for a chart
type Moment struct {
	// Local is the instant expressed in the resolved zone
	Local time.Time
	// UTC is the instant used for every ephemeris query
	UTC time.Time
	// Location is the resolved zone, UTC when none applies
	Location *time.Location
	// Timezone is the zone name recorded in metadata
	Timezone string
	// Assumptions lists any fallbacks taken, in the order they were made
	Assumptions []string
}

// ResolveMoment derives the calculation instant for the given tier. It never
// fails: an unloadable timezone degrades to UTC and records the fallback.
// Date and time components combine directly from the input fields so a
// device-local calendar can never contaminate the result
func ResolveMoment(in Input, tier ChartType) Moment {
	var m Moment

	switch tier {
	case ChartFull:
		m.Location, m.Timezone = loadZone(in.Timezone, &m.Assumptions)
		m.Local = time.Date(in.Date.Year, time.Month(in.Date.Month), in.Date.Day,
			in.Time.Hour, in.Time.Minute, in.Time.Second, 0, m.Location)

	case ChartPlaceOnly:
		m.Location, m.Timezone = loadZone(in.Timezone, &m.Assumptions)
		m.Local = time.Date(in.Date.Year, time.Month(in.Date.Month), in.Date.Day,
			12, 0, 0, 0, m.Location)
		m.Assumptions = append(m.Assumptions, assumeLocalNoon)

	default: // ChartDateOnly
		if in.Timezone != "" {
			if loc, err := time.LoadLocation(in.Timezone); err == nil {
				m.Location, m.Timezone = loc, in.Timezone
				m.Local = time.Date(in.Date.Year, time.Month(in.Date.Month), in.Date.Day,
					12, 0, 0, 0, loc)
				m.Assumptions = append(m.Assumptions, fmt.Sprintf(assumeTZHintNoon, in.Timezone))
				break
			}
			m.Assumptions = append(m.Assumptions, fmt.Sprintf(assumeTZFellBack, in.Timezone))
		}
		m.Location, m.Timezone = time.UTC, "UTC"
		m.Local = time.Date(in.Date.Year, time.Month(in.Date.Month), in.Date.Day,
			12, 0, 0, 0, time.UTC)
		m.Assumptions = append(m.Assumptions, assumeUTCNoon)
	}

	m.UTC = m.Local.UTC()
	return m
}

// loadZone resolves an IANA zone name, falling back to UTC with a recorded
// assumption rather than failing
func loadZone(name string, assumptions *[]string) (*time.Location, string) {
	if name == "" {
		return time.UTC, "UTC"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		*assumptions = append(*assumptions, fmt.Sprintf(assumeTZFellBack, name))
		return time.UTC, "UTC"
	}
	return loc, name
}
