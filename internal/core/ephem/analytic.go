package ephem

import (
	"context"
	"fmt"
	"math"
	"time"
)

const (
	j2000JD = 2451545.0
	// speedStep is the half-width in days of the central difference
	// used for longitude speeds
	speedStep = 0.02
)

// Analytic is the built-in ephemeris provider. Planet longitudes come from
// the embedded Keplerian element table, the Moon from a truncated periodic
// series, and houses from Placidus semi-arc iteration. Accuracy is well
// inside one degree for 1800-2050, which holds sign and aspect boundaries
type Analytic struct {
	table *elementTable
}

// NewAnalytic builds a provider over the embedded element table
func NewAnalytic() (*Analytic, error) {
	tbl, err := loadElements()
	if err != nil {
		return nil, err
	}
	return &Analytic{table: tbl}, nil
}

// Position returns the geocentric ecliptic longitude and speed for a body
func (a *Analytic) Position(ctx context.Context, body Body, at time.Time) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}

	jd := julianDay(at)
	lonAt := func(jd float64) (float64, error) { return a.longitudeAt(body, jd) }

	lon, err := lonAt(jd)
	if err != nil {
		return Position{}, err
	}
	before, err := lonAt(jd - speedStep)
	if err != nil {
		return Position{}, err
	}
	after, err := lonAt(jd + speedStep)
	if err != nil {
		return Position{}, err
	}

	return Position{
		Lon:   normalizeDeg(lon),
		Speed: signedDelta(before, after) / (2 * speedStep),
	}, nil
}

// Node returns the lunar node longitude, true or mean
func (a *Analytic) Node(ctx context.Context, at time.Time, trueNode bool) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	t := centuries(julianDay(at))
	if trueNode {
		return trueNodeLongitude(t), nil
	}
	return meanNodeLongitude(t), nil
}

// Houses computes Placidus angles and cusps for a UTC instant and geographic
// place. It returns (nil, nil) when the system is undefined at the latitude
func (a *Analytic) Houses(ctx context.Context, at time.Time, lat, lon float64) (*Houses, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return placidusHouses(julianDay(at), lat, lon), nil
}

// longitudeAt dispatches to the body-specific longitude model
func (a *Analytic) longitudeAt(body Body, jd float64) (float64, error) {
	t := centuries(jd)
	switch body {
	case Moon:
		return moonLongitude(t), nil
	case NorthNode:
		return trueNodeLongitude(t), nil
	case SouthNode:
		return normalizeDeg(trueNodeLongitude(t) + 180), nil
	case Sun:
		ex, ey := a.heliocentricXY("earth", t)
		return rad2deg(math.Atan2(-ey, -ex)), nil
	}

	name := body.String()
	if _, ok := a.table.byName[name]; !ok {
		return 0, fmt.Errorf("ephem: no element row for %q", name)
	}
	px, py := a.heliocentricXY(name, t)
	ex, ey := a.heliocentricXY("earth", t)
	return rad2deg(math.Atan2(py-ey, px-ex)), nil
}

// heliocentricXY returns ecliptic-plane heliocentric coordinates in au.
// The z component is dropped; longitudes only need the plane projection
func (a *Analytic) heliocentricXY(name string, t float64) (x, y float64) {
	el := a.table.byName[name]

	axis := el.A.at(t)
	ecc := el.E.at(t)
	inc := deg2rad(el.I.at(t))
	meanLon := el.L.at(t)
	periLon := el.Peri.at(t)
	nodeLon := el.Node.at(t)

	ea := solveKepler(meanLon-periLon, ecc)
	xp := axis * (math.Cos(ea) - ecc)
	yp := axis * math.Sqrt(1-ecc*ecc) * math.Sin(ea)

	w := deg2rad(periLon - nodeLon)
	om := deg2rad(nodeLon)
	cw, sw := math.Cos(w), math.Sin(w)
	co, so := math.Cos(om), math.Sin(om)
	ci := math.Cos(inc)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	return x, y
}

// solveKepler inverts M = E - e sin E by Newton iteration.
// mDeg is the mean anomaly in degrees; the result is in radians
func solveKepler(mDeg, ecc float64) float64 {
	m := deg2rad(normalizeDeg(mDeg))
	ea := m + ecc*math.Sin(m)
	for i := 0; i < 32; i++ {
		d := (ea - ecc*math.Sin(ea) - m) / (1 - ecc*math.Cos(ea))
		ea -= d
		if math.Abs(d) < 1e-12 {
			break
		}
	}
	return ea
}

// julianDay converts a wall time to a Julian day number
func julianDay(t time.Time) float64 {
	return float64(t.UTC().UnixNano())/(86400*1e9) + 2440587.5
}

// centuries converts a Julian day to Julian centuries from J2000
func centuries(jd float64) float64 { return (jd - j2000JD) / 36525 }

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

// normalizeDeg wraps an angle into [0,360)
func normalizeDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// signedDelta returns the shortest signed arc from a to b, in (-180,180]
func signedDelta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}
	return d
}
