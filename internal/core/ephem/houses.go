package ephem

import "math"

// Placidus house computation. Intermediate cusps are found by fixed point
// iteration on the semi-arc trisection; the iteration diverges inside the
// polar circles where the system is undefined, in which case the caller
// receives nil and degrades to a houseless chart

// gmstDeg returns Greenwich mean sidereal time in degrees
func gmstDeg(jd float64) float64 {
	d := jd - j2000JD
	t := d / 36525
	return normalizeDeg(280.46061837 + 360.98564736629*d + 0.000387933*t*t - t*t*t/38710000)
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees
func meanObliquity(t float64) float64 {
	return 23.4392911111 - 0.0130041667*t - 1.6389e-7*t*t + 5.0361e-7*t*t*t
}

// eclipticFromRA converts a right ascension back to ecliptic longitude
// for a point on the ecliptic
func eclipticFromRA(raDeg, epsRad float64) float64 {
	ra := deg2rad(raDeg)
	return normalizeDeg(rad2deg(math.Atan2(math.Sin(ra), math.Cos(ra)*math.Cos(epsRad))))
}

// ascendantDeg returns the ecliptic longitude rising on the eastern horizon
func ascendantDeg(ramcDeg, epsRad, latRad float64) float64 {
	ramc := deg2rad(ramcDeg)
	y := math.Cos(ramc)
	x := -(math.Sin(ramc)*math.Cos(epsRad) + math.Tan(latRad)*math.Sin(epsRad))
	return normalizeDeg(rad2deg(math.Atan2(y, x)))
}

// placidusCusp iterates one intermediate cusp. fraction is the semi-arc
// trisection share and nocturnal selects the semi-nocturnal arc used for
// cusps 2 and 3. ok is false when the cusp point is circumpolar
func placidusCusp(ramcDeg, fraction float64, nocturnal bool, epsRad, latRad float64) (lon float64, ok bool) {
	// seed from the equal-division right ascension
	seed := ramcDeg + fraction*90
	if nocturnal {
		seed = ramcDeg + 180 - fraction*90
	}
	lon = eclipticFromRA(seed, epsRad)

	for i := 0; i < 60; i++ {
		decl := math.Asin(math.Sin(epsRad) * math.Sin(deg2rad(lon)))
		cosH := -math.Tan(latRad) * math.Tan(decl)
		if cosH < -1 || cosH > 1 {
			return 0, false
		}
		sa := rad2deg(math.Acos(cosH)) // semi-diurnal arc

		var targetRA float64
		if nocturnal {
			sn := 180 - sa
			targetRA = ramcDeg + 180 - fraction*sn
		} else {
			targetRA = ramcDeg + fraction*sa
		}

		next := eclipticFromRA(targetRA, epsRad)
		if math.Abs(signedDelta(lon, next)) < 1e-7 {
			return next, true
		}
		lon = next
	}
	return lon, true
}

// placidusHouses returns the full cusp set, or nil when undefined at the
// latitude. lonDeg is geographic longitude, east positive
func placidusHouses(jd, latDeg, lonDeg float64) *Houses {
	t := centuries(jd)
	epsDeg := meanObliquity(t)
	eps := deg2rad(epsDeg)
	lat := deg2rad(latDeg)

	// the horizon itself degenerates inside the polar circles
	if math.Abs(latDeg) >= 90-epsDeg {
		return nil
	}

	ramc := normalizeDeg(gmstDeg(jd) + lonDeg)
	mc := eclipticFromRA(ramc, eps)
	asc := ascendantDeg(ramc, eps, lat)

	c11, ok11 := placidusCusp(ramc, 1.0/3.0, false, eps, lat)
	c12, ok12 := placidusCusp(ramc, 2.0/3.0, false, eps, lat)
	c2, ok2 := placidusCusp(ramc, 2.0/3.0, true, eps, lat)
	c3, ok3 := placidusCusp(ramc, 1.0/3.0, true, eps, lat)
	if !ok11 || !ok12 || !ok2 || !ok3 {
		return nil
	}

	h := &Houses{Ascendant: asc, Midheaven: mc}
	h.Cusps[0] = asc
	h.Cusps[1] = c2
	h.Cusps[2] = c3
	h.Cusps[3] = normalizeDeg(mc + 180) // IC
	h.Cusps[4] = normalizeDeg(c11 + 180)
	h.Cusps[5] = normalizeDeg(c12 + 180)
	h.Cusps[6] = normalizeDeg(asc + 180) // Descendant
	h.Cusps[7] = normalizeDeg(c2 + 180)
	h.Cusps[8] = normalizeDeg(c3 + 180)
	h.Cusps[9] = mc
	h.Cusps[10] = c11
	h.Cusps[11] = c12
	return h
}
