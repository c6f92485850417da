package ephem

import "math"

// Truncated lunar longitude series. The fundamental arguments and the
// coefficient table follow the standard ELP-derived expansion; terms below
// about 0.002 degrees are dropped, keeping the worst case error under an
// arcminute or two which is far inside sign resolution

// lunarArgs are the fundamental arguments at T centuries from J2000, degrees
type lunarArgs struct {
	lp float64 // mean longitude
	d  float64 // mean elongation
	m  float64 // solar mean anomaly
	mp float64 // lunar mean anomaly
	f  float64 // argument of latitude
	e  float64 // eccentricity damping factor
}

func lunarArguments(t float64) lunarArgs {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	return lunarArgs{
		lp: 218.3164477 + 481267.88123421*t - 0.0015786*t2 + t3/538841 - t4/65194000,
		d:  297.8501921 + 445267.1114034*t - 0.0018819*t2 + t3/545868 - t4/113065000,
		m:  357.5291092 + 35999.0502909*t - 0.0001536*t2 + t3/24490000,
		mp: 134.9633964 + 477198.8675055*t + 0.0087414*t2 + t3/69699 - t4/14712000,
		f:  93.2720950 + 483202.0175233*t - 0.0036539*t2 - t3/3526000 + t4/863310000,
		e:  1 - 0.002516*t - 0.0000074*t2,
	}
}

// moonTerm multiplies the four fundamental arguments; coef is in 1e-6 degrees
type moonTerm struct {
	d, m, mp, f int
	coef        float64
}

var moonLonTerms = []moonTerm{
	{0, 0, 1, 0, 6288774},
	{2, 0, -1, 0, 1274027},
	{2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618},
	{0, 1, 0, 0, -185116},
	{0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793},
	{2, -1, -1, 0, 57066},
	{2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758},
	{0, 1, -1, 0, -40923},
	{1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383},
	{2, 0, 0, -2, 15327},
	{0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980},
	{4, 0, -1, 0, 10675},
	{0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548},
	{2, 1, -1, 0, -7888},
	{2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163},
	{1, 1, 0, 0, 4987},
	{2, -1, 1, 0, 4036},
	{2, 0, 2, 0, 3994},
	{4, 0, 0, 0, 3861},
	{2, 0, -3, 0, 3665},
	{0, 1, -2, 0, -2689},
	{2, 0, -1, 2, -2602},
	{2, -1, -2, 0, 2390},
	{1, 0, 1, 0, -2348},
	{2, -2, 0, 0, 2236},
}

// moonLongitude returns the geocentric lunar longitude in degrees
func moonLongitude(t float64) float64 {
	args := lunarArguments(t)

	var sum float64
	for _, term := range moonLonTerms {
		arg := float64(term.d)*args.d + float64(term.m)*args.m +
			float64(term.mp)*args.mp + float64(term.f)*args.f
		coef := term.coef
		// solar anomaly terms shrink as Earth's eccentricity decays
		switch term.m {
		case 1, -1:
			coef *= args.e
		case 2, -2:
			coef *= args.e * args.e
		}
		sum += coef * math.Sin(deg2rad(arg))
	}

	// additive terms from Venus and Jupiter perturbations and the flattening
	a1 := 119.75 + 131.849*t
	a2 := 53.09 + 479264.290*t
	sum += 3958 * math.Sin(deg2rad(a1))
	sum += 1962 * math.Sin(deg2rad(args.lp-args.f))
	sum += 318 * math.Sin(deg2rad(a2))

	return normalizeDeg(args.lp + sum/1e6)
}

// meanNodeLongitude returns the mean ascending lunar node in degrees.
// The node regresses through the zodiac in about 18.6 years
func meanNodeLongitude(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	return normalizeDeg(125.0445479 - 1934.1362891*t + 0.0020754*t2 + t3/467441 - t4/60616000)
}

// trueNodeLongitude applies the principal periodic corrections to the mean node
func trueNodeLongitude(t float64) float64 {
	args := lunarArguments(t)
	corr := -1.4979*math.Sin(deg2rad(2*(args.d-args.f))) -
		0.1500*math.Sin(deg2rad(args.m)) -
		0.1226*math.Sin(deg2rad(2*args.d)) +
		0.1176*math.Sin(deg2rad(2*args.f)) -
		0.0801*math.Sin(deg2rad(2*(args.mp-args.f)))
	return normalizeDeg(meanNodeLongitude(t) + corr)
}
