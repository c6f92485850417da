package transit

import (
	"context"
	"errors"
	"testing"
	"time"

	"astrolabe/internal/core/ephem"
	"astrolabe/internal/core/natal"
)

type fakeProvider struct {
	lons     map[ephem.Body]float64
	node     float64
	nodeMode *bool // records the trueNode flag of the last Node call
	err      error
}

func (f *fakeProvider) Position(_ context.Context, body ephem.Body, _ time.Time) (ephem.Position, error) {
	if f.err != nil {
		return ephem.Position{}, f.err
	}
	return ephem.Position{Lon: f.lons[body], Speed: 1}, nil
}

func (f *fakeProvider) Node(_ context.Context, _ time.Time, trueNode bool) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.nodeMode = &trueNode
	return f.node, nil
}

func (f *fakeProvider) Houses(_ context.Context, _ time.Time, _, _ float64) (*ephem.Houses, error) {
	return nil, nil
}

// quietProvider places every transiting body far from any aspect to a natal
// point at 10 degrees, then tests override individual bodies
func quietProvider() *fakeProvider {
	return &fakeProvider{
		lons: map[ephem.Body]float64{
			ephem.Sun: 45, ephem.Moon: 55, ephem.Mercury: 330,
			ephem.Venus: 208, ephem.Mars: 255, ephem.Jupiter: 290,
			ephem.Saturn: 45, ephem.Uranus: 150, ephem.Neptune: 118,
			ephem.Pluto: 45,
		},
		node: 223,
	}
}

func natalSun(lon float64) natal.Position {
	return natal.Position{Body: ephem.Sun, Longitude: lon}
}

func TestSignificanceScoring(t *testing.T) {
	cases := []struct {
		name       string
		transiting ephem.Body
		natalBody  ephem.Body
		typ        natal.AspectType
		orb        float64
		want       int
	}{
		// outer to personal opposition under a degree: 10 + 3 + 3
		{"pluto opposition natal sun", ephem.Pluto, ephem.Sun, natal.Opposition, 0.5, 16},
		{"saturn square natal sun tight", ephem.Saturn, ephem.Sun, natal.Square, 0.2, 15},
		{"jupiter trine natal venus", ephem.Jupiter, ephem.Venus, natal.Trine, 1.5, 9},
		{"moon conjunct natal moon wide", ephem.Moon, ephem.Moon, natal.Conjunction, 3.0, 8},
		{"mercury sextile natal mars", ephem.Mercury, ephem.Mars, natal.Sextile, 2.5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := significance(tc.transiting, tc.natalBody, tc.typ, tc.orb); got != tc.want {
				t.Errorf("significance = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeRanksByScore(t *testing.T) {
	p := quietProvider()
	p.lons[ephem.Pluto] = 189.5 // opposition to natal sun, orb 0.5 -> 16
	p.lons[ephem.Saturn] = 100  // square to natal sun, exact -> 15
	p.lons[ephem.Moon] = 12     // conjunction, orb 2 -> 8

	calc := NewCalculator(p)
	got, err := calc.Compute(context.Background(), []natal.Position{natalSun(10)}, time.Now())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("aspects = %d (%+v), want 3", len(got), got)
	}

	wantOrder := []ephem.Body{ephem.Pluto, ephem.Saturn, ephem.Moon}
	wantScores := []int{16, 15, 8}
	for i := range wantOrder {
		if got[i].Transiting.Body != wantOrder[i] || got[i].Score != wantScores[i] {
			t.Errorf("rank %d = %s score %d, want %s score %d",
				i, got[i].Transiting.Body, got[i].Score, wantOrder[i], wantScores[i])
		}
	}
	if got[0].Type != natal.Opposition || got[0].Orb != 0.5 {
		t.Errorf("top aspect = %s orb %v, want opposition 0.5", got[0].Type, got[0].Orb)
	}
}

func TestComputeExcludesSouthNode(t *testing.T) {
	p := quietProvider()
	p.lons[ephem.Pluto] = 189.5

	natalPts := []natal.Position{
		natalSun(10),
		{Body: ephem.SouthNode, Longitude: 189.5}, // would be an exact conjunction
	}
	calc := NewCalculator(p)
	got, err := calc.Compute(context.Background(), natalPts, time.Now())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for _, a := range got {
		if a.Natal.Body == ephem.SouthNode || a.Transiting.Body == ephem.SouthNode {
			t.Errorf("south node leaked into transits: %+v", a)
		}
	}
}

func TestComputeAlwaysUsesTrueNode(t *testing.T) {
	p := quietProvider()
	calc := NewCalculator(p)
	if _, err := calc.Compute(context.Background(), []natal.Position{natalSun(10)}, time.Now()); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if p.nodeMode == nil || !*p.nodeMode {
		t.Error("transit node query must request the true node")
	}
}

func TestTopTruncates(t *testing.T) {
	p := quietProvider()
	p.lons[ephem.Pluto] = 189.5
	p.lons[ephem.Saturn] = 100
	p.lons[ephem.Moon] = 12

	calc := NewCalculator(p)
	got, err := calc.Top(context.Background(), []natal.Position{natalSun(10)}, time.Now(), 2)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("top = %d aspects, want 2", len(got))
	}
	if got[0].Transiting.Body != ephem.Pluto || got[1].Transiting.Body != ephem.Saturn {
		t.Errorf("top order = %s, %s", got[0].Transiting.Body, got[1].Transiting.Body)
	}
}

func TestComputePropagatesProviderFailure(t *testing.T) {
	p := quietProvider()
	p.err = errors.New("ephemeris offline")
	calc := NewCalculator(p)
	if _, err := calc.Compute(context.Background(), []natal.Position{natalSun(10)}, time.Now()); err == nil {
		t.Fatal("want provider error to propagate")
	}
}
