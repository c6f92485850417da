// Package zodiac provides ecliptic longitude math and the twelve sign segments.
// All longitudes are tropical degrees in [0,360)
package zodiac

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Sign is one of the twelve 30 degree segments of the ecliptic
type Sign int

// Signs in zodiacal order starting at 0 Aries
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

// String returns the lowercase sign name
func (s Sign) String() string {
	if s < 0 || s > 11 {
		return fmt.Sprintf("sign(%d)", int(s))
	}
	return signNames[s]
}

// Index returns the zodiacal index 0..11
func (s Sign) Index() int { return int(s) }

// MarshalJSON encodes the sign as its lowercase name
func (s Sign) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// UnmarshalJSON decodes a lowercase sign name
func (s *Sign) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for i, n := range signNames {
		if strings.EqualFold(n, name) {
			*s = Sign(i)
			return nil
		}
	}
	return fmt.Errorf("zodiac: unknown sign %q", name)
}

// Normalize wraps any angle into [0,360)
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// SignOf returns the sign containing the given ecliptic longitude.
// sign index is always floor(longitude/30) mod 12
func SignOf(lon float64) Sign {
	return Sign(int(math.Floor(Normalize(lon)/30)) % 12)
}

// DegreeInSign returns the degree within the sign, in [0,30)
func DegreeInSign(lon float64) float64 {
	return math.Mod(Normalize(lon), 30)
}

// Separation returns the angular distance between two longitudes,
// normalized into [0,180]
func Separation(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Opposite returns the longitude 180 degrees away, in [0,360)
func Opposite(lon float64) float64 { return Normalize(lon + 180) }
