// Package natal computes birth charts from a birth moment and an ephemeris
// provider. All computation is pure and deterministic; identical inputs
// produce identical results
package natal

import (
	"time"

	"astrolabe/internal/core/ephem"
	"astrolabe/internal/core/zodiac"
)

// Date is a calendar day, timezone-free
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Clock is a wall-clock time of day, timezone-free
type Clock struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// Input is an immutable chart request. When TimeUnknown is set the Time
// value is ignored even if present
type Input struct {
	Date        Date     `json:"date"`
	Time        *Clock   `json:"time,omitempty"`
	TimeUnknown bool     `json:"time_unknown,omitempty"`
	PlaceName   string   `json:"place_name,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Timezone    string   `json:"timezone,omitempty"`
	TrueNode    bool     `json:"true_node"`
}

// ChartType is the data completeness tier of a chart
type ChartType string

// Completeness tiers
const (
	ChartFull      ChartType = "full"
	ChartPlaceOnly ChartType = "place_only"
	ChartDateOnly  ChartType = "date_only"
)

// Status is the outcome classification of a computation.
// Input incompleteness is never an error; it degrades the tier instead
type Status string

// Computation outcomes
const (
	StatusOK             Status = "ok"
	StatusNeedsGeocoding Status = "needs_geocoding"
	StatusError          Status = "error"
)

// Position is one computed placement. House is nil when houses are not
// derivable for the chart; PossibleSigns is set only when SignUncertain
type Position struct {
	Body          ephem.Body    `json:"body"`
	Longitude     float64       `json:"longitude"`
	Sign          zodiac.Sign   `json:"sign"`
	DegreeInSign  float64       `json:"degree_in_sign"`
	House         *int          `json:"house,omitempty"`
	Retrograde    bool          `json:"retrograde"`
	SignUncertain bool          `json:"sign_uncertain,omitempty"`
	PossibleSigns []zodiac.Sign `json:"possible_signs,omitempty"`
}

// House is one of the twelve houses with its cusp placement
type House struct {
	Number     int         `json:"number"`
	Sign       zodiac.Sign `json:"sign"`
	CuspDegree float64     `json:"cusp_degree"`
}

// AnglePoint is one of the four chart angles
type AnglePoint struct {
	Name         string      `json:"name"`
	Longitude    float64     `json:"longitude"`
	Sign         zodiac.Sign `json:"sign"`
	DegreeInSign float64     `json:"degree_in_sign"`
}

// Angles carries the four cardinal chart angles. Descendant is always the
// ascendant plus 180 degrees; IC is always the midheaven plus 180 degrees
type Angles struct {
	Ascendant  AnglePoint `json:"ascendant"`
	Midheaven  AnglePoint `json:"midheaven"`
	Descendant AnglePoint `json:"descendant"`
	IC         AnglePoint `json:"ic"`
}

// AspectType is a named angular relationship between two chart points
type AspectType string

// Aspect types in their fixed test order
const (
	Conjunction AspectType = "conjunction"
	Sextile     AspectType = "sextile"
	Square      AspectType = "square"
	Trine       AspectType = "trine"
	Opposition  AspectType = "opposition"
)

// aspectAngle is one entry of the fixed aspect test sequence
type aspectAngle struct {
	Type  AspectType
	Angle float64
}

// aspectAngles is tested in order; the first match wins for a pair
var aspectAngles = []aspectAngle{
	{Conjunction, 0},
	{Sextile, 60},
	{Square, 90},
	{Trine, 120},
	{Opposition, 180},
}

// Aspect is an unordered pair relationship. Applying stays nil; this engine
// does not infer aspect direction from speeds
type Aspect struct {
	BodyA      ephem.Body `json:"body_a"`
	BodyB      ephem.Body `json:"body_b"`
	Type       AspectType `json:"type"`
	Separation float64    `json:"separation"`
	Orb        float64    `json:"orb"`
	Applying   *bool      `json:"applying,omitempty"`
}

// Metadata records what inputs and assumptions produced a chart
type Metadata struct {
	Input        Input     `json:"input"`
	Timezone     string    `json:"timezone"`
	HouseSystem  string    `json:"house_system"`
	NodeMode     string    `json:"node_mode"`
	CalculatedAt time.Time `json:"calculated_at_utc"`
	Assumptions  []string  `json:"assumptions"`
}

// EvolutionaryCore is the curated point subset with data-quality notes
type EvolutionaryCore struct {
	Pluto      *Position    `json:"pluto,omitempty"`
	NorthNode  *Position    `json:"north_node,omitempty"`
	SouthNode  *Position    `json:"south_node,omitempty"`
	Moon       *Position    `json:"moon,omitempty"`
	Sun        *Position    `json:"sun,omitempty"`
	RisingSign *zodiac.Sign `json:"rising_sign,omitempty"`
	Notes      []string     `json:"notes"`
}

// Result is the full chart output. It is produced once per computation and
// never mutated; persistence is the caller's concern. Only StatusOK results
// are complete enough to store
type Result struct {
	Status       Status           `json:"status"`
	Errors       []string         `json:"errors,omitempty"`
	ChartType    ChartType        `json:"chart_type"`
	Metadata     Metadata         `json:"metadata"`
	Angles       *Angles          `json:"angles,omitempty"`
	Houses       []House          `json:"houses,omitempty"`
	Positions    []Position       `json:"positions"`
	Aspects      []Aspect         `json:"aspects,omitempty"`
	Evolutionary EvolutionaryCore `json:"evolutionary_core"`
}

// HouseSystemPlacidus is the single house system this engine supports
const HouseSystemPlacidus = "placidus"

// NodeMode returns the metadata label for the input's node setting
func (in Input) NodeMode() string {
	if in.TrueNode {
		return "true"
	}
	return "mean"
}
