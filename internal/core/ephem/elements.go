package ephem

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed elements.json
var elementsFS embed.FS

// elementPair is a J2000 value plus its per Julian century rate
type elementPair [2]float64

// at evaluates the element at T Julian centuries from J2000
func (p elementPair) at(t float64) float64 { return p[0] + p[1]*t }

// orbitalElements is one row of the embedded Keplerian element table.
// Angles are degrees; the semi-major axis is in astronomical units
type orbitalElements struct {
	Name string      `json:"name"`
	A    elementPair `json:"a"`
	E    elementPair `json:"e"`
	I    elementPair `json:"i"`
	L    elementPair `json:"l"`
	Peri elementPair `json:"peri"` // longitude of perihelion
	Node elementPair `json:"node"` // longitude of ascending node
}

// elementTable is the parsed embedded table keyed by planet name
type elementTable struct {
	Epoch     string            `json:"epoch"`
	ValidFrom int               `json:"valid_from"`
	ValidTo   int               `json:"valid_to"`
	Planets   []orbitalElements `json:"planets"`

	byName map[string]*orbitalElements
}

var (
	tableOnce sync.Once
	tableVal  *elementTable
	tableErr  error
)

// loadElements parses the embedded table once
func loadElements() (*elementTable, error) {
	tableOnce.Do(func() {
		raw, err := elementsFS.ReadFile("elements.json")
		if err != nil {
			tableErr = fmt.Errorf("ephem: read embedded elements: %w", err)
			return
		}
		var t elementTable
		if err := json.Unmarshal(raw, &t); err != nil {
			tableErr = fmt.Errorf("ephem: parse embedded elements: %w", err)
			return
		}
		t.byName = make(map[string]*orbitalElements, len(t.Planets))
		for i := range t.Planets {
			t.byName[t.Planets[i].Name] = &t.Planets[i]
		}
		for _, want := range []string{
			"mercury", "venus", "earth", "mars", "jupiter",
			"saturn", "uranus", "neptune", "pluto",
		} {
			if _, ok := t.byName[want]; !ok {
				tableErr = fmt.Errorf("ephem: embedded elements missing %q", want)
				return
			}
		}
		tableVal = &t
	})
	return tableVal, tableErr
}
