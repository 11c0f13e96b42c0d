// Package export serializes a forecast to its structured forms (JSON
// document, Markdown card) and delivers the chosen payload to a file or
// stdout. A failed file write degrades to stdout plus a warning; the
// computed result is never lost.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kingrea/lifecast/internal/content"
	"github.com/kingrea/lifecast/internal/engine"
	"github.com/kingrea/lifecast/internal/render"
)

type document struct {
	Name        string         `json:"name"`
	Timeline    string         `json:"timeline"`
	Picks       picks          `json:"picks"`
	Explanation []string       `json:"explanation"`
	MonteCarlo  *monteCarloDoc `json:"monte_carlo,omitempty"`
}

type picks struct {
	Career       content.Trait `json:"career"`
	Car          content.Trait `json:"car"`
	House        content.Trait `json:"house"`
	Relationship content.Trait `json:"relationship"`
	Fame         content.Trait `json:"fame"`
}

type monteCarloDoc struct {
	Trials int    `json:"trials"`
	Counts counts `json:"counts"`
}

type counts struct {
	Career       *engine.Tally `json:"career"`
	Car          *engine.Tally `json:"car"`
	House        *engine.Tally `json:"house"`
	Relationship *engine.Tally `json:"relationship"`
	Fame         *engine.Tally `json:"fame"`
}

// JSON renders the structured export document with two-space indentation.
// The aggregate section is omitted when agg is nil.
func JSON(name, timeline string, p engine.PickSet, agg *engine.Aggregate) (string, error) {
	doc := document{
		Name:     name,
		Timeline: timeline,
		Picks: picks{
			Career:       p.Career,
			Car:          p.Car,
			House:        p.House,
			Relationship: p.Relationship,
			Fame:         p.Fame,
		},
		Explanation: render.Rationale(p),
	}
	if agg != nil {
		doc.MonteCarlo = &monteCarloDoc{
			Trials: agg.Trials,
			Counts: counts{
				Career:       agg.Tally(content.DomainCareer),
				Car:          agg.Tally(content.DomainCar),
				House:        agg.Tally(content.DomainHouse),
				Relationship: agg.Tally(content.DomainRelationship),
				Fame:         agg.Tally(content.DomainFame),
			},
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("export: encode json: %w", err)
	}
	return buf.String(), nil
}
