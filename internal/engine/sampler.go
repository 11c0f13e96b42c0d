// Package engine runs the deterministic forecast pipeline: weighted
// sampling over the content tables, the cross-domain coherence rules, and
// the Monte Carlo aggregation built on top of both.
package engine

import (
	"errors"

	"github.com/kingrea/lifecast/internal/content"
	"github.com/kingrea/lifecast/internal/seed"
)

// ErrEmptyPool is returned when a sampling pool has no candidates. Tables
// are never empty in a valid pack, so hitting this means broken content, not
// bad luck.
var ErrEmptyPool = errors.New("engine: empty sampling pool")

// WeightedChoice draws one trait with probability proportional to its weight.
// Negative weights count as zero. When the total weight is zero the draw
// point is zero and the scan still runs, which lands on the first trait in
// list order. The comparison is `draw <= cumulative` exactly; the zero-total
// tie-break depends on it.
func WeightedChoice(src seed.Source, pool []content.Trait) (content.Trait, error) {
	if len(pool) == 0 {
		return content.Trait{}, ErrEmptyPool
	}
	total := 0.0
	for _, t := range pool {
		if t.Weight > 0 {
			total += float64(t.Weight)
		}
	}
	draw := 0.0
	if total > 0 {
		draw = src.Float64() * total
	}
	cumulative := 0.0
	for _, t := range pool {
		if t.Weight > 0 {
			cumulative += float64(t.Weight)
		}
		if draw <= cumulative {
			return t, nil
		}
	}
	return pool[len(pool)-1], nil
}
