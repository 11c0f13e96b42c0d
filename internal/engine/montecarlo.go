package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kingrea/lifecast/internal/content"
)

// TallyEntry is one trait's occurrence count within a domain tally.
type TallyEntry struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// Tally counts trait occurrences in first-seen order. The order matters:
// top-K selection breaks ties by it, and exports must not inherit Go's map
// iteration order.
type Tally struct {
	entries []TallyEntry
	index   map[string]int
}

// Add records one occurrence of a trait identifier.
func (t *Tally) Add(id string) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if pos, ok := t.index[id]; ok {
		t.entries[pos].Count++
		return
	}
	t.index[id] = len(t.entries)
	t.entries = append(t.entries, TallyEntry{ID: id, Count: 1})
}

// Entries returns the counts in first-seen order.
func (t *Tally) Entries() []TallyEntry {
	return append([]TallyEntry{}, t.entries...)
}

// Total returns the sum of all counts in the tally.
func (t *Tally) Total() int {
	total := 0
	for _, e := range t.entries {
		total += e.Count
	}
	return total
}

// Top returns up to k entries by descending count. The sort is stable so
// equal counts keep first-seen order.
func (t *Tally) Top(k int) []TallyEntry {
	sorted := t.Entries()
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })
	if k >= 0 && len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

// MarshalJSON emits an object keyed by trait ID in first-seen order.
func (t *Tally) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.ID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", e.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Aggregate holds per-domain tallies over a Monte Carlo run.
type Aggregate struct {
	Trials  int
	Tallies map[content.Domain]*Tally
}

// Tally returns the tally for a domain, creating it on first use.
func (a *Aggregate) Tally(domain content.Domain) *Tally {
	if a.Tallies == nil {
		a.Tallies = make(map[content.Domain]*Tally, len(content.Domains))
	}
	if a.Tallies[domain] == nil {
		a.Tallies[domain] = &Tally{}
	}
	return a.Tallies[domain]
}

// MonteCarlo runs trials independent pick passes with salts "mc:0" through
// "mc:<trials-1>" and tallies each domain's chosen identifier. Trials share
// nothing; each derives its own source, so any single trial is reproducible
// in isolation.
func MonteCarlo(pack content.Pack, name, timeline string, trials int) (*Aggregate, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("engine: trial count must be positive, got %d", trials)
	}
	agg := &Aggregate{Trials: trials}
	for i := 0; i < trials; i++ {
		p, err := Pick(pack, name, timeline, fmt.Sprintf("mc:%d", i), nil)
		if err != nil {
			return nil, fmt.Errorf("engine: trial %d: %w", i, err)
		}
		for _, domain := range content.Domains {
			agg.Tally(domain).Add(p.ByDomain(domain).ID)
		}
	}
	return agg, nil
}
