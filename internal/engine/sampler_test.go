package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/kingrea/lifecast/internal/content"
	"github.com/kingrea/lifecast/internal/seed"
)

// scriptedSource replays a fixed draw sequence so pipeline outcomes can be
// computed by hand.
type scriptedSource struct {
	draws []float64
	next  int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) {}

func TestWeightedChoiceEmptyPool(t *testing.T) {
	_, err := WeightedChoice(&scriptedSource{}, nil)
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestWeightedChoiceZeroWeightsReturnsFirst(t *testing.T) {
	pool := []content.Trait{
		{ID: "first", Weight: 0},
		{ID: "second", Weight: 0},
		{ID: "third", Weight: 0},
	}
	// The draw point is forced to zero when the total is zero, so the
	// scripted value must be ignored entirely.
	for _, draw := range []float64{0, 0.25, 0.999} {
		got, err := WeightedChoice(&scriptedSource{draws: []float64{draw}}, pool)
		if err != nil {
			t.Fatalf("draw %v: %v", draw, err)
		}
		if got.ID != "first" {
			t.Fatalf("draw %v: expected first item, got %s", draw, got.ID)
		}
	}
}

func TestWeightedChoiceScriptedDraws(t *testing.T) {
	pool := []content.Trait{
		{ID: "a", Weight: 1},
		{ID: "b", Weight: 2},
		{ID: "c", Weight: 7},
	}
	tests := []struct {
		draw float64
		want string
	}{
		{draw: 0.0, want: "a"},   // point 0 lands on the first cumulative step
		{draw: 0.05, want: "a"},  // 0.5 of 10
		{draw: 0.15, want: "b"},  // 1.5
		{draw: 0.29, want: "b"},  // 2.9
		{draw: 0.31, want: "c"},  // 3.1
		{draw: 0.999, want: "c"}, // 9.99
	}
	for _, tc := range tests {
		got, err := WeightedChoice(&scriptedSource{draws: []float64{tc.draw}}, pool)
		if err != nil {
			t.Fatalf("draw %v: %v", tc.draw, err)
		}
		if got.ID != tc.want {
			t.Fatalf("draw %v: expected %s, got %s", tc.draw, tc.want, got.ID)
		}
	}
}

func TestWeightedChoiceNegativeWeightCountsAsZero(t *testing.T) {
	pool := []content.Trait{
		{ID: "broken", Weight: -5},
		{ID: "valid", Weight: 3},
	}
	// 0.9 of total 3 = 2.7, beyond the zero-width first item.
	got, err := WeightedChoice(&scriptedSource{draws: []float64{0.9}}, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "valid" {
		t.Fatalf("expected valid, got %s", got.ID)
	}
}

func TestWeightedChoiceProportionality(t *testing.T) {
	pool := []content.Trait{
		{ID: "rare", Weight: 1},
		{ID: "common", Weight: 2},
		{ID: "dominant", Weight: 7},
	}
	const trials = 20000
	src := seed.NewSource(12345)
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		got, err := WeightedChoice(src, pool)
		if err != nil {
			t.Fatalf("trial %d: %v", i, err)
		}
		counts[got.ID]++
	}
	expected := map[string]float64{"rare": 0.1, "common": 0.2, "dominant": 0.7}
	for id, want := range expected {
		got := float64(counts[id]) / trials
		if math.Abs(got-want) > 0.02 {
			t.Fatalf("%s: frequency %v too far from %v over %d trials", id, got, want, trials)
		}
	}
}
