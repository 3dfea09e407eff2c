package sentinel

import (
	"math"
	"math/rand"
	"testing"
)

func TestWeightedChoiceDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items := []Weighted[string]{
		{Value: "a", Weight: 1},
		{Value: "b", Weight: 3},
		{Value: "never", Weight: 0},
		{Value: "c", Weight: 6},
	}

	const draws = 100000
	counts := make(map[string]int)
	for range draws {
		v, ok := WeightedChoice(rng, items)
		if !ok {
			t.Fatal("WeightedChoice returned !ok")
		}
		counts[v]++
	}

	if counts["never"] != 0 {
		t.Errorf("zero-weight item chosen %d times", counts["never"])
	}
	for v, expected := range map[string]float64{"a": 0.1, "b": 0.3, "c": 0.6} {
		got := float64(counts[v]) / draws
		if math.Abs(got-expected) > 0.01 {
			t.Errorf("%s frequency = %.3f, expected %.2f", v, got, expected)
		}
	}
}

func TestWeightedChoiceEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, ok := WeightedChoice[int](rng, nil); ok {
		t.Error("nil items should not choose")
	}
	if _, ok := WeightedChoice(rng, []Weighted[int]{{Value: 1, Weight: 0}, {Value: 2, Weight: -3}}); ok {
		t.Error("non-positive weights should not choose")
	}
}

func TestWeightedChoiceDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(77))
	b := rand.New(rand.NewSource(77))

	for i := range 500 {
		x, _ := WeightedChoice(a, powerUpWeights)
		y, _ := WeightedChoice(b, powerUpWeights)
		if x != y {
			t.Fatalf("draw %d diverged: %q vs %q", i, x, y)
		}
	}
}
