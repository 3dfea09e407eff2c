package sentinel

import "math/rand"

// Weighted pairs a value with its relative selection weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// WeightedChoice picks one value with probability proportional to its weight.
// Non-positive weights are never chosen. ok is false when nothing can be chosen.
func WeightedChoice[T any](rng *rand.Rand, items []Weighted[T]) (choice T, ok bool) {
	total := 0.0
	for _, it := range items {
		if it.Weight > 0 {
			total += it.Weight
		}
	}
	if total <= 0 {
		return choice, false
	}

	roll := rng.Float64() * total
	cumulative := 0.0
	last := -1
	for i, it := range items {
		if it.Weight <= 0 {
			continue
		}
		cumulative += it.Weight
		last = i
		if roll < cumulative {
			return it.Value, true
		}
	}

	// Float rounding can leave roll == total
	return items[last].Value, true
}
