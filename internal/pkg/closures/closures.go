// Package closures builds sequences of power functions over a loop counter
// to show how a closure sees a captured loop variable.
package closures

import "math"

// Variants of a closure sequence
const (
	VariantShared       = "shared"
	VariantSnapshot     = "snapshot"
	VariantPerIteration = "per_iteration"
)

// Power returns base ** x for the base it was built with
type Power func(x float64) float64

// Acts is an ordered sequence of Power functions, one per loop iteration
type Acts []Power

// Shared builds n functions that all capture the same loop variable.
// The variable is declared outside the loop, so once the loop is done it
// holds n-1 and every function computes (n-1) ** x.
func Shared(n int) Acts {
	acts := make(Acts, 0, max(n, 0))

	var i int
	for i = range max(n, 0) {
		acts = append(acts, func(x float64) float64 {
			return math.Pow(float64(i), x)
		})
	}

	return acts
}

// Snapshot builds n functions that each bind the loop value at creation,
// so the function at index i computes i ** x.
func Snapshot(n int) Acts {
	acts := make(Acts, 0, max(n, 0))

	var i int
	for i = range max(n, 0) {
		acts = append(acts, powerOf(i))
	}

	return acts
}

// PerIteration builds n functions over a loop-scoped variable. Each
// iteration has its own i, so the result matches Snapshot.
func PerIteration(n int) Acts {
	acts := make(Acts, 0, max(n, 0))

	for i := range max(n, 0) {
		acts = append(acts, func(x float64) float64 {
			return math.Pow(float64(i), x)
		})
	}

	return acts
}

// powerOf copies base into its own parameter
func powerOf(base int) Power {
	return func(x float64) float64 {
		return math.Pow(float64(base), x)
	}
}

// Build returns the sequence for the named variant
func Build(variant string, n int) (Acts, bool) {
	switch variant {
	case VariantShared:
		return Shared(n), true
	case VariantSnapshot:
		return Snapshot(n), true
	case VariantPerIteration:
		return PerIteration(n), true
	default:
		return nil, false
	}
}

// Evaluate calls every function with x, in order
func Evaluate(acts Acts, x float64) []float64 {
	results := make([]float64, len(acts))
	for i, act := range acts {
		results[i] = act(x)
	}
	return results
}
