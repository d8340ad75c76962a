// Package mapping builds a map from parallel key and value slices in three
// equivalent ways.
package mapping

import (
	"errors"
	"fmt"
	"iter"
	"maps"
)

// Strategy names
const (
	StrategyAccumulate = "accumulate"
	StrategyFromPairs  = "from_pairs"
	StrategyProject    = "project"
)

// Policy decides what happens when keys and values differ in length
type Policy string

const (
	// PolicyTruncate pairs up to the shorter slice
	PolicyTruncate Policy = "truncate"
	// PolicyStrict refuses to build
	PolicyStrict Policy = "strict"
)

// ErrLengthMismatch is returned under PolicyStrict for unequal lengths
var ErrLengthMismatch = errors.New("keys and values differ in length")

// Pair is one key and its value
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Zip pairs keys[i] with values[i], stopping at the shorter slice
func Zip[K comparable, V any](keys []K, values []V) []Pair[K, V] {
	n := min(len(keys), len(values))

	pairs := make([]Pair[K, V], n)
	for i := range n {
		pairs[i] = Pair[K, V]{Key: keys[i], Value: values[i]}
	}
	return pairs
}

// Pairs is the lazy form of Zip
func Pairs[K comparable, V any](keys []K, values []V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range min(len(keys), len(values)) {
			if !yield(keys[i], values[i]) {
				return
			}
		}
	}
}

// Accumulate starts from an empty map and assigns each key in order
func Accumulate[K comparable, V any](keys []K, values []V) map[K]V {
	n := min(len(keys), len(values))

	m := make(map[K]V, n)
	for i := range n {
		m[keys[i]] = values[i]
	}
	return m
}

// FromPairs collects the zipped sequence into a map in one call
func FromPairs[K comparable, V any](keys []K, values []V) map[K]V {
	return maps.Collect(Pairs(keys, values))
}

// Project maps every pair through f and collects the results.
// Later pairs overwrite earlier ones that project to the same key.
func Project[K comparable, V any, K2 comparable, V2 any](pairs []Pair[K, V], f func(Pair[K, V]) (K2, V2)) map[K2]V2 {
	m := make(map[K2]V2, len(pairs))
	maps.Insert(m, func(yield func(K2, V2) bool) {
		for _, p := range pairs {
			if !yield(f(p)) {
				return
			}
		}
	})
	return m
}

// Comprehend builds the map as a single projection over the zipped pairs
func Comprehend[K comparable, V any](keys []K, values []V) map[K]V {
	return Project(Zip(keys, values), func(p Pair[K, V]) (K, V) { return p.Key, p.Value })
}

// Result holds the map built by each strategy
type Result[K comparable, V comparable] struct {
	Accumulated map[K]V
	FromPairs   map[K]V
	Projected   map[K]V
}

// Equal reports whether all three strategies produced the same map
func (r Result[K, V]) Equal() bool {
	return maps.Equal(r.Accumulated, r.FromPairs) && maps.Equal(r.FromPairs, r.Projected)
}

// Build checks the lengths against the policy and runs all three strategies
func Build[K comparable, V comparable](keys []K, values []V, policy Policy) (Result[K, V], error) {
	if err := CheckLengths(len(keys), len(values), policy); err != nil {
		return Result[K, V]{}, err
	}

	return Result[K, V]{
		Accumulated: Accumulate(keys, values),
		FromPairs:   FromPairs(keys, values),
		Projected:   Comprehend(keys, values),
	}, nil
}

// CheckLengths applies policy to the key and value counts
func CheckLengths(keys, values int, policy Policy) error {
	switch policy {
	case PolicyTruncate, "":
		return nil
	case PolicyStrict:
		if keys != values {
			return fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, keys, values)
		}
		return nil
	default:
		return fmt.Errorf("unknown length policy %q", policy)
	}
}
