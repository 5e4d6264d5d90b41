// Package testutil provides shared assertion helpers for sample-buffer
// tests.
package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/synth/core"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair is not nearly equal within eps (see core.NearlyEqual;
// a non-positive eps falls back to its default tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !core.NearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireFinite fails t if any sample is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite sample %v", i, v)
		}
	}
}

// RequireInOpenRange fails t if any sample lies outside (-limit, limit).
// Soft-clipped buffers must satisfy this strictly.
func RequireInOpenRange(t *testing.T, data []float64, limit float64) {
	t.Helper()
	for i, v := range data {
		if v <= -limit || v >= limit {
			t.Fatalf("index %d: sample %v outside (-%v, %v)", i, v, limit, limit)
		}
	}
}
