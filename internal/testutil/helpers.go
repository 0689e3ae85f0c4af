// Package testutil provides reusable test helper functions for spline output
// verification.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-spline/internal/simdops"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	Float32Tolerance = 1e-4
)

// scalarsPerPoint is the number of scalars per 2D point.
const scalarsPerPoint = 2

// AssertFinite verifies that no coordinate is NaN or Inf.
func AssertFinite[F simdops.Float](t *testing.T, coords []F, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range coords {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "coords[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "coords[%d] is Inf", i)
		}
	}
	return true
}

// AssertPairCount verifies that a coordinate sequence holds exactly the
// expected number of (x,y) pairs.
func AssertPairCount[F simdops.Float](t *testing.T, coords []F, wantPairs int, msgAndArgs ...any) bool {
	t.Helper()
	return assert.Len(t, coords, wantPairs*scalarsPerPoint, msgAndArgs...)
}

// AssertPointAt verifies the coordinate pair at pairIndex within tolerance.
func AssertPointAt[F simdops.Float](t *testing.T, coords []F, pairIndex int, x, y, tolerance float64) bool {
	t.Helper()
	i := pairIndex * scalarsPerPoint
	if !assert.Less(t, i+1, len(coords), "pair index %d out of range", pairIndex) {
		return false
	}
	return assert.InDelta(t, x, float64(coords[i]), tolerance, "x of pair %d", pairIndex) &&
		assert.InDelta(t, y, float64(coords[i+1]), tolerance, "y of pair %d", pairIndex)
}

// AssertClosedLoop verifies that the first and last coordinate pairs coincide
// within tolerance.
func AssertClosedLoop[F simdops.Float](t *testing.T, coords []F, tolerance float64) bool {
	t.Helper()
	if !assert.GreaterOrEqual(t, len(coords), 2*scalarsPerPoint, "need at least two pairs") {
		return false
	}
	n := len(coords)
	return assert.InDelta(t, float64(coords[0]), float64(coords[n-2]), tolerance, "loop x") &&
		assert.InDelta(t, float64(coords[1]), float64(coords[n-1]), tolerance, "loop y")
}

// AssertCollinear verifies that every point lies on the line through the
// first and last points, within a perpendicular distance of tolerance.
func AssertCollinear[F simdops.Float](t *testing.T, coords []F, tolerance float64) bool {
	t.Helper()
	if len(coords) < 3*scalarsPerPoint {
		return true
	}

	x0, y0 := float64(coords[0]), float64(coords[1])
	xn, yn := float64(coords[len(coords)-2]), float64(coords[len(coords)-1])
	dx, dy := xn-x0, yn-y0
	chord := math.Hypot(dx, dy)
	if !assert.Greater(t, chord, 0.0, "degenerate chord") {
		return false
	}

	for i := scalarsPerPoint; i+1 < len(coords)-scalarsPerPoint; i += scalarsPerPoint {
		cross := (float64(coords[i])-x0)*dy - (float64(coords[i+1])-y0)*dx
		if !assert.InDelta(t, 0.0, cross/chord, tolerance,
			"point %d is off the line", i/scalarsPerPoint) {
			return false
		}
	}
	return true
}
