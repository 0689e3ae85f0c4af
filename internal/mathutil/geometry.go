// Package mathutil provides small numeric helpers over interleaved 2D
// coordinate sequences, shared by the curve analysis tools and tests.
package mathutil

import (
	"math"
)

// Geometry constants.
const (
	// scalarsPerPoint is the number of scalars per 2D point.
	scalarsPerPoint = 2

	// degenerateLength is the squared chord length below which a point run
	// is treated as a single location for collinearity purposes.
	degenerateLength = 1e-18
)

// PolylineLength returns the total arc length of an interleaved coordinate
// sequence. Sequences with fewer than two points have length zero.
func PolylineLength(coords []float64) float64 {
	var total float64
	for i := scalarsPerPoint; i+1 < len(coords); i += scalarsPerPoint {
		total += math.Hypot(coords[i]-coords[i-2], coords[i+1]-coords[i-1])
	}
	return total
}

// Bounds returns the axis-aligned bounding box of an interleaved coordinate
// sequence. The second return value is false for a sequence with no points.
func Bounds(coords []float64) (minX, minY, maxX, maxY float64, ok bool) {
	if len(coords) < scalarsPerPoint {
		return 0, 0, 0, 0, false
	}

	minX, maxX = coords[0], coords[0]
	minY, maxY = coords[1], coords[1]
	for i := scalarsPerPoint; i+1 < len(coords); i += scalarsPerPoint {
		minX = math.Min(minX, coords[i])
		maxX = math.Max(maxX, coords[i])
		minY = math.Min(minY, coords[i+1])
		maxY = math.Max(maxY, coords[i+1])
	}
	return minX, minY, maxX, maxY, true
}

// Collinear reports whether every point of the sequence lies on the line
// through its first and last points, within a perpendicular distance of tol.
// Sequences of fewer than three points are trivially collinear.
func Collinear(coords []float64, tol float64) bool {
	if len(coords) < 3*scalarsPerPoint {
		return true
	}

	x0, y0 := coords[0], coords[1]
	xn, yn := coords[len(coords)-2], coords[len(coords)-1]
	dx := xn - x0
	dy := yn - y0

	chord2 := dx*dx + dy*dy
	if chord2 < degenerateLength {
		// All points must coincide with the endpoints.
		for i := 0; i+1 < len(coords); i += scalarsPerPoint {
			if math.Hypot(coords[i]-x0, coords[i+1]-y0) > tol {
				return false
			}
		}
		return true
	}

	chord := math.Sqrt(chord2)
	for i := scalarsPerPoint; i+1 < len(coords)-scalarsPerPoint; i += scalarsPerPoint {
		cross := (coords[i]-x0)*dy - (coords[i+1]-y0)*dx
		if math.Abs(cross)/chord > tol {
			return false
		}
	}
	return true
}

// SampleSpacings returns the distance between each pair of consecutive points
// in an interleaved coordinate sequence.
func SampleSpacings(coords []float64) []float64 {
	numPoints := len(coords) / scalarsPerPoint
	if numPoints < 2 {
		return []float64{}
	}

	spacings := make([]float64, numPoints-1)
	for i := 1; i < numPoints; i++ {
		spacings[i-1] = math.Hypot(
			coords[i*scalarsPerPoint]-coords[(i-1)*scalarsPerPoint],
			coords[i*scalarsPerPoint+1]-coords[(i-1)*scalarsPerPoint+1],
		)
	}
	return spacings
}
