// Package basis constructs the cubic Hermite blending-weight tables used by
// the spline fill. The weights depend only on the sample position within a
// segment, never on geometry, so one table is shared read-only across every
// segment of a curve.
package basis

import (
	"github.com/tphakala/go-spline/internal/simdops"
)

// Weights holds the four Hermite blending weights for one sample position.
// The layout doubles as a SIMD dot-product operand against the segment
// geometry vector [start, end, startTangent, endTangent].
type Weights[F simdops.Float] [WeightCount]F

// Weight vector indices.
const (
	// WeightStart is h00 = 2t³ − 3t² + 1, the weight of the segment start point.
	WeightStart = 0

	// WeightEnd is h01 = 3t² − 2t³, the weight of the segment end point.
	WeightEnd = 1

	// WeightStartTangent is h10 = t³ − 2t² + t, the weight of the start tangent.
	WeightStartTangent = 2

	// WeightEndTangent is h11 = t³ − t², the weight of the end tangent.
	WeightEndTangent = 3

	// WeightCount is the number of weights per sample position.
	WeightCount = 4
)

// Hermite polynomial coefficients (see the h00/h01/h10/h11 formulas above).
const (
	cubicDoubling = 2.0
	cubicTripling = 3.0
)

// Hermite returns the blending-weight table for a curve sampled at
// segments+1 positions per span, one row per sample position t = i/segments.
//
// Rows 0 and segments are pinned to (1,0,0,0) and (0,1,0,0) so the samples at
// span boundaries reproduce the control points exactly, independent of
// floating-point rounding in the polynomial evaluation.
func Hermite[F simdops.Float](segments int) []Weights[F] {
	table := make([]Weights[F], segments+1)

	table[0][WeightStart] = 1
	table[segments][WeightEnd] = 1

	for i := 1; i < segments; i++ {
		t := F(i) / F(segments)
		t2 := t * t
		t3 := t2 * t

		table[i] = Weights[F]{
			WeightStart:        cubicDoubling*t3 - cubicTripling*t2 + 1,
			WeightEnd:          cubicTripling*t2 - cubicDoubling*t3,
			WeightStartTangent: t3 - cubicDoubling*t2 + t,
			WeightEndTangent:   t3 - t2,
		}
	}

	return table
}
