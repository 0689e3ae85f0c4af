// Package engine implements the cardinal spline fill core.
//
// The algorithm pads the control-point sequence with phantom endpoints,
// derives per-segment tangents from neighboring points scaled by the tension
// parameter, and blends them through a cached table of cubic Hermite weights.
// The whole computation is a single pass over a pre-sized output buffer.
package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tphakala/simd/cpu"

	"github.com/tphakala/go-spline/internal/basis"
	"github.com/tphakala/go-spline/internal/simdops"
)

// ErrInvalidSegments indicates a subdivision count below one.
var ErrInvalidSegments = errors.New("segments per span must be at least 1")

// Interpolator computes cardinal spline polylines.
//
// It owns a precomputed Hermite weight table and scratch buffers that are
// reused across calls, so repeated interpolation with the same parameters
// avoids redundant allocation. A mutex guards the scratch; instances are safe
// for concurrent use, with calls serialized.
//
// Type parameter F controls the precision of the computation.
type Interpolator[F simdops.Float] struct {
	tension  F
	segments int
	closed   bool

	// table rows 0..segments hold the blending weights for sample
	// positions t = i/segments. Read-only after construction.
	table []basis.Weights[F]

	// ops is non-nil when SIMD acceleration is enabled.
	ops *simdops.Ops[F]

	// Scratch reused across calls, guarded by mu.
	padded []F // phantom-padded control points
	planX  []F // planar sample buffers for the SIMD path
	planY  []F
	mu     sync.Mutex
}

// NewInterpolator creates an Interpolator with fixed curve parameters.
// Returns ErrInvalidSegments when segments is below one.
func NewInterpolator[F simdops.Float](tension F, segments int, closed, enableSIMD bool) (*Interpolator[F], error) {
	if segments < minSegmentsPerSpan {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSegments, segments)
	}

	ip := &Interpolator[F]{
		tension:  tension,
		segments: segments,
		closed:   closed,
		table:    basis.Hermite[F](segments),
	}
	if enableSIMD {
		ip.ops = simdops.For[F]()
	}
	return ip, nil
}

// Interpolate computes the polyline for one control-point sequence.
// The input is only read; the returned buffer is freshly allocated and does
// not alias the input or the interpolator's scratch.
func (ip *Interpolator[F]) Interpolate(points []F) ([]F, error) {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	return ip.run(points), nil
}

// Reset releases the scratch buffers. The next call reallocates them.
func (ip *Interpolator[F]) Reset() {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	ip.padded = nil
	ip.planX = nil
	ip.planY = nil
}

// Segments returns the subdivision count per span.
func (ip *Interpolator[F]) Segments() int {
	return ip.segments
}

// TableSize returns the number of cached Hermite weight rows.
func (ip *Interpolator[F]) TableSize() int {
	return len(ip.table)
}

// SIMDEnabled reports whether the SIMD fill path is active.
func (ip *Interpolator[F]) SIMDEnabled() bool {
	return ip.ops != nil
}

// SIMDInfo returns a description of the SIMD instruction set in use,
// or an empty string when SIMD is disabled.
func (ip *Interpolator[F]) SIMDInfo() string {
	if ip.ops == nil {
		return ""
	}
	return cpu.Info()
}

// Interpolate computes a cardinal spline polyline in one shot.
// No state is retained between calls; the weight table and scratch live and
// die with the invocation, and the fill always uses the pure Go path.
func Interpolate[F simdops.Float](points []F, tension F, segments int, closed bool) ([]F, error) {
	ip, err := NewInterpolator[F](tension, segments, closed, false)
	if err != nil {
		return nil, err
	}
	return ip.run(points), nil
}

// OutputLen returns the number of coordinate pairs produced for pointCount
// control points: (pointCount-1)*segments + 2 for open curves and
// pointCount*segments + 2 for closed ones. The degenerate case of fewer than
// two control points yields zero.
func OutputLen(pointCount, segments int, closed bool) int {
	if pointCount < minControlPoints {
		return 0
	}
	spans := pointCount - 1
	if closed {
		spans = pointCount
	}
	return spans*segments + 2
}

// run performs the fill. Callers must hold mu when the instance is shared.
func (ip *Interpolator[F]) run(points []F) []F {
	l := len(points) &^ 1 // an odd trailing scalar has no partner and is ignored
	n := l / scalarsPerPoint
	if n < minControlPoints {
		return []F{}
	}
	points = points[:l]

	padded := ip.buildPadded(points, n)
	out := make([]F, OutputLen(n, ip.segments, ip.closed)*scalarsPerPoint)

	// Interior segments: one per pair of consecutive real control points.
	// The window for segment s starts one point before its start point.
	w := 0
	for s := 0; s < n-1; s++ {
		window := padded[(s+1)*scalarsPerPoint : (s+1)*scalarsPerPoint+windowScalars]
		w = ip.fillSegment(out, w, window, s == 0)
	}

	// One extra pass over the wrap-around segment closes the loop.
	if ip.closed {
		var wrap [windowScalars]F
		copy(wrap[:4], points[l-4:])
		copy(wrap[4:], points[:4])
		w = ip.fillSegment(out, w, wrap[:], false)
	}

	// Final literal point, closing the polyline exactly at a control point
	// coordinate rather than an interpolated sample.
	last := l - scalarsPerPoint
	if ip.closed {
		last = 0
	}
	out[w] = points[last]
	out[w+1] = points[last+1]

	return out
}

// buildPadded assembles the phantom-padded working sequence in scratch.
//
// Open curves get the prefix [P0, P1] and suffix [P(n-2), P(n-1)], which
// makes the tangents vanish at both curve ends. Closed curves get the prefix
// [P(n-2), P(n-1)] and suffix [P0] so tangents wrap around the loop.
func (ip *Interpolator[F]) buildPadded(points []F, n int) []F {
	l := len(points)
	need := l + openPaddingScalars
	if ip.closed {
		need = l + closedPaddingScalars
	}
	if cap(ip.padded) < need {
		ip.padded = make([]F, need)
	}
	padded := ip.padded[:need]

	if ip.closed {
		copy(padded[:4], points[l-4:])
		copy(padded[4:], points)
		copy(padded[4+l:], points[:2])
	} else {
		copy(padded[:4], points[:4])
		copy(padded[4:], points)
		copy(padded[4+l:], points[l-4:])
	}
	return padded
}

// fillSegment writes the samples for one segment into out starting at offset
// w and returns the advanced offset. The window holds four consecutive
// points as interleaved scalars: predecessor, start, end, successor.
//
// The first segment of a curve also emits the t=0 row so the polyline starts
// exactly at the first control point; every later segment skips it, because
// the preceding segment already produced that point as its t=segments sample.
func (ip *Interpolator[F]) fillSegment(out []F, w int, window []F, first bool) int {
	p0x, p0y := window[0], window[1]
	p1x, p1y := window[2], window[3]
	p2x, p2y := window[4], window[5]
	p3x, p3y := window[6], window[7]

	// Cardinal tangents: neighbor differences scaled by tension.
	t1x := (p2x - p0x) * ip.tension
	t1y := (p2y - p0y) * ip.tension
	t2x := (p3x - p1x) * ip.tension
	t2y := (p3y - p1y) * ip.tension

	rows := ip.table
	if !first {
		rows = rows[1:]
	}

	if ip.ops != nil {
		gx := [basis.WeightCount]F{p1x, p2x, t1x, t2x}
		gy := [basis.WeightCount]F{p1y, p2y, t1y, t2y}
		return ip.fillSIMD(out, w, rows, gx, gy)
	}

	for _, r := range rows {
		out[w] = r[basis.WeightStart]*p1x + r[basis.WeightEnd]*p2x +
			r[basis.WeightStartTangent]*t1x + r[basis.WeightEndTangent]*t2x
		out[w+1] = r[basis.WeightStart]*p1y + r[basis.WeightEnd]*p2y +
			r[basis.WeightStartTangent]*t1y + r[basis.WeightEndTangent]*t2y
		w += scalarsPerPoint
	}
	return w
}

// fillSIMD evaluates each weight row as a dot product against the segment
// geometry vectors, then interleaves the planar results into the output.
func (ip *Interpolator[F]) fillSIMD(out []F, w int, rows []basis.Weights[F], gx, gy [basis.WeightCount]F) int {
	k := len(rows)
	if cap(ip.planX) < k {
		ip.planX = make([]F, k)
		ip.planY = make([]F, k)
	}
	xs := ip.planX[:k]
	ys := ip.planY[:k]

	for i := range rows {
		xs[i] = ip.ops.DotProductUnsafe(rows[i][:], gx[:])
		ys[i] = ip.ops.DotProductUnsafe(rows[i][:], gy[:])
	}
	ip.ops.Interleave2(out[w:w+k*scalarsPerPoint], xs, ys)

	return w + k*scalarsPerPoint
}
