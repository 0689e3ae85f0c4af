package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-spline/internal/testutil"
)

// linePoints builds n control points evenly spaced on the line y = slope*x + offset.
func linePoints(n int, slope, offset float64) []float64 {
	xs := make([]float64, n)
	floats.Span(xs, 0, float64(n-1)*10)

	points := make([]float64, n*2)
	for i, x := range xs {
		points[i*2] = x
		points[i*2+1] = slope*x + offset
	}
	return points
}

func TestNewInterpolatorInvalidSegments(t *testing.T) {
	for _, segments := range []int{0, -1, -100} {
		_, err := NewInterpolator[float64](0.5, segments, false, false)
		assert.ErrorIs(t, err, ErrInvalidSegments, "segments=%d", segments)
	}
}

func TestOutputLen(t *testing.T) {
	tests := []struct {
		name       string
		pointCount int
		segments   int
		closed     bool
		want       int
	}{
		{"Degenerate_0pts", 0, 25, false, 0},
		{"Degenerate_1pt", 1, 25, true, 0},
		{"Open_2pts", 2, 25, false, 27},
		{"Open_4pts_4seg", 4, 4, false, 14},
		{"Closed_4pts_4seg", 4, 4, true, 18},
		{"Closed_2pts_1seg", 2, 1, true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputLen(tt.pointCount, tt.segments, tt.closed))
		})
	}
}

// TestInterpolateCollinear verifies the numerical regression property: control
// points on a straight line must produce samples on the same line, because the
// tangents and basis blend reduce to interpolation along the line.
func TestInterpolateCollinear(t *testing.T) {
	for _, tension := range []float64{0, 0.25, 0.5, 1.0, 1.5} {
		points := linePoints(6, 0.75, -3)

		out, err := Interpolate(points, tension, 16, false)
		require.NoError(t, err, "tension=%v", tension)

		testutil.AssertFinite(t, out)
		testutil.AssertPairCount(t, out, OutputLen(6, 16, false))
		testutil.AssertCollinear(t, out, testutil.DefaultTolerance)
	}
}

// TestInterpolateTwoPointsIsChord verifies that an open curve through exactly
// two control points degenerates to the straight chord: the phantom padding
// zeroes both tangents.
func TestInterpolateTwoPointsIsChord(t *testing.T) {
	out, err := Interpolate([]float64{0, 0, 30, 40}, 0.5, 10, false)
	require.NoError(t, err)

	testutil.AssertPairCount(t, out, 12)
	testutil.AssertCollinear(t, out, testutil.DefaultTolerance)
	testutil.AssertPointAt(t, out, 0, 0, 0, 0)
	testutil.AssertPointAt(t, out, 11, 30, 40, 0)
}

// TestInterpolateClosedLoop verifies wrap-around continuity and the closing
// literal point.
func TestInterpolateClosedLoop(t *testing.T) {
	triangle := []float64{0, 0, 60, 0, 30, 50}

	out, err := Interpolate(triangle, 0.5, 9, true)
	require.NoError(t, err)

	testutil.AssertFinite(t, out)
	testutil.AssertPairCount(t, out, 3*9+2)
	testutil.AssertClosedLoop(t, out, 0)
	testutil.AssertPointAt(t, out, 0, 0, 0, 0)
}

// TestInterpolateOddTailIgnored verifies that an odd trailing scalar does not
// change the result.
func TestInterpolateOddTailIgnored(t *testing.T) {
	even := []float64{0, 0, 10, 5, 20, 0}
	odd := append(append([]float64{}, even...), 99)

	a, err := Interpolate(even, 0.5, 4, false)
	require.NoError(t, err)
	b, err := Interpolate(odd, 0.5, 4, false)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestInterpolatorScratchReuse verifies that scratch buffers carried across
// calls never leak state between inputs of different sizes.
func TestInterpolatorScratchReuse(t *testing.T) {
	ip, err := NewInterpolator[float64](0.5, 8, true, false)
	require.NoError(t, err)

	large := linePoints(20, 1, 0)
	small := []float64{0, 0, 10, 0, 10, 10}

	_, err = ip.Interpolate(large)
	require.NoError(t, err)

	got, err := ip.Interpolate(small)
	require.NoError(t, err)

	want, err := Interpolate(small, 0.5, 8, true)
	require.NoError(t, err)
	assert.Equal(t, want, got, "reused scratch changed the result")

	ip.Reset()
	got, err = ip.Interpolate(small)
	require.NoError(t, err)
	assert.Equal(t, want, got, "Reset changed the result")
}

// TestSIMDParityFloat64 verifies the SIMD fill path against the scalar fill.
func TestSIMDParityFloat64(t *testing.T) {
	scalar, err := NewInterpolator[float64](0.5, 25, true, false)
	require.NoError(t, err)
	simd, err := NewInterpolator[float64](0.5, 25, true, true)
	require.NoError(t, err)

	points := []float64{0, 0, 100, 0, 100, 100, 0, 100, -50, 50}

	a, err := scalar.Interpolate(points)
	require.NoError(t, err)
	b, err := simd.Interpolate(points)
	require.NoError(t, err)

	require.Len(t, b, len(a))
	assert.True(t, floats.EqualApprox(a, b, 1e-12), "SIMD and scalar fills disagree")
}

// TestSIMDParityFloat32 covers the float32 instantiation of both fill paths.
func TestSIMDParityFloat32(t *testing.T) {
	scalar, err := NewInterpolator[float32](0.5, 10, false, false)
	require.NoError(t, err)
	simd, err := NewInterpolator[float32](0.5, 10, false, true)
	require.NoError(t, err)

	points := []float32{0, 0, 100, 0, 100, 100, 0, 100}

	a, err := scalar.Interpolate(points)
	require.NoError(t, err)
	b, err := simd.Interpolate(points)
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.InDelta(t, a[i], b[i], 1e-3, "index %d", i)
	}
}

// TestInterpolatorAccessors covers the info surface.
func TestInterpolatorAccessors(t *testing.T) {
	ip, err := NewInterpolator[float32](0.5, 25, false, true)
	require.NoError(t, err)

	assert.Equal(t, 25, ip.Segments())
	assert.Equal(t, 26, ip.TableSize())
	assert.True(t, ip.SIMDEnabled())
	assert.NotEmpty(t, ip.SIMDInfo())

	plain, err := NewInterpolator[float32](0.5, 25, false, false)
	require.NoError(t, err)
	assert.False(t, plain.SIMDEnabled())
	assert.Empty(t, plain.SIMDInfo())
}

func BenchmarkInterpolateScalar(b *testing.B) {
	ip, err := NewInterpolator[float32](0.5, 25, true, false)
	if err != nil {
		b.Fatal(err)
	}
	points := benchmarkPoints(64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ip.Interpolate(points); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInterpolateSIMD(b *testing.B) {
	ip, err := NewInterpolator[float32](0.5, 25, true, true)
	if err != nil {
		b.Fatal(err)
	}
	points := benchmarkPoints(64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ip.Interpolate(points); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkPoints(n int) []float32 {
	points := make([]float32, n*2)
	for i := range n {
		points[i*2] = float32(i * 7 % 101)
		points[i*2+1] = float32(i * 13 % 89)
	}
	return points
}
