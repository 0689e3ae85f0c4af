package spline

import (
	"fmt"

	"github.com/tphakala/go-spline/internal/engine"
)

// Smooth interpolates an open curve with the default tension (0.5) and
// segment count (25). This matches the behavior most canvas-style smoothing
// helpers expect.
func Smooth(points []float32) ([]float32, error) {
	return Interpolate(points, DefaultTension, DefaultSegmentsPerSpan, false)
}

// SmoothClosed interpolates a closed loop with the default tension and
// segment count.
func SmoothClosed(points []float32) ([]float32, error) {
	return Interpolate(points, DefaultTension, DefaultSegmentsPerSpan, true)
}

// SmoothFloat64 is the float64 equivalent of Smooth.
func SmoothFloat64(points []float64) ([]float64, error) {
	return InterpolateFloat64(points, DefaultTension, DefaultSegmentsPerSpan, false)
}

// SmoothClosedFloat64 is the float64 equivalent of SmoothClosed.
func SmoothClosedFloat64(points []float64) ([]float64, error) {
	return InterpolateFloat64(points, DefaultTension, DefaultSegmentsPerSpan, true)
}

// InterleavePoints converts planar x and y coordinate slices to the flat
// interleaved format the interpolator consumes.
// Output format: [x0, y0, x1, y1, ...]
func InterleavePoints(xs, ys []float32) []float32 {
	minLen := min(len(xs), len(ys))
	result := make([]float32, minLen*scalarsPerPoint)
	for i := range minLen {
		result[i*scalarsPerPoint] = xs[i]
		result[i*scalarsPerPoint+1] = ys[i]
	}
	return result
}

// DeinterleavePoints converts a flat interleaved coordinate sequence to
// planar x and y slices.
// Input format: [x0, y0, x1, y1, ...]
func DeinterleavePoints(points []float32) (xs, ys []float32) {
	numPoints := len(points) / scalarsPerPoint
	xs = make([]float32, numPoints)
	ys = make([]float32, numPoints)
	for i := range numPoints {
		xs[i] = points[i*scalarsPerPoint]
		ys[i] = points[i*scalarsPerPoint+1]
	}
	return xs, ys
}

// =============================================================================
// Float64 Native API
// =============================================================================
//
// The following types provide a float64-native sampler. Use these when the
// consuming pipeline works in double precision (scientific plotting, CAD-like
// geometry); for rendering work the float32 Sampler halves memory bandwidth
// and doubles SIMD lane count.

// SamplerFloat64 is a reusable float64 spline interpolator.
//
// It mirrors Sampler exactly, keeping every value in float64 so no precision
// is lost to type conversions.
type SamplerFloat64 struct {
	config Config
	engine *engine.Interpolator[float64]
}

// NewFloat64 creates a SamplerFloat64 with the specified configuration.
func NewFloat64(config *Config) (*SamplerFloat64, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidArgument)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ip, err := engine.NewInterpolator[float64](
		config.Tension, config.SegmentsPerSpan, config.Closed, config.EnableSIMD)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return &SamplerFloat64{config: *config, engine: ip}, nil
}

// Interpolate computes the polyline for one control-point sequence using the
// sampler's fixed parameters.
func (s *SamplerFloat64) Interpolate(points []float64) ([]float64, error) {
	return s.engine.Interpolate(points)
}

// OutputLen returns the number of coordinate pairs produced for pointCount
// control points with this sampler's parameters.
func (s *SamplerFloat64) OutputLen(pointCount int) int {
	return engine.OutputLen(pointCount, s.config.SegmentsPerSpan, s.config.Closed)
}

// Reset releases the sampler's scratch buffers.
func (s *SamplerFloat64) Reset() {
	s.engine.Reset()
}

// GetConfig returns a copy of the sampler's configuration.
func (s *SamplerFloat64) GetConfig() Config {
	return s.config
}

// GetInfo returns information about the sampler.
func (s *SamplerFloat64) GetInfo() Info {
	return Info{
		SegmentsPerSpan: s.engine.Segments(),
		TableSize:       s.engine.TableSize(),
		SIMDEnabled:     s.engine.SIMDEnabled(),
		SIMDType:        s.engine.SIMDInfo(),
	}
}
