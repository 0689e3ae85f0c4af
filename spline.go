package spline

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-spline/internal/engine"
)

// Config holds spline sampling configuration.
type Config struct {
	// Tension controls how sharply the curve bends at control points.
	// 0.5 is the classic Catmull-Rom default. Values outside [0,1] are
	// accepted and produce over- or undershooting curves.
	Tension float64

	// SegmentsPerSpan is the number of curve samples generated between each
	// pair of consecutive control points. Must be at least 1.
	SegmentsPerSpan int

	// Closed wraps the curve from the last control point back to the first,
	// producing a continuous loop. When false, the curve is open with
	// tangent-flat endpoints.
	Closed bool

	// EnableSIMD allows the use of SIMD optimizations when available.
	// Set to false to force the pure Go implementation.
	EnableSIMD bool
}

// ErrInvalidArgument indicates invalid interpolation parameters.
var ErrInvalidArgument = errors.New("invalid spline argument")

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SegmentsPerSpan < minSegmentsPerSpan {
		return fmt.Errorf("%w: segments per span must be at least %d, got %d",
			ErrInvalidArgument, minSegmentsPerSpan, c.SegmentsPerSpan)
	}
	return nil
}

// Interpolate computes a dense polyline approximation of a cardinal spline
// through the given control points.
//
// points is a flat interleaved coordinate sequence (x0,y0,x1,y1,...). It is
// only read, never mutated; the result is a freshly allocated sequence that
// does not alias the input.
//
// The output holds (n-1)*segmentsPerSpan + 2 coordinate pairs for an open
// curve of n control points, or n*segmentsPerSpan + 2 for a closed one.
// Fewer than two control points yield an empty result, which is a defined
// degenerate case rather than an error. A segmentsPerSpan below 1 fails with
// ErrInvalidArgument before any computation.
func Interpolate(points []float32, tension float32, segmentsPerSpan int, closed bool) ([]float32, error) {
	if err := validateSegments(segmentsPerSpan); err != nil {
		return nil, err
	}
	return engine.Interpolate(points, tension, segmentsPerSpan, closed)
}

// InterpolateFloat64 is like Interpolate but for float64 coordinates.
// Use this when downstream consumers need double precision; for rendering,
// the float32 variant is usually sufficient and faster.
func InterpolateFloat64(points []float64, tension float64, segmentsPerSpan int, closed bool) ([]float64, error) {
	if err := validateSegments(segmentsPerSpan); err != nil {
		return nil, err
	}
	return engine.Interpolate(points, tension, segmentsPerSpan, closed)
}

// OutputLen returns the number of coordinate pairs Interpolate produces for
// pointCount control points with the given parameters. The degenerate case
// of fewer than two control points yields zero.
func OutputLen(pointCount, segmentsPerSpan int, closed bool) int {
	return engine.OutputLen(pointCount, segmentsPerSpan, closed)
}

func validateSegments(segmentsPerSpan int) error {
	if segmentsPerSpan < minSegmentsPerSpan {
		return fmt.Errorf("%w: segments per span must be at least %d, got %d",
			ErrInvalidArgument, minSegmentsPerSpan, segmentsPerSpan)
	}
	return nil
}

// Sampler is a reusable float32 spline interpolator.
//
// It precomputes the Hermite weight table at construction and reuses scratch
// buffers across calls, avoiding the per-call setup cost of the package-level
// functions. A Sampler is safe for concurrent use; calls are serialized
// internally.
type Sampler struct {
	config Config
	engine *engine.Interpolator[float32]
}

// New creates a Sampler with the specified configuration.
func New(config *Config) (*Sampler, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidArgument)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ip, err := engine.NewInterpolator[float32](
		float32(config.Tension), config.SegmentsPerSpan, config.Closed, config.EnableSIMD)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return &Sampler{config: *config, engine: ip}, nil
}

// Interpolate computes the polyline for one control-point sequence using the
// sampler's fixed parameters. Semantics match the package-level Interpolate.
func (s *Sampler) Interpolate(points []float32) ([]float32, error) {
	return s.engine.Interpolate(points)
}

// OutputLen returns the number of coordinate pairs produced for pointCount
// control points with this sampler's parameters.
func (s *Sampler) OutputLen(pointCount int) int {
	return engine.OutputLen(pointCount, s.config.SegmentsPerSpan, s.config.Closed)
}

// Reset releases the sampler's scratch buffers.
func (s *Sampler) Reset() {
	s.engine.Reset()
}

// GetConfig returns a copy of the sampler's configuration.
func (s *Sampler) GetConfig() Config {
	return s.config
}

// Info describes a sampler's runtime characteristics.
type Info struct {
	// SegmentsPerSpan is the subdivision count between control points.
	SegmentsPerSpan int

	// TableSize is the number of cached Hermite weight rows.
	TableSize int

	// SIMDEnabled indicates if SIMD optimizations are active.
	SIMDEnabled bool

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}

// GetInfo returns information about the sampler.
func (s *Sampler) GetInfo() Info {
	return Info{
		SegmentsPerSpan: s.engine.Segments(),
		TableSize:       s.engine.TableSize(),
		SIMDEnabled:     s.engine.SIMDEnabled(),
		SIMDType:        s.engine.SIMDInfo(),
	}
}
