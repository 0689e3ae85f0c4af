// Command spline samples a cardinal spline through a generated control
// polygon and reports the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	spline "github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/internal/mathutil"
)

const (
	defaultTension  = 0.5
	defaultSegments = 25
	defaultPoints   = 8

	// Shape generation parameters.
	shapeRadius    = 100.0
	zigzagStep     = 20.0
	zigzagHeight   = 30.0
	fullTurn       = 2 * math.Pi
	starInnerRatio = 0.45
)

func main() {
	// Command-line flags
	var (
		tension   = flag.Float64("tension", defaultTension, "Curve tension (0.5 = Catmull-Rom)")
		segments  = flag.Int("segments", defaultSegments, "Samples per span (>= 1)")
		closed    = flag.Bool("closed", false, "Close the curve into a loop")
		shape     = flag.String("shape", "circle", "Control polygon: circle, star, zigzag")
		numPoints = flag.Int("points", defaultPoints, "Number of control points")
		simd      = flag.Bool("simd", true, "Enable SIMD acceleration")
	)
	flag.Parse()

	points := generateShape(*shape, *numPoints)

	config := spline.Config{
		Tension:         *tension,
		SegmentsPerSpan: *segments,
		Closed:          *closed,
		EnableSIMD:      *simd,
	}

	sampler, err := spline.New(&config)
	if err != nil {
		log.Fatalf("Failed to create sampler: %v", err)
	}

	info := sampler.GetInfo()
	fmt.Printf("Sampler created:\n")
	fmt.Printf("  Segments per span: %d\n", info.SegmentsPerSpan)
	fmt.Printf("  Weight table rows: %d\n", info.TableSize)
	fmt.Printf("  SIMD: %v (%s)\n", info.SIMDEnabled, info.SIMDType)

	curve, err := sampler.Interpolate(points)
	if err != nil {
		log.Fatalf("Interpolation failed: %v", err)
	}

	controlPairs := len(points) / 2
	curvePairs := len(curve) / 2

	fmt.Printf("\nShape: %s\n", *shape)
	fmt.Printf("Control points: %d\n", controlPairs)
	fmt.Printf("Curve points: %d\n", curvePairs)
	fmt.Printf("Expected curve points: %d\n", sampler.OutputLen(controlPairs))
	fmt.Printf("Control polygon length: %.3f\n", mathutil.PolylineLength(toFloat64(points)))
	fmt.Printf("Curve length: %.3f\n", mathutil.PolylineLength(toFloat64(curve)))
}

// generateShape builds a control polygon as an interleaved float32 sequence.
func generateShape(shape string, n int) []float32 {
	points := make([]float32, n*2)

	switch shape {
	case "star":
		for i := range n {
			angle := fullTurn * float64(i) / float64(n)
			r := shapeRadius
			if i%2 == 1 {
				r *= starInnerRatio
			}
			points[i*2] = float32(r * math.Cos(angle))
			points[i*2+1] = float32(r * math.Sin(angle))
		}

	case "zigzag":
		for i := range n {
			points[i*2] = float32(float64(i) * zigzagStep)
			points[i*2+1] = float32(float64(i%2) * zigzagHeight)
		}

	default: // circle
		for i := range n {
			angle := fullTurn * float64(i) / float64(n)
			points[i*2] = float32(shapeRadius * math.Cos(angle))
			points[i*2+1] = float32(shapeRadius * math.Sin(angle))
		}
	}

	return points
}

func toFloat64(coords []float32) []float64 {
	out := make([]float64, len(coords))
	for i, v := range coords {
		out[i] = float64(v)
	}
	return out
}
