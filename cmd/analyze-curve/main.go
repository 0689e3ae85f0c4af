// Command analyze-curve reports numerical properties of a sampled spline:
// arc length, bounding box and the distribution of inter-sample spacing.
// Uneven spacing shows where the curve bends hardest, which is useful when
// choosing a segment count for a target rendering resolution.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	spline "github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/internal/mathutil"
)

const (
	defaultTension  = 0.5
	defaultSegments = 25
	defaultPoints   = 8

	shapeRadius = 100.0
	fullTurn    = 2 * math.Pi
)

func main() {
	var (
		tension   = flag.Float64("tension", defaultTension, "Curve tension")
		segments  = flag.Int("segments", defaultSegments, "Samples per span")
		numPoints = flag.Int("points", defaultPoints, "Control points on the test circle")
		closed    = flag.Bool("closed", true, "Close the curve into a loop")
	)
	flag.Parse()

	// Control polygon: a regular polygon inscribed in a circle. Its spline
	// should approach the circle as the segment count grows.
	points := make([]float64, *numPoints*2)
	for i := range *numPoints {
		angle := fullTurn * float64(i) / float64(*numPoints)
		points[i*2] = shapeRadius * math.Cos(angle)
		points[i*2+1] = shapeRadius * math.Sin(angle)
	}

	curve, err := spline.InterpolateFloat64(points, *tension, *segments, *closed)
	if err != nil {
		log.Fatalf("Interpolation failed: %v", err)
	}

	fmt.Println("=== Curve Analysis ===")
	fmt.Printf("Control points: %d, segments per span: %d, tension: %g, closed: %v\n",
		*numPoints, *segments, *tension, *closed)
	fmt.Printf("Curve points: %d\n\n", len(curve)/2)

	polygonLen := mathutil.PolylineLength(points)
	curveLen := mathutil.PolylineLength(curve)
	fmt.Printf("Control polygon length: %.4f\n", polygonLen)
	fmt.Printf("Curve length:           %.4f\n", curveLen)
	if *closed {
		circumference := fullTurn * shapeRadius
		fmt.Printf("Circle circumference:   %.4f (curve error %.3f%%)\n",
			circumference, 100*math.Abs(curveLen-circumference)/circumference)
	}

	minX, minY, maxX, maxY, ok := mathutil.Bounds(curve)
	if ok {
		fmt.Printf("\nBounds: x [%.3f, %.3f], y [%.3f, %.3f]\n", minX, maxX, minY, maxY)
	}

	spacings := mathutil.SampleSpacings(curve)
	if len(spacings) == 0 {
		return
	}

	mean := stat.Mean(spacings, nil)
	stddev := stat.StdDev(spacings, nil)
	fmt.Println("\nInter-sample spacing:")
	fmt.Printf("  min:    %.6f\n", floats.Min(spacings))
	fmt.Printf("  max:    %.6f\n", floats.Max(spacings))
	fmt.Printf("  mean:   %.6f\n", mean)
	fmt.Printf("  stddev: %.6f (%.2f%% of mean)\n", stddev, 100*stddev/mean)
	fmt.Printf("  total:  %.4f over %d hops\n", floats.Sum(spacings), len(spacings))
}
