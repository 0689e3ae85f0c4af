// Command spline-png renders a closed cardinal spline as a filled shape and
// writes it to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"math/rand"
	"os"

	"golang.org/x/image/vector"

	spline "github.com/tphakala/go-spline"
)

const (
	defaultSize     = 512
	defaultPoints   = 9
	defaultSegments = 32
	defaultTension  = 0.5
	defaultSeed     = 1

	// Blob generation: control points on a randomly perturbed ring.
	radiusRatio  = 0.35
	wobbleRatio  = 0.45
	marginRatio  = 0.5
	fullTurn     = 2 * math.Pi
	fillRed      = 0x2e
	fillGreen    = 0x86
	fillBlue     = 0xc1
	opaqueAlpha  = 0xff
)

func main() {
	var (
		out       = flag.String("out", "spline.png", "Output PNG path")
		size      = flag.Int("size", defaultSize, "Image width and height in pixels")
		numPoints = flag.Int("points", defaultPoints, "Number of control points")
		segments  = flag.Int("segments", defaultSegments, "Samples per span")
		tension   = flag.Float64("tension", defaultTension, "Curve tension")
		seed      = flag.Int64("seed", defaultSeed, "Blob shape seed")
	)
	flag.Parse()

	points := generateBlob(*numPoints, *size, *seed)

	curve, err := spline.Interpolate(points, float32(*tension), *segments, true)
	if err != nil {
		log.Fatalf("Interpolation failed: %v", err)
	}

	img := render(curve, *size)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	fmt.Printf("Wrote %s: %dx%d px, %d control points, %d curve points\n",
		*out, *size, *size, len(points)/2, len(curve)/2)
}

// generateBlob places control points on a ring with randomized radii,
// producing an organic closed shape.
func generateBlob(n, size int, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	center := float64(size) * marginRatio
	base := float64(size) * radiusRatio

	points := make([]float32, n*2)
	for i := range n {
		angle := fullTurn * float64(i) / float64(n)
		r := base * (1 + wobbleRatio*(rng.Float64()-0.5))
		points[i*2] = float32(center + r*math.Cos(angle))
		points[i*2+1] = float32(center + r*math.Sin(angle))
	}
	return points
}

// render fills the closed curve onto a white background.
func render(curve []float32, size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if len(curve) < 4 {
		return img
	}

	r := vector.NewRasterizer(size, size)
	r.DrawOp = draw.Over
	r.MoveTo(curve[0], curve[1])
	for i := 2; i+1 < len(curve); i += 2 {
		r.LineTo(curve[i], curve[i+1])
	}
	r.ClosePath()

	fill := image.NewUniform(color.RGBA{R: fillRed, G: fillGreen, B: fillBlue, A: opaqueAlpha})
	r.Draw(img, img.Bounds(), fill, image.Point{})

	return img
}
