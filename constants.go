package spline

// Interpolation defaults used by the convenience functions.
const (
	// DefaultTension is the classic Catmull-Rom tension.
	DefaultTension = 0.5

	// DefaultSegmentsPerSpan is the default subdivision count between
	// consecutive control points.
	DefaultSegmentsPerSpan = 25
)

// Coordinate layout constants.
const (
	// scalarsPerPoint is the number of scalars per 2D point in the flat
	// interleaved format.
	scalarsPerPoint = 2

	// minSegmentsPerSpan is the smallest legal subdivision count.
	minSegmentsPerSpan = 1
)
