package engine

// Coordinate layout constants.
const (
	// scalarsPerPoint is the number of scalars per 2D control point.
	scalarsPerPoint = 2

	// minControlPoints is the smallest control-point count that produces a
	// curve; anything less is the defined degenerate empty-output case.
	minControlPoints = 2

	// minSegmentsPerSpan is the smallest legal subdivision count.
	minSegmentsPerSpan = 1
)

// Padding constants. Every real control point needs two neighbors on each
// side for tangent computation, supplied by phantom points at the ends.
const (
	// openPaddingScalars covers the [P0, P1] prefix and [P(n-2), P(n-1)]
	// suffix of an open curve.
	openPaddingScalars = 8

	// closedPaddingScalars covers the [P(n-2), P(n-1)] prefix and [P0]
	// suffix of a closed curve.
	closedPaddingScalars = 6

	// windowScalars is the size of one segment window: four consecutive
	// points (predecessor, start, end, successor).
	windowScalars = 8
)
