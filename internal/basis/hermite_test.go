package basis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHermiteTableSize(t *testing.T) {
	for _, segments := range []int{1, 2, 4, 25, 100} {
		table := Hermite[float64](segments)
		assert.Len(t, table, segments+1, "segments=%d", segments)
	}
}

func TestHermiteBoundaryRows(t *testing.T) {
	table := Hermite[float64](25)

	assert.Equal(t, Weights[float64]{1, 0, 0, 0}, table[0], "t=0 row must reproduce the start point")
	assert.Equal(t, Weights[float64]{0, 1, 0, 0}, table[25], "t=1 row must reproduce the end point")
}

// TestHermitePartitionOfUnity verifies h00 + h01 = 1 at every sample
// position, which pins interpolated samples onto the chord when tangents
// vanish.
func TestHermitePartitionOfUnity(t *testing.T) {
	table := Hermite[float64](64)

	for i, row := range table {
		assert.InDelta(t, 1.0, row[WeightStart]+row[WeightEnd], 1e-14, "row %d", i)
	}
}

// TestHermiteSymmetry verifies the endpoint weights mirror each other:
// h00(t) = h01(1-t) and h10(t) = -h11(1-t).
func TestHermiteSymmetry(t *testing.T) {
	const segments = 32
	table := Hermite[float64](segments)

	for i := 0; i <= segments; i++ {
		j := segments - i
		assert.InDelta(t, table[i][WeightStart], table[j][WeightEnd], 1e-14, "h00(%d) vs h01(%d)", i, j)
		assert.InDelta(t, table[i][WeightStartTangent], -table[j][WeightEndTangent], 1e-14, "h10(%d) vs h11(%d)", i, j)
	}
}

// TestHermiteMidpoint checks the exact analytic weights at t = 1/2.
func TestHermiteMidpoint(t *testing.T) {
	table := Hermite[float64](2)
	require.Len(t, table, 3)

	mid := table[1]
	assert.InDelta(t, 0.5, mid[WeightStart], 1e-15)
	assert.InDelta(t, 0.5, mid[WeightEnd], 1e-15)
	assert.InDelta(t, 0.125, mid[WeightStartTangent], 1e-15)
	assert.InDelta(t, -0.125, mid[WeightEndTangent], 1e-15)
}

func TestHermiteSingleSegment(t *testing.T) {
	table := Hermite[float32](1)

	require.Len(t, table, 2)
	assert.Equal(t, Weights[float32]{1, 0, 0, 0}, table[0])
	assert.Equal(t, Weights[float32]{0, 1, 0, 0}, table[1])
}
