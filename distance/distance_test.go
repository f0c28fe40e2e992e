package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_SelfSimilarity(t *testing.T) {
	vectors := [][]float32{
		{1, 0},
		{0.3, -0.7, 0.2},
		{1, 2, 3, 4, 5},
	}
	for _, v := range vectors {
		score, err := Cosine(v, v)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, score, 1e-6)
	}
}

func TestCosine_Symmetry(t *testing.T) {
	a := []float32{0.1, 0.9, -0.3}
	b := []float32{-0.5, 0.2, 0.7}

	ab, err := Cosine(a, b)
	require.NoError(t, err)
	ba, err := Cosine(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
}

func TestCosine_ZeroVector(t *testing.T) {
	zero := []float32{0, 0, 0}
	v := []float32{1, 2, 3}

	score, err := Cosine(zero, v)
	require.NoError(t, err)
	assert.Equal(t, float32(0), score)

	score, err = Cosine(v, zero)
	require.NoError(t, err)
	assert.Equal(t, float32(0), score)

	score, err = Cosine(zero, zero)
	require.NoError(t, err)
	assert.Equal(t, float32(0), score)
}

func TestCosine_Orthogonal(t *testing.T) {
	score, err := Cosine([]float32{1, 0}, []float32{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, score, 1e-6)
}

func TestCosine_Opposite(t *testing.T) {
	score, err := Cosine([]float32{1, 2}, []float32{-1, -2})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, score, 1e-6)
}

func TestCosine_DimensionMismatch(t *testing.T) {
	_, err := Cosine([]float32{1, 2}, []float32{1, 2, 3})
	require.Error(t, err)

	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
}

func TestCosine_KnownValue(t *testing.T) {
	// dot = 0.9, norms = 1 and sqrt(0.82)
	score, err := Cosine([]float32{1, 0}, []float32{0.9, 0.1})
	require.NoError(t, err)
	assert.InDelta(t, 0.99388, score, 1e-4)
}

func TestDot(t *testing.T) {
	assert.InDelta(t, 11.0, Dot([]float32{1, 2}, []float32{3, 4}), 1e-6)
}

func TestNorm(t *testing.T) {
	assert.InDelta(t, 5.0, Norm([]float32{3, 4}), 1e-6)
	assert.Equal(t, float32(0), Norm([]float32{0, 0}))
}
