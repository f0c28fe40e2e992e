package distance

import (
	"fmt"
	"math"
)

// ErrDimensionMismatch indicates two vectors of different lengths were compared.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return float32(sum)
}

// Norm calculates the Euclidean (L2) norm of a vector.
func Norm(v []float32) float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return float32(math.Sqrt(sum))
}

// Cosine calculates the cosine similarity of two vectors: dot(a,b) / (‖a‖·‖b‖).
// The result lies in [-1, 1].
//
// If the vectors differ in length it returns *ErrDimensionMismatch.
//
// If either vector has zero norm the result is exactly 0.0 and no error is
// returned. This avoids division by zero; it is a policy choice, not a
// mathematically defined similarity.
func Cosine(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}

	if na == 0 || nb == 0 {
		return 0, nil
	}

	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb))), nil
}
