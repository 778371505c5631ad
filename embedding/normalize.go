package embedding

import "math"

// Normalize scales a vector in-place to unit length (L2 norm = 1).
//
// If the vector is empty or has zero norm (all zeros), it is left
// unchanged. This prevents division by zero while preserving the zero
// vector.
//
// Example:
//
//	v := []float32{3, 0, 4}
//	Normalize(v)  // v is now [0.6, 0, 0.8] since ||[3,0,4]|| = 5
func Normalize[T Floats](v []T) {
	if len(v) == 0 {
		return
	}

	squaredNorm := dotf64(v, v)
	if squaredNorm == 0 {
		return
	}

	scale := 1.0 / math.Sqrt(squaredNorm)
	for i := range v {
		v[i] = T(float64(v[i]) * scale)
	}
}

// NormalizeBatch normalizes every vector of a batch in-place.
// Zero vectors are preserved unchanged, as in Normalize.
func NormalizeBatch[T Floats](batch [][]T) {
	for _, v := range batch {
		Normalize(v)
	}
}
