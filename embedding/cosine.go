// Copyright 2025 ml-notebooks Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package embedding

import "math"

// normEpsilon is the floor applied to vector norms before division.
// Zero vectors therefore produce a similarity of 0 instead of NaN.
const normEpsilon = 1e-8

// Cosine computes the cosine similarity of two vectors:
// Dot(a, b) / (Norm(a) * Norm(b)).
//
// If the slices have different lengths, both are truncated to the minimum
// length first. Norms are floored at a small epsilon, so a zero vector
// yields 0 rather than NaN. Returns 0 if either slice is empty.
//
// Example:
//
//	a := []float32{3, 4}
//	b := []float32{4, 3}
//	result := Cosine(a, b)  // 24 / (5 * 5) = 0.96
func Cosine[T Floats](a, b []T) T {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	a, b = a[:n], b[:n]

	na := flooredNorm(a)
	nb := flooredNorm(b)
	return T(dotf64(a, b) / (na * nb))
}

// flooredNorm returns the L2 norm of v in float64, floored at normEpsilon.
func flooredNorm[T Floats](v []T) float64 {
	norm := math.Sqrt(dotf64(v, v))
	if norm < normEpsilon {
		norm = normEpsilon
	}
	return norm
}
