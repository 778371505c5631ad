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

// dotUnroll is the number of independent accumulators used by the dot
// kernel main loop. Per-arch init functions raise it to 8 on cores with
// deep FMA pipelines; see dot_amd64.go and dot_arm64.go.
var dotUnroll = 4

// Dot computes the dot product (inner product) of two vectors.
// The result is the sum of element-wise products: sum(a[i] * b[i]).
//
// Accumulation happens in float64 and the total is converted to T on
// return. If the slices have different lengths, the computation uses the
// minimum length. Returns 0 if either slice is empty.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func Dot[T Floats](a, b []T) T {
	return T(dotf64(a, b))
}

// SquaredNorm computes the squared L2 norm (sum of squares) of a vector.
// The result is equivalent to Dot(v, v).
func SquaredNorm[T Floats](v []T) T {
	return T(dotf64(v, v))
}

// Norm computes the L2 norm (Euclidean magnitude) of a vector.
// The result is Sqrt(sum(v[i] * v[i])). Returns 0 if the slice is empty.
//
// Example:
//
//	v := []float32{3, 4}
//	result := Norm(v)  // Sqrt(9 + 16) = 5
func Norm[T Floats](v []T) T {
	return T(math.Sqrt(dotf64(v, v)))
}

// dotf64 is the shared dot kernel. It keeps the running sums in float64 so
// that callers needing full precision (norms, similarity matrices) can
// defer the conversion to T until the very end.
func dotf64[T Floats](a, b []T) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	if dotUnroll >= 8 {
		return dot8(a, b, n)
	}
	return dot4(a, b, n)
}

// dot4 accumulates into 4 independent sums for instruction-level
// parallelism, then folds them pairwise and finishes the tail with scalar
// code.
func dot4[T Floats](a, b []T, n int) float64 {
	var s0, s1, s2, s3 float64

	var i int
	for i = 0; i+4 <= n; i += 4 {
		s0 += float64(a[i]) * float64(b[i])
		s1 += float64(a[i+1]) * float64(b[i+1])
		s2 += float64(a[i+2]) * float64(b[i+2])
		s3 += float64(a[i+3]) * float64(b[i+3])
	}

	s0 = s0 + s1
	s2 = s2 + s3
	sum := s0 + s2

	// Handle tail elements with scalar code
	for ; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}

	return sum
}

// dot8 is the wide variant selected on cores where 8 accumulator chains
// keep the FMA pipes full.
func dot8[T Floats](a, b []T, n int) float64 {
	var s0, s1, s2, s3, s4, s5, s6, s7 float64

	var i int
	for i = 0; i+8 <= n; i += 8 {
		s0 += float64(a[i]) * float64(b[i])
		s1 += float64(a[i+1]) * float64(b[i+1])
		s2 += float64(a[i+2]) * float64(b[i+2])
		s3 += float64(a[i+3]) * float64(b[i+3])
		s4 += float64(a[i+4]) * float64(b[i+4])
		s5 += float64(a[i+5]) * float64(b[i+5])
		s6 += float64(a[i+6]) * float64(b[i+6])
		s7 += float64(a[i+7]) * float64(b[i+7])
	}

	s0 = s0 + s1
	s2 = s2 + s3
	s4 = s4 + s5
	s6 = s6 + s7
	s0 = s0 + s2
	s4 = s4 + s6
	sum := s0 + s4

	// Handle tail elements with scalar code
	for ; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}

	return sum
}
