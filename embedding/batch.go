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

import "github.com/pkg/errors"

// BatchDim validates an embedding batch and returns the shared vector
// dimension.
//
// Fails with ErrInvalidInput when the batch is empty, when the vector
// dimension is zero, or when any vector's length differs from the first
// (ragged batch).
func BatchDim[T Floats](batch [][]T) (int, error) {
	if len(batch) == 0 {
		return 0, errors.Wrap(ErrInvalidInput, "batch is empty")
	}
	dim := len(batch[0])
	if dim == 0 {
		return 0, errors.Wrap(ErrInvalidInput, "vector dimension is zero")
	}
	for i, v := range batch {
		if len(v) != dim {
			return 0, errors.Wrapf(ErrInvalidInput, "vector %d has length %d, want %d", i, len(v), dim)
		}
	}
	return dim, nil
}

// CosineSimilarityMatrix computes the pairwise cosine similarities of a
// batch of n vectors as a flat row-major [n, n] matrix: entry (i, j) lives
// at index i*n+j.
//
// Each norm is computed once and floored at a small epsilon, so batches
// containing zero vectors produce zero similarities instead of NaN. Only
// the upper triangle is computed; the lower triangle is mirrored, which
// makes the result symmetric by construction. For vectors with nonzero
// norm, the diagonal is 1 up to rounding.
//
// Fails with ErrInvalidInput when the batch is empty or ragged. The input
// is never mutated.
func CosineSimilarityMatrix[T Floats](batch [][]T) ([]T, error) {
	if _, err := BatchDim(batch); err != nil {
		return nil, err
	}

	n := len(batch)
	norms := make([]float64, n)
	for i, v := range batch {
		norms[i] = flooredNorm(v)
	}

	m := make([]T, n*n)
	similarityRows(batch, norms, m, n, 0, n)
	return m, nil
}

// similarityRows fills rows [start, end) of the flat [n, n] similarity
// matrix, mirroring each upper-triangle entry into the lower triangle.
// Rows are independent: every cell has exactly one writing row, so
// disjoint row ranges can run concurrently.
func similarityRows[T Floats](batch [][]T, norms []float64, m []T, n, start, end int) {
	for i := start; i < end; i++ {
		for j := i; j < n; j++ {
			c := T(dotf64(batch[i], batch[j]) / (norms[i] * norms[j]))
			m[i*n+j] = c
			m[j*n+i] = c
		}
	}
}
