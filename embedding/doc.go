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

// Package embedding provides similarity kernels over batches of embedding
// vectors.
//
// The primary operation is CosineSimilarityMatrix, which computes the full
// pairwise cosine-similarity matrix of a batch in one call. Matrices are
// returned as flat row-major slices: entry (i, j) of an n x n matrix lives
// at index i*n+j.
//
// The scalar kernels (Dot, Norm, Cosine) accumulate in float64 regardless
// of the element type, so float32 batches do not lose precision to
// intermediate rounding. Vector norms are floored at a small epsilon before
// division, so zero vectors produce zero similarities instead of NaN.
//
// Example:
//
//	batch := [][]float32{
//	    {1, 0, 0},
//	    {0, 1, 0},
//	    {1, 1, 0},
//	}
//	m, err := embedding.CosineSimilarityMatrix(batch)
//	if err != nil {
//	    return err
//	}
//	// m[0*3+2] == cosine of batch[0] and batch[2]
package embedding
