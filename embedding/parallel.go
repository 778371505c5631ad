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

import (
	"github.com/dhruvbird/ml-notebooks/workerpool"
)

// Parallel tuning parameters for row-parallel batch operations.
const (
	// MinParallelSimilarityOps is the minimum multiply count (n*n*dim)
	// before parallelizing the similarity matrix. Below this the pool
	// dispatch overhead exceeds the row work.
	MinParallelSimilarityOps = 16384

	// SimilarityRowBatch is the number of rows handed to each worker in
	// a single batch via ParallelForAtomicBatched. Upper-triangle rows
	// shrink as i grows, so small batches keep the load balanced.
	SimilarityRowBatch = 4
)

// ParallelCosineSimilarityMatrix computes the same flat [n, n] cosine
// similarity matrix as CosineSimilarityMatrix, distributing rows across
// the worker pool.
//
// Each matrix cell is produced by exactly the same arithmetic as in the
// sequential form, so the two agree bitwise. Falls back to the sequential
// form when pool is nil or the batch is below MinParallelSimilarityOps.
func ParallelCosineSimilarityMatrix[T Floats](pool *workerpool.Pool, batch [][]T) ([]T, error) {
	dim, err := BatchDim(batch)
	if err != nil {
		return nil, err
	}

	n := len(batch)
	if pool == nil || n*n*dim < MinParallelSimilarityOps {
		return CosineSimilarityMatrix(batch)
	}

	norms := make([]float64, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			norms[i] = flooredNorm(batch[i])
		}
	})

	m := make([]T, n*n)
	pool.ParallelForAtomicBatched(n, SimilarityRowBatch, func(start, end int) {
		similarityRows(batch, norms, m, n, start, end)
	})
	return m, nil
}
