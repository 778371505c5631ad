// Copyright 2025 ml-notebooks Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package loss

import (
	"github.com/dhruvbird/ml-notebooks/embedding"
	"github.com/dhruvbird/ml-notebooks/workerpool"
)

const (
	// MinParallelLossOps is the minimum similarity matrix size (rows
	// times columns) before per-row loss reductions are distributed.
	// Loss rows are exp/log heavy, so parallelism pays off on smaller
	// matrices than for the memory-bound similarity kernels.
	MinParallelLossOps = 4096

	// LossRowBatch is the number of rows each worker claims at a time
	// from the atomic counter.
	LossRowBatch = 4
)

// similarityFor builds the cosine similarity matrix, routed through the
// pool when one is supplied.
func similarityFor[T embedding.Floats](pool *workerpool.Pool, batch [][]T) ([]T, error) {
	if pool == nil {
		return embedding.CosineSimilarityMatrix(batch)
	}
	return embedding.ParallelCosineSimilarityMatrix(pool, batch)
}

// ParallelNTXent computes NTXent with the similarity matrix and the
// per-row reductions distributed over the pool. Results and errors are
// identical to NTXent, bit for bit: both paths run the same kernels in
// the same per-row order. Falls back to the sequential path when pool is
// nil, closed, or the batch is too small to benefit.
func ParallelNTXent[T embedding.Floats](pool *workerpool.Pool, batch [][]T, temperature T) (T, error) {
	rows, err := ParallelNTXentRows(pool, batch, temperature)
	if err != nil {
		return 0, err
	}
	return meanRows(rows), nil
}

// ParallelNTXentRows computes the per-row NTXent losses over the pool.
// See NTXentRows.
func ParallelNTXentRows[T embedding.Floats](pool *workerpool.Pool, batch [][]T, temperature T) ([]T, error) {
	return ntxentCompute(pool, batch, temperature)
}

// ParallelNTBXent computes NTBXent over the pool, with the same
// bit-for-bit agreement and fallbacks as ParallelNTXent.
func ParallelNTBXent[T embedding.Floats](pool *workerpool.Pool, batch [][]T, pairs []Pair, temperature T) (T, error) {
	rows, err := ParallelNTBXentRows(pool, batch, pairs, temperature)
	if err != nil {
		return 0, err
	}
	return meanRows(rows), nil
}

// ParallelNTBXentRows computes the per-row NTBXent losses over the pool.
// See NTBXentRows.
func ParallelNTBXentRows[T embedding.Floats](pool *workerpool.Pool, batch [][]T, pairs []Pair, temperature T) ([]T, error) {
	return ntbxentCompute(pool, batch, pairs, temperature)
}
