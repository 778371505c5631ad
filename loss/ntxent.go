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
	stdmath "math"

	"github.com/pkg/errors"

	"github.com/dhruvbird/ml-notebooks/embedding"
	"github.com/dhruvbird/ml-notebooks/workerpool"
)

// NTXent computes the normalized temperature-scaled cross-entropy loss of
// an interleaved two-view batch: the mean over rows of the softmax
// cross-entropy between each row's scaled cosine similarities and its
// adjacent positive partner (row 2k pairs with row 2k+1).
//
// The batch must hold an even number of equal-length vectors, at least
// two; anything else fails with ErrInvalidInput. A temperature <= 0
// fails with ErrInvalidArgument. Smaller temperatures sharpen the
// softmax; temperatures in (0, 1] are typical.
func NTXent[T embedding.Floats](batch [][]T, temperature T) (T, error) {
	rows, err := NTXentRows(batch, temperature)
	if err != nil {
		return 0, err
	}
	return meanRows(rows), nil
}

// NTXentRows computes the per-row NTXent losses. NTXent is their mean;
// the individual rows are useful for hard-example mining and logging.
func NTXentRows[T embedding.Floats](batch [][]T, temperature T) ([]T, error) {
	return ntxentCompute[T](nil, batch, temperature)
}

// ntxentCompute is the shared body of the sequential and parallel NTXent
// forms. A nil pool runs every stage sequentially; otherwise the
// similarity matrix and the loss rows are distributed once they are
// large enough to pay for the dispatch. Both paths drive the same row
// kernel, so they agree bitwise.
func ntxentCompute[T embedding.Floats](pool *workerpool.Pool, batch [][]T, temperature T) ([]T, error) {
	if err := checkTemperature(temperature); err != nil {
		return nil, err
	}
	if n := len(batch); n%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "batch size %d is odd", n)
	}

	m, err := similarityFor(pool, batch)
	if err != nil {
		return nil, err
	}
	n := len(batch)

	// Pinning the diagonal to -Inf gives the self-pair exp(-Inf) = 0
	// softmax weight without branching inside the row kernel.
	negInf := T(stdmath.Inf(-1))
	for i := 0; i < n; i++ {
		m[i*n+i] = negInf
	}

	targets := adjacentTargets(n)
	temp64 := float64(temperature)
	rows := make([]T, n)
	rowRange := func(start, end int) {
		for i := start; i < end; i++ {
			rows[i] = T(ntxentRow(m[i*n:(i+1)*n], targets[i], temp64))
		}
	}
	if pool == nil || n*n < MinParallelLossOps {
		rowRange(0, n)
	} else {
		pool.ParallelForAtomicBatched(n, LossRowBatch, rowRange)
	}
	return rows, nil
}

// ntxentRow computes the softmax cross-entropy of one similarity row in
// float64: logsumexp of the scaled row minus the target logit. The
// diagonal entry was pinned to -Inf, so it never wins the max (an even
// batch always keeps a finite entry per row) and adds nothing to the
// exponential sum.
func ntxentRow[T embedding.Floats](row []T, target int, temp64 float64) float64 {
	maxLogit := stdmath.Inf(-1)
	for _, v := range row {
		if l := float64(v) / temp64; l > maxLogit {
			maxLogit = l
		}
	}

	sumExp := 0.0
	for _, v := range row {
		sumExp += stdmath.Exp(float64(v)/temp64 - maxLogit)
	}
	lse := maxLogit + stdmath.Log(sumExp)

	return lse - float64(row[target])/temp64
}

// meanRows averages per-row losses, accumulating in float64.
func meanRows[T embedding.Floats](rows []T) T {
	total := 0.0
	for _, r := range rows {
		total += float64(r)
	}
	return T(total / float64(len(rows)))
}
