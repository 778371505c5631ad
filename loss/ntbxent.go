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

// NTBXent computes the normalized temperature-scaled binary cross-entropy
// loss of a batch with caller-declared positive pairs. Each similarity
// entry becomes an independent binary prediction through a scaled
// sigmoid; a row's loss is its mean positive BCE plus its mean negative
// BCE, so sparse positives are not drowned out by the quadratic number
// of negatives. The batch loss is the mean over rows.
//
// Pairs are directional: (I, J) marks entry (I, J) positive but not
// (J, I); list both when the relation is symmetric. Every diagonal entry
// is forced positive, and its similarity is pinned to +Inf so the
// self-pair contributes exactly zero loss while still counting toward
// the row's positive total.
//
// The batch must hold at least two equal-length vectors and every row
// must keep at least one negative entry; anything else fails with
// ErrInvalidInput, as do pair indices outside the batch. A temperature
// <= 0 fails with ErrInvalidArgument.
func NTBXent[T embedding.Floats](batch [][]T, pairs []Pair, temperature T) (T, error) {
	rows, err := NTBXentRows(batch, pairs, temperature)
	if err != nil {
		return 0, err
	}
	return meanRows(rows), nil
}

// NTBXentRows computes the per-row NTBXent losses. NTBXent is their
// mean.
func NTBXentRows[T embedding.Floats](batch [][]T, pairs []Pair, temperature T) ([]T, error) {
	return ntbxentCompute[T](nil, batch, pairs, temperature)
}

// ntbxentCompute is the shared body of the sequential and parallel
// NTBXent forms, structured like ntxentCompute: validate, build the
// similarity matrix, pin the diagonal, then reduce rows through a single
// kernel that both paths share.
func ntbxentCompute[T embedding.Floats](pool *workerpool.Pool, batch [][]T, pairs []Pair, temperature T) ([]T, error) {
	if err := checkTemperature(temperature); err != nil {
		return nil, err
	}

	m, err := similarityFor(pool, batch)
	if err != nil {
		return nil, err
	}
	n := len(batch)
	if n < 2 {
		return nil, errors.Wrapf(ErrInvalidInput, "batch size %d, need at least 2", n)
	}

	targets, err := TargetMatrix(pairs, n)
	if err != nil {
		return nil, err
	}
	counts := positiveCounts(targets, n)
	for i, c := range counts {
		if c == n {
			return nil, errors.Wrapf(ErrInvalidInput, "row %d has no negative pairs", i)
		}
	}

	// sigmoid(+Inf) = 1 exactly, so the pinned self-pair costs
	// -log(1) = 0 while still raising the row's positive count.
	posInf := T(stdmath.Inf(1))
	for i := 0; i < n; i++ {
		m[i*n+i] = posInf
	}

	temp64 := float64(temperature)
	rows := make([]T, n)
	rowRange := func(start, end int) {
		for i := start; i < end; i++ {
			rows[i] = T(ntbxentRow(m[i*n:(i+1)*n], targets[i*n:(i+1)*n], counts[i], temp64))
		}
	}
	if pool == nil || n*n < MinParallelLossOps {
		rowRange(0, n)
	} else {
		pool.ParallelForAtomicBatched(n, LossRowBatch, rowRange)
	}
	return rows, nil
}

// ntbxentRow reduces one similarity row in float64. Positive entries
// contribute -log(sigmoid(l)), negative entries -log(1 - sigmoid(l))
// computed as -log(sigmoid(-l)); the forms are algebraically identical
// and the second stays accurate when sigmoid(l) approaches 1. Applying
// the sigmoid before the log keeps the pinned +Inf diagonal exact,
// where a fused logits formulation would produce Inf - Inf.
func ntbxentRow[T embedding.Floats](row []T, targets []bool, numPos int, temp64 float64) float64 {
	posSum, negSum := 0.0, 0.0
	for j, v := range row {
		l := float64(v) / temp64
		if targets[j] {
			posSum -= stdmath.Log(sigmoid(l))
		} else {
			negSum -= stdmath.Log(sigmoid(-l))
		}
	}
	numNeg := len(row) - numPos
	return posSum/float64(numPos) + negSum/float64(numNeg)
}

// sigmoid is the numerically stable logistic function: both branches
// only ever exponentiate non-positive values, so it saturates to exactly
// 0 and 1 at the infinities instead of overflowing.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + stdmath.Exp(-x))
	}
	e := stdmath.Exp(x)
	return e / (1 + e)
}
