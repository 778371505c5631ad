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

package loss

import "github.com/pkg/errors"

// Pair identifies an ordered positive pair: row I treats column J as a
// positive example. Pairs are not symmetrized; list both directions when
// two rows should each treat the other as positive.
type Pair struct {
	I, J int
}

// AdjacentPairTargets returns the positive partner of each row under the
// interleaved two-view convention: views (2k, 2k+1) are augmentations of
// the same example, so target[i] is i+1 for even i and i-1 for odd i.
//
// Fails with ErrInvalidInput unless n is a positive even number.
func AdjacentPairTargets(n int) ([]int, error) {
	if n <= 0 || n%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "batch size %d is not a positive even number", n)
	}
	return adjacentTargets(n), nil
}

// adjacentTargets is AdjacentPairTargets without the validation, for
// callers that have already checked n.
func adjacentTargets(n int) []int {
	targets := make([]int, n)
	for i := 0; i < n; i += 2 {
		targets[i] = i + 1
		targets[i+1] = i
	}
	return targets
}

// TargetMatrix builds the dense flat [n, n] indicator of positive pairs:
// entry i*n+j is true when (i, j) is a positive pair. The diagonal is
// always true regardless of the supplied pairs, duplicates collapse, and
// no symmetrization happens: (i, j) in pairs does not imply (j, i).
//
// Fails with ErrInvalidInput when n < 1 or any pair index falls outside
// [0, n).
func TargetMatrix(pairs []Pair, n int) ([]bool, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "matrix size %d, need at least 1", n)
	}

	t := make([]bool, n*n)
	for _, p := range pairs {
		if p.I < 0 || p.I >= n || p.J < 0 || p.J >= n {
			return nil, errors.Wrapf(ErrInvalidInput, "pair (%d, %d) outside batch of %d", p.I, p.J, n)
		}
		t[p.I*n+p.J] = true
	}
	for i := 0; i < n; i++ {
		t[i*n+i] = true
	}
	return t, nil
}

// positiveCounts returns the number of true entries in each row of a flat
// [n, n] indicator matrix.
func positiveCounts(targets []bool, n int) []int {
	counts := make([]int, n)
	for i := 0; i < n; i++ {
		c := 0
		for _, v := range targets[i*n : (i+1)*n] {
			if v {
				c++
			}
		}
		counts[i] = c
	}
	return counts
}
