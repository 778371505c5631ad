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

import (
	"errors"
	"fmt"
	"testing"
)

func TestAdjacentPairTargets(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{2, []int{1, 0}},
		{4, []int{1, 0, 3, 2}},
		{8, []int{1, 0, 3, 2, 5, 4, 7, 6}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			got, err := AdjacentPairTargets(tt.n)
			if err != nil {
				t.Fatalf("AdjacentPairTargets(%d) error: %v", tt.n, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("AdjacentPairTargets(%d) = %v, want %v", tt.n, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("target[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAdjacentPairTargetsErrors(t *testing.T) {
	for _, n := range []int{-4, -1, 0, 1, 3, 7} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			_, err := AdjacentPairTargets(n)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("AdjacentPairTargets(%d) error = %v, want ErrInvalidInput", n, err)
			}
		})
	}
}

func TestTargetMatrix(t *testing.T) {
	got, err := TargetMatrix([]Pair{{0, 2}, {2, 1}}, 3)
	if err != nil {
		t.Fatalf("TargetMatrix() error: %v", err)
	}
	want := []bool{
		true, false, true,
		false, true, false,
		false, true, true,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("targets[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestTargetMatrixNotSymmetrized pins the directional contract: a single
// (i, j) pair must not mark (j, i).
func TestTargetMatrixNotSymmetrized(t *testing.T) {
	got, err := TargetMatrix([]Pair{{0, 3}}, 4)
	if err != nil {
		t.Fatalf("TargetMatrix() error: %v", err)
	}
	if !got[0*4+3] {
		t.Errorf("targets[0][3] = false, want true")
	}
	if got[3*4+0] {
		t.Errorf("targets[3][0] = true, want false")
	}
}

func TestTargetMatrixDiagonalForced(t *testing.T) {
	got, err := TargetMatrix(nil, 4)
	if err != nil {
		t.Fatalf("TargetMatrix() error: %v", err)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if got[i*4+j] != (i == j) {
				t.Errorf("targets[%d][%d] = %v, want %v", i, j, got[i*4+j], i == j)
			}
		}
	}
}

func TestTargetMatrixDuplicatesCollapse(t *testing.T) {
	base, err := TargetMatrix([]Pair{{1, 2}}, 4)
	if err != nil {
		t.Fatalf("TargetMatrix() error: %v", err)
	}
	dup, err := TargetMatrix([]Pair{{1, 2}, {1, 2}, {2, 2}}, 4)
	if err != nil {
		t.Fatalf("TargetMatrix() error: %v", err)
	}
	for i := range base {
		if base[i] != dup[i] {
			t.Errorf("targets[%d] = %v with duplicates, want %v", i, dup[i], base[i])
		}
	}
}

func TestTargetMatrixErrors(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Pair
		n     int
	}{
		{"zero size", nil, 0},
		{"negative size", nil, -2},
		{"row out of range", []Pair{{4, 0}}, 4},
		{"column out of range", []Pair{{0, 4}}, 4},
		{"negative row", []Pair{{-1, 0}}, 4},
		{"negative column", []Pair{{0, -1}}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TargetMatrix(tt.pairs, tt.n)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("TargetMatrix() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestPositiveCounts(t *testing.T) {
	targets, err := TargetMatrix([]Pair{{0, 1}, {0, 2}, {2, 0}}, 3)
	if err != nil {
		t.Fatalf("TargetMatrix() error: %v", err)
	}
	want := []int{3, 1, 2}
	got := positiveCounts(targets, 3)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("counts[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
