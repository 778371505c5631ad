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

import "testing"

func TestNormalize(t *testing.T) {
	v := []float32{3, 0, 4}
	Normalize(v)

	want := []float32{0.6, 0, 0.8}
	for i := range v {
		if !approxEqual32(v[i], want[i], epsilon32) {
			t.Errorf("v[%d] = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestNormalizeUnitResult(t *testing.T) {
	rng := testRNG()
	for _, size := range []int{1, 5, 64, 333} {
		v := randVector32(rng, size)
		Normalize(v)
		if got := Norm(v); !approxEqual32(got, 1, epsilon32) {
			t.Errorf("size %d: Norm after Normalize = %v, want 1", size, got)
		}
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	v := []float32{0, 0, 0}
	Normalize(v)

	for i := range v {
		if v[i] != 0 {
			t.Errorf("zero vector changed at %d: %v", i, v[i])
		}
	}
}

func TestNormalizeEmpty(t *testing.T) {
	Normalize([]float32{}) // must not panic
}

func TestNormalizeFloat64(t *testing.T) {
	v := []float64{0, -5, 0, 0}
	Normalize(v)

	want := []float64{0, -1, 0, 0}
	for i := range v {
		if !approxEqual64(v[i], want[i], epsilon64) {
			t.Errorf("v[%d] = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestNormalizeBatch(t *testing.T) {
	batch := [][]float32{
		{3, 4},
		{0, 0},
		{-2, 0},
	}
	NormalizeBatch(batch)

	if got := Norm(batch[0]); !approxEqual32(got, 1, epsilon32) {
		t.Errorf("Norm(batch[0]) = %v, want 1", got)
	}
	if batch[1][0] != 0 || batch[1][1] != 0 {
		t.Errorf("zero vector changed: %v", batch[1])
	}
	if got := Norm(batch[2]); !approxEqual32(got, 1, epsilon32) {
		t.Errorf("Norm(batch[2]) = %v, want 1", got)
	}
}
