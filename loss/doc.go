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

// Package loss provides contrastive loss functions over batches of
// embedding vectors.
//
// Both losses operate on the pairwise cosine-similarity matrix of the
// batch, scaled by an inverse temperature:
//
//   - NTXent is the normalized temperature-scaled cross-entropy loss of
//     SimCLR (Chen et al., 2020). The batch interleaves two augmented
//     views, so row i has exactly one positive partner (i+1 for even i,
//     i-1 for odd i) and the loss is softmax cross-entropy of each row's
//     similarities against that partner.
//   - NTBXent generalizes to an arbitrary set of positive pairs per row.
//     Every entry is classified positive-or-negative by a sigmoid, and
//     binary cross-entropy terms are averaged separately over the
//     positives and the negatives of each row, so a row with 2 positives
//     and 100 negatives weighs both classes equally.
//
// Self-similarity never contributes to either loss. NTXent pins the
// diagonal to -Inf before the softmax, giving self-pairs zero weight.
// NTBXent pins it to +Inf: the sigmoid saturates to exactly 1 and the
// always-positive self-pair adds zero cross-entropy. The +Inf route
// requires applying the sigmoid before the cross-entropy rather than
// using a fused logits formulation, which is NaN on infinite logits.
//
// All reductions accumulate in float64 regardless of the element type,
// and softmax and sigmoid use max-subtraction and saturation so that
// extreme temperatures stay finite. Losses are pure functions: no state,
// no I/O, safe for any number of concurrent calls. Parallel* variants
// distribute row work over a workerpool.Pool and return bit-identical
// results to the sequential forms.
//
// Example:
//
//	// batch holds 2N embeddings: views (2k, 2k+1) are positive pairs.
//	l, err := loss.NTXent(batch, float32(0.5))
//	if err != nil {
//	    return err
//	}
package loss
