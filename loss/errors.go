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
	"github.com/dhruvbird/ml-notebooks/embedding"
	"github.com/pkg/errors"
)

// ErrInvalidArgument reports a parameter outside its domain, such as a
// non-positive temperature. Returned errors wrap this sentinel with the
// offending value; test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidInput is embedding.ErrInvalidInput, re-exported so callers
// can match batch and label shape errors without importing the embedding
// package. It covers empty or ragged batches, batch sizes a loss cannot
// accept, out-of-range pair indices, and rows left without negatives.
var ErrInvalidInput = embedding.ErrInvalidInput

// checkTemperature rejects temperatures outside (0, +Inf).
func checkTemperature[T embedding.Floats](temperature T) error {
	if temperature <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "temperature %v is not positive", temperature)
	}
	return nil
}
