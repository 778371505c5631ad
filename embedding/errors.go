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

import "github.com/pkg/errors"

// ErrInvalidInput reports a malformed batch or label structure: an empty
// batch, ragged vector dimensions, a batch size a loss cannot accept, or
// pair indices outside the batch. Returned errors wrap this sentinel with
// the offending values; test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
