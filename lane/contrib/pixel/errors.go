// Copyright 2025 pixfx Authors
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

package pixel

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeLength is returned for an element count below zero.
	ErrNegativeLength = errors.New("negative buffer length")

	// ErrPartialPixel is returned when the element count is not a multiple of 4.
	ErrPartialPixel = errors.New("buffer length is not a multiple of 4")

	// ErrOutOfBounds is returned when the element count exceeds the buffer.
	ErrOutOfBounds = errors.New("buffer length exceeds available memory")
)

// PreconditionError reports a filter call rejected before the buffer was
// touched.
type PreconditionError struct {
	Op  string // filter name, e.g. "grayscale"
	Len int    // element count passed by the caller
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("pixel: %s(len=%d): %v", e.Op, e.Len, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}
