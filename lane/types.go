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

package lane

// Floats is the constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is the constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is the constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is the constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is the constraint for every element type a Vec can hold.
type Lanes interface {
	Floats | Integers
}

// Vec is a vector of up to MaxLanes[T]() elements.
// A Vec loaded from a short slice has fewer lanes; binary operations
// produce as many lanes as their shortest operand.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of populated lanes.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lane values. The slice aliases the vector.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector to dst, stopping at the end of dst.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
