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

// Saturated operations clamp to the type's range instead of wrapping.
// Pixel channels are unsigned, so only unsigned lanes are provided.

// SaturatedAdd performs element-wise addition clamped to the type maximum.
// For uint8: 250 + 10 = 255 (not 4).
func SaturatedAdd[T UnsignedInts](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		sum := a.data[i] + b.data[i]
		if sum < a.data[i] {
			sum = ^T(0)
		}
		result[i] = sum
	}
	return Vec[T]{data: result}
}

// SaturatedSub performs element-wise subtraction clamped to zero.
// For uint8: 10 - 20 = 0 (not 246).
func SaturatedSub[T UnsignedInts](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if b.data[i] < a.data[i] {
			result[i] = a.data[i] - b.data[i]
		}
	}
	return Vec[T]{data: result}
}
