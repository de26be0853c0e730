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

// ProcessWithTail walks size elements in blocks of MaxLanes[T]().
// fullFn is called with the offset of every complete block; tailFn is called
// once with the offset and length of the remaining partial block, if any.
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := MaxLanes[T]()

	full := size / lanes
	for i := range full {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(full*lanes, remaining)
	}
}

// AlignedSize rounds size up to a multiple of MaxLanes[T]().
func AlignedSize[T Lanes](size int) int {
	lanes := MaxLanes[T]()
	if lanes == 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned reports whether size is a multiple of MaxLanes[T]().
func IsAligned[T Lanes](size int) bool {
	lanes := MaxLanes[T]()
	if lanes == 0 {
		return true
	}
	return size%lanes == 0
}
