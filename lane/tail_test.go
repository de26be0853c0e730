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

import (
	"fmt"
	"testing"
)

func TestProcessWithTail(t *testing.T) {
	lanes := MaxLanes[uint8]()
	sizes := []int{0, 1, lanes - 1, lanes, lanes + 1, 3*lanes + 5}

	for _, size := range sizes {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			seen := make([]int, size)
			var fullCalls, tailCalls int
			ProcessWithTail[uint8](size,
				func(offset int) {
					fullCalls++
					for i := offset; i < offset+lanes; i++ {
						seen[i]++
					}
				},
				func(offset, count int) {
					tailCalls++
					if count <= 0 || count >= lanes {
						t.Errorf("tail count = %d, want in (0, %d)", count, lanes)
					}
					for i := offset; i < offset+count; i++ {
						seen[i]++
					}
				},
			)
			if fullCalls != size/lanes {
				t.Errorf("full blocks = %d, want %d", fullCalls, size/lanes)
			}
			wantTail := 0
			if size%lanes != 0 {
				wantTail = 1
			}
			if tailCalls != wantTail {
				t.Errorf("tail calls = %d, want %d", tailCalls, wantTail)
			}
			for i, n := range seen {
				if n != 1 {
					t.Errorf("element %d visited %d times", i, n)
				}
			}
		})
	}
}

func TestAlignedSize(t *testing.T) {
	lanes := MaxLanes[int32]()
	tests := []struct {
		size int
		want int
	}{
		{0, 0},
		{1, lanes},
		{lanes, lanes},
		{lanes + 1, 2 * lanes},
	}
	for _, tt := range tests {
		if got := AlignedSize[int32](tt.size); got != tt.want {
			t.Errorf("AlignedSize(%d) = %d, want %d", tt.size, got, tt.want)
		}
		if got := IsAligned[int32](tt.size); got != (tt.size%lanes == 0) {
			t.Errorf("IsAligned(%d) = %v", tt.size, got)
		}
	}
}
