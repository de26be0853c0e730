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

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		width int
	}{
		{LevelScalar, "scalar", 16},
		{LevelSSE2, "sse2", 16},
		{LevelAVX2, "avx2", 32},
		{LevelAVX512, "avx512", 64},
		{LevelNEON, "neon", 16},
		{Level(99), "unknown", 16},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.level.Width(); got != tt.width {
				t.Errorf("Width() = %d, want %d", got, tt.width)
			}
		})
	}
}

func TestCurrentLevel(t *testing.T) {
	if CurrentWidth() != CurrentLevel().Width() {
		t.Errorf("CurrentWidth() = %d, want %d for %s", CurrentWidth(), CurrentLevel().Width(), CurrentName())
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), CurrentLevel().String())
	}
	t.Logf("lane level: %s (%d bytes)", CurrentName(), CurrentWidth())
}

func TestMaxLanes(t *testing.T) {
	w := CurrentWidth()
	if got := MaxLanes[uint8](); got != w {
		t.Errorf("MaxLanes[uint8]() = %d, want %d", got, w)
	}
	if got := MaxLanes[int32](); got != w/4 {
		t.Errorf("MaxLanes[int32]() = %d, want %d", got, w/4)
	}
	if got := MaxLanes[float64](); got != w/8 {
		t.Errorf("MaxLanes[float64]() = %d, want %d", got, w/8)
	}
	// Pixel kernels rely on whole RGBA pixels per uint8 block.
	if MaxLanes[uint8]()%4 != 0 {
		t.Errorf("MaxLanes[uint8]() = %d is not a multiple of 4", MaxLanes[uint8]())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv(noSimdEnvVar, tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	orig := CurrentLevel()
	t.Cleanup(func() { setLevel(orig) })

	setLevel(LevelAVX2)
	if CurrentWidth() != 32 || MaxLanes[int32]() != 8 {
		t.Errorf("after setLevel(avx2): width %d, int32 lanes %d", CurrentWidth(), MaxLanes[int32]())
	}
	setLevel(LevelScalar)
	if CurrentWidth() != 16 || MaxLanes[uint8]() != 16 {
		t.Errorf("after setLevel(scalar): width %d, uint8 lanes %d", CurrentWidth(), MaxLanes[uint8]())
	}
}
