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
	"os"
	"strconv"
	"unsafe"
)

// Level identifies the instruction set the lane width was derived from.
type Level int

const (
	// LevelScalar means no SIMD detection; blocks are 16 bytes wide.
	LevelScalar Level = iota

	// LevelSSE2 is the x86-64 baseline (128-bit).
	LevelSSE2

	// LevelAVX2 is 256-bit x86.
	LevelAVX2

	// LevelAVX512 is 512-bit x86 with byte/word support.
	LevelAVX512

	// LevelNEON is 128-bit ARM Advanced SIMD.
	LevelNEON
)

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level.
func (l Level) Width() int {
	switch l {
	case LevelAVX2:
		return 32
	case LevelAVX512:
		return 64
	default:
		return 16
	}
}

// noSimdEnvVar disables CPU detection when set to a true value.
const noSimdEnvVar = "PIXFX_NO_SIMD"

// Set by init() in dispatch_*.go files.
var (
	currentLevel Level
	currentWidth int
)

// CurrentLevel returns the level selected at start-up.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the block width in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current level.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv reports whether PIXFX_NO_SIMD asks for the scalar width.
// Any non-empty value that does not parse as a boolean counts as true.
func NoSimdEnv() bool {
	val := os.Getenv(noSimdEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns how many elements of type T fit in the current width.
//
// With AVX2 (32 bytes):
//   - uint8: 32 lanes
//   - int32: 8 lanes
//   - float64: 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	if size == 0 {
		return 0
	}
	return currentWidth / size
}

func setLevel(l Level) {
	currentLevel = l
	currentWidth = l.Width()
}
