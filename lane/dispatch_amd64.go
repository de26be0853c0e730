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

//go:build amd64

package lane

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setLevel(LevelScalar)
		return
	}
	setLevel(detectX86())
}

// detectX86 picks the widest level the CPU supports. AVX-512 is only used
// when the byte/word extension is present since the pixel kernels work on
// uint8 lanes.
func detectX86() Level {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		return LevelAVX512
	case cpu.X86.HasAVX2:
		return LevelAVX2
	default:
		// SSE2 is part of the amd64 baseline.
		return LevelSSE2
	}
}
