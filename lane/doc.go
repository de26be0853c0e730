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

// Package lane provides a small portable vector API for pixel kernels.
//
// A Vec[T] holds up to MaxLanes[T]() elements, where the lane count follows
// the SIMD register width detected for the running CPU (16 bytes for SSE2,
// NEON and every architecture without detection, 32 bytes for AVX2, 64 bytes
// for AVX-512). The operations are written in plain Go so the same kernel
// runs unchanged on wasm; the width only decides how many elements a kernel
// handles per step.
//
// # Processing Loops
//
// Kernels walk a slice in full vectors and finish with a partial one:
//
//	lane.ProcessWithTail[uint8](len(px),
//	    func(offset int) {
//	        v := lane.Load(px[offset:])
//	        lane.Store(lane.SaturatedAdd(v, delta), px[offset:])
//	    },
//	    func(offset, count int) {
//	        v := lane.Load(px[offset : offset+count])
//	        lane.Store(lane.SaturatedAdd(v, delta), px[offset:offset+count])
//	    },
//	)
//
// # Environment
//
// Setting PIXFX_NO_SIMD to a true value forces the 16-byte scalar width
// regardless of the CPU, which is useful to reproduce wasm block sizes on a
// development machine.
package lane
