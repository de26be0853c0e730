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

import "github.com/wasmpix/pixfx/lane"

// Brightness adds delta to R, G and B of every pixel, clamping each result
// to [0, 255]. Alpha is unchanged. Any int is accepted; offsets beyond ±255
// behave like ±255.
//
// Clamping is not reversible: 250 brightened by 20 becomes 255, and
// darkening that by 20 gives 235.
func Brightness(buf Buffer, delta int) {
	px := buf.data
	if len(px) == 0 || delta == 0 {
		return
	}

	delta = max(-maxDelta, min(maxDelta, delta))
	op := lane.SaturatedAdd[uint8]
	if delta < 0 {
		op = lane.SaturatedSub[uint8]
		delta = -delta
	}

	// Block offsets are multiples of the lane count, itself a multiple of
	// Channels, so lane i of every block is channel i%Channels.
	pattern := make([]uint8, lane.MaxLanes[uint8]())
	for i := range pattern {
		if i%Channels != Channels-1 {
			pattern[i] = uint8(delta)
		}
	}
	step := lane.Load(pattern)

	lane.ProcessWithTail[uint8](len(px),
		func(offset int) {
			lane.Store(op(lane.Load(px[offset:]), step), px[offset:])
		},
		func(offset, count int) {
			block := px[offset : offset+count]
			lane.Store(op(lane.Load(block), step), block)
		},
	)
}
