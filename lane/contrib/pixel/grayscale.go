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

// Grayscale replaces R, G and B of every pixel with
//
//	trunc(0.299*R + 0.587*G + 0.114*B)
//
// computed from the pixel's original channels. Alpha is unchanged.
//
// The weights are applied in per-mille fixed point, which is the exact value
// of the formula truncated toward zero. The result never leaves [0, 255] and
// the filter is idempotent.
func Grayscale(buf Buffer) {
	px := buf.data
	if len(px) == 0 {
		return
	}

	lanes := lane.MaxLanes[int32]()
	k := &lumaKernel{
		wr:    lane.Set[int32](lumaWeightR),
		wg:    lane.Set[int32](lumaWeightG),
		wb:    lane.Set[int32](lumaWeightB),
		scale: lane.Set[int32](lumaScale),
		r:     make([]int32, lanes),
		g:     make([]int32, lanes),
		b:     make([]int32, lanes),
	}

	lane.ProcessWithTail[int32](len(px)/Channels,
		func(offset int) {
			k.apply(px[offset*Channels : (offset+lanes)*Channels])
		},
		func(offset, count int) {
			k.apply(px[offset*Channels : (offset+count)*Channels])
		},
	)
}

// lumaKernel holds the weight vectors and channel planes for one call.
type lumaKernel struct {
	wr, wg, wb, scale lane.Vec[int32]
	r, g, b           []int32
}

// apply converts the whole pixels in px, at most one block.
func (k *lumaKernel) apply(px []uint8) {
	n := len(px) / Channels
	r, g, b := k.r[:n], k.g[:n], k.b[:n]
	for i := range n {
		p := px[i*Channels:]
		r[i], g[i], b[i] = int32(p[0]), int32(p[1]), int32(p[2])
	}

	sum := lane.MulAdd(lane.Load(r), k.wr,
		lane.MulAdd(lane.Load(g), k.wg,
			lane.Mul(lane.Load(b), k.wb)))
	lane.Store(lane.Div(sum, k.scale), r)

	for i, y := range r {
		p := px[i*Channels:]
		p[0], p[1], p[2] = uint8(y), uint8(y), uint8(y)
	}
}
