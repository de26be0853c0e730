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

// Adjustments are the slider values of a one-pass photo adjustment.
// The zero value leaves a buffer unchanged.
type Adjustments struct {
	// Brightness is added to every colour channel.
	Brightness int

	// Contrast in [-255, 255]; 0 is neutral, -255 flattens to mid grey.
	// Values outside the range are clamped.
	Contrast int

	// Sepia strength in [0, 1]. Values outside the range are clamped.
	Sepia float64

	// Grayscale blend strength in [0, 1]. Values outside the range are clamped.
	Grayscale float64
}

// normalized returns a with every field clamped to its range.
func (a Adjustments) normalized() Adjustments {
	a.Contrast = max(-contrastLimit, min(contrastLimit, a.Contrast))
	a.Sepia = max(0, min(1, a.Sepia))
	a.Grayscale = max(0, min(1, a.Grayscale))
	return a
}

// ContrastFactor returns the multiplier applied around mid grey for a
// contrast amount, clamped to [-255, 255]. ContrastFactor(0) is 1.
func ContrastFactor(amount int) float64 {
	c := max(-contrastLimit, min(contrastLimit, amount))
	return float64(259*(c+255)) / float64(255*(259-c))
}

// Contrast scales every colour channel away from or towards 128.
// Alpha is unchanged.
func Contrast(buf Buffer, amount int) {
	Adjust(buf, Adjustments{Contrast: amount})
}

// Sepia blends every pixel towards its sepia tone by amount in [0, 1].
// Alpha is unchanged.
func Sepia(buf Buffer, amount float64) {
	Adjust(buf, Adjustments{Sepia: amount})
}

// Adjust applies brightness, contrast, sepia and grayscale blending to every
// pixel in that order, then clamps to [0, 255] and rounds half to even.
// Intermediate values are not clamped between stages. Alpha is unchanged.
func Adjust(buf Buffer, adj Adjustments) {
	px := buf.data
	if len(px) == 0 || adj == (Adjustments{}) {
		return
	}

	k := newAdjustKernel(adj.normalized())
	lanes := lane.MaxLanes[float64]()
	lane.ProcessWithTail[float64](len(px)/Channels,
		func(offset int) {
			k.apply(px[offset*Channels : (offset+lanes)*Channels])
		},
		func(offset, count int) {
			k.apply(px[offset*Channels : (offset+count)*Channels])
		},
	)
}

type adjustKernel struct {
	adj Adjustments

	brightness     lane.Vec[float64]
	pivot, factor  lane.Vec[float64]
	sepia          [3][3]lane.Vec[float64]
	wr, wg, wb     lane.Vec[float64]
	keep, blend    lane.Vec[float64]
	zero, maxValue lane.Vec[float64]

	r, g, b []float64
}

func newAdjustKernel(adj Adjustments) *adjustKernel {
	lanes := lane.MaxLanes[float64]()
	k := &adjustKernel{
		adj:        adj,
		brightness: lane.Set(float64(adj.Brightness)),
		pivot:      lane.Set[float64](contrastPivot),
		factor:     lane.Set(ContrastFactor(adj.Contrast)),
		wr:         lane.Set(lumaR),
		wg:         lane.Set(lumaG),
		wb:         lane.Set(lumaB),
		keep:       lane.Set(1 - adj.Grayscale),
		blend:      lane.Set(adj.Grayscale),
		zero:       lane.Zero[float64](),
		maxValue:   lane.Set[float64](255),
		r:          make([]float64, lanes),
		g:          make([]float64, lanes),
		b:          make([]float64, lanes),
	}
	s := adj.Sepia
	for i, row := range sepiaMatrix {
		for j, c := range row {
			if i == j {
				k.sepia[i][j] = lane.Set(1 - float64(c*s))
			} else {
				k.sepia[i][j] = lane.Set(c * s)
			}
		}
	}
	return k
}

// apply adjusts the whole pixels in px, at most one block.
func (k *adjustKernel) apply(px []uint8) {
	n := len(px) / Channels
	rp, gp, bp := k.r[:n], k.g[:n], k.b[:n]
	for i := range n {
		p := px[i*Channels:]
		rp[i], gp[i], bp[i] = float64(p[0]), float64(p[1]), float64(p[2])
	}
	r, g, b := lane.Load(rp), lane.Load(gp), lane.Load(bp)

	if k.adj.Brightness != 0 {
		r = lane.Add(r, k.brightness)
		g = lane.Add(g, k.brightness)
		b = lane.Add(b, k.brightness)
	}

	if k.adj.Contrast != 0 {
		r = lane.MulAdd(k.factor, lane.Sub(r, k.pivot), k.pivot)
		g = lane.MulAdd(k.factor, lane.Sub(g, k.pivot), k.pivot)
		b = lane.MulAdd(k.factor, lane.Sub(b, k.pivot), k.pivot)
	}

	if k.adj.Sepia > 0 {
		m := &k.sepia
		sr := lane.Add(lane.Add(lane.Mul(r, m[0][0]), lane.Mul(g, m[0][1])), lane.Mul(b, m[0][2]))
		sg := lane.Add(lane.Add(lane.Mul(r, m[1][0]), lane.Mul(g, m[1][1])), lane.Mul(b, m[1][2]))
		sb := lane.Add(lane.Add(lane.Mul(r, m[2][0]), lane.Mul(g, m[2][1])), lane.Mul(b, m[2][2]))
		r, g, b = sr, sg, sb
	}

	if k.adj.Grayscale > 0 {
		avg := lane.Add(lane.Add(lane.Mul(k.wr, r), lane.Mul(k.wg, g)), lane.Mul(k.wb, b))
		mix := lane.Mul(avg, k.blend)
		r = lane.Add(lane.Mul(r, k.keep), mix)
		g = lane.Add(lane.Mul(g, k.keep), mix)
		b = lane.Add(lane.Mul(b, k.keep), mix)
	}

	lane.Store(lane.RoundToEven(lane.Clamp(r, k.zero, k.maxValue)), rp)
	lane.Store(lane.RoundToEven(lane.Clamp(g, k.zero, k.maxValue)), gp)
	lane.Store(lane.RoundToEven(lane.Clamp(b, k.zero, k.maxValue)), bp)
	for i := range n {
		p := px[i*Channels:]
		p[0], p[1], p[2] = uint8(rp[i]), uint8(gp[i]), uint8(bp[i])
	}
}
