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

import (
	"fmt"
	"math/rand/v2"
)

// Pixel counts covering empty, partial-block, aligned and multi-block buffers
// for every lane width.
var testPixelCounts = []int{0, 1, 3, 4, 5, 8, 15, 16, 17, 33, 100, 1024}

func countName(n int) string {
	return fmt.Sprintf("%dpx", n)
}

// randomPixels returns n pixels of deterministic noise.
func randomPixels(n int, seed uint64) []uint8 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	px := make([]uint8, n*Channels)
	for i := range px {
		px[i] = uint8(rng.UintN(256))
	}
	return px
}

func alphas(px []uint8) []uint8 {
	out := make([]uint8, 0, len(px)/Channels)
	for i := Channels - 1; i < len(px); i += Channels {
		out = append(out, px[i])
	}
	return out
}

func clone(px []uint8) []uint8 {
	return append([]uint8(nil), px...)
}
