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

// Luma weights in per mille: 0.299, 0.587, 0.114. They sum to lumaScale, so
// a pixel with R = G = B = v has luma v exactly.
const (
	lumaWeightR = 299
	lumaWeightG = 587
	lumaWeightB = 114
	lumaScale   = 1000
)

// Float luma weights used by the blended grayscale of Adjust.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Sepia blend coefficients. Row i gives the contribution of R, G, B to
// output channel i at full strength; the diagonal is stored as the amount
// removed from the identity.
var sepiaMatrix = [3][3]float64{
	{0.607, 0.769, 0.189},
	{0.349, 0.314, 0.168},
	{0.272, 0.534, 0.869},
}

// Contrast amounts are limited so the factor denominator stays positive.
const (
	contrastLimit = 255
	contrastPivot = 128
)

// maxDelta is the largest brightness offset that can change a channel.
const maxDelta = 255
