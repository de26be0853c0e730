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

package pixel_test

import (
	"fmt"

	"github.com/wasmpix/pixfx/lane/contrib/pixel"
)

func ExampleGrayscale() {
	px := []uint8{10, 20, 30, 255}
	pixel.Grayscale(pixel.MustBuffer(px))
	fmt.Println(px)
	// Output: [18 18 18 255]
}

func ExampleBrightness() {
	px := []uint8{250, 250, 250, 10}
	buf := pixel.MustBuffer(px)

	pixel.Brightness(buf, 20)
	fmt.Println(px)
	pixel.Brightness(buf, -20)
	fmt.Println(px)
	// Output:
	// [255 255 255 10]
	// [235 235 235 10]
}

func ExampleApplyGrayscale() {
	px := []uint8{10, 20, 30, 255, 1, 2}
	err := pixel.ApplyGrayscale(px, len(px))
	fmt.Println(err)
	// Output: pixel: grayscale(len=6): buffer length is not a multiple of 4: 6
}

func ExampleAdjust() {
	px := []uint8{60, 120, 180, 42}
	pixel.Adjust(pixel.MustBuffer(px), pixel.Adjustments{
		Brightness: 10,
		Contrast:   20,
		Sepia:      0.3,
		Grayscale:  0.5,
	})
	fmt.Println(px)
	// Output: [108 130 150 42]
}
