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

package main

import (
	"unsafe"

	"github.com/wasmpix/pixfx/internal/abi"
	"github.com/wasmpix/pixfx/lane/contrib/pixel"
)

var arena = abi.NewArena()

// pixels resolves a host pointer/length pair to a buffer. A bad pair is a
// caller contract violation: it is logged and raised as a panic, which the
// runtime turns into a trap.
func pixels(op string, ptr unsafe.Pointer, n int32) pixel.Buffer {
	region, err := arena.Region(ptr, n)
	if err == nil {
		var buf pixel.Buffer
		if buf, err = pixel.NewBuffer(region); err == nil {
			return buf
		}
	}
	err = pixel.Reject(op, int(n), err)
	pixel.Logger().Error("pixfx: trapping call", "op", op, "err", err)
	panic(err)
}

func grayscale(ptr unsafe.Pointer, n int32) {
	pixel.Grayscale(pixels("grayscale", ptr, n))
}

func brightness(ptr unsafe.Pointer, n, delta int32) {
	pixel.Brightness(pixels("brightness", ptr, n), int(delta))
}

func contrast(ptr unsafe.Pointer, n, amount int32) {
	pixel.Contrast(pixels("contrast", ptr, n), int(amount))
}

func sepia(ptr unsafe.Pointer, n, percent int32) {
	pixel.Sepia(pixels("sepia", ptr, n), percentage(percent))
}

func adjust(ptr unsafe.Pointer, n, brightness, contrast, sepiaPercent, grayscalePercent int32) {
	pixel.Adjust(pixels("adjust", ptr, n), pixel.Adjustments{
		Brightness: int(brightness),
		Contrast:   int(contrast),
		Sepia:      percentage(sepiaPercent),
		Grayscale:  percentage(grayscalePercent),
	})
}

// percentage maps a 0-100 slider value to [0, 1].
func percentage(p int32) float64 {
	return float64(p) / 100
}

// allocate returns 0 rather than trapping so the host can report the failure.
func allocate(size int32) unsafe.Pointer {
	ptr, err := arena.Alloc(size)
	if err != nil {
		pixel.Logger().Warn("pixfx: alloc failed", "size", size, "err", err)
		return nil
	}
	return ptr
}

func release(ptr unsafe.Pointer) {
	if err := arena.Free(ptr); err != nil {
		pixel.Logger().Warn("pixfx: free failed", "err", err)
	}
}
