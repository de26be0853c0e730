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

//go:build wasip1

package main

import "unsafe"

//go:wasmexport apply_grayscale
func applyGrayscale(ptr unsafe.Pointer, n int32) {
	grayscale(ptr, n)
}

//go:wasmexport apply_brightness
func applyBrightness(ptr unsafe.Pointer, n, delta int32) {
	brightness(ptr, n, delta)
}

//go:wasmexport apply_contrast
func applyContrast(ptr unsafe.Pointer, n, amount int32) {
	contrast(ptr, n, amount)
}

//go:wasmexport apply_sepia
func applySepia(ptr unsafe.Pointer, n, percent int32) {
	sepia(ptr, n, percent)
}

//go:wasmexport apply_adjustments
func applyAdjustments(ptr unsafe.Pointer, n, brightness, contrast, sepiaPercent, grayscalePercent int32) {
	adjust(ptr, n, brightness, contrast, sepiaPercent, grayscalePercent)
}

//go:wasmexport alloc
func wasmAlloc(size int32) unsafe.Pointer {
	return allocate(size)
}

//go:wasmexport free
func wasmFree(ptr unsafe.Pointer) {
	release(ptr)
}
