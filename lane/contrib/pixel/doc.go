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

// Package pixel implements in-place filters over interleaved RGBA buffers.
//
// A Buffer is a checked view over caller-owned bytes where every pixel
// occupies four consecutive elements: red, green, blue and alpha. Filters
// mutate the buffer in place, never touch the alpha channel and keep no
// reference to the buffer once they return.
//
// # Filters
//
//	Grayscale(buf)            // R = G = B = trunc(0.299R + 0.587G + 0.114B)
//	Brightness(buf, delta)    // c = clamp(c + delta, 0, 255)
//	Contrast(buf, amount)     // c = f(amount)*(c - 128) + 128, rounded
//	Sepia(buf, amount)        // sepia blend, amount in [0, 1]
//	Adjust(buf, adjustments)  // the four above in one pass
//
// Grayscale and Brightness are exact integer transforms. Contrast, Sepia and
// Adjust compute in float64, clamp to [0, 255] and round half to even, the
// way a clamped byte array stores a float.
//
// # Lengths
//
// The Apply* functions take a slice and an element count the way a host
// boundary passes them. A count that is negative, larger than the slice or
// not a multiple of four is rejected with a *PreconditionError before any
// byte is touched; a trailing partial pixel is never processed silently.
//
// # Usage Example
//
//	px := []uint8{10, 20, 30, 255}
//	if err := pixel.ApplyGrayscale(px, len(px)); err != nil {
//	    return err
//	}
//	// px == []uint8{18, 18, 18, 255}
package pixel
