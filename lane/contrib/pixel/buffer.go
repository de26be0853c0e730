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

import "fmt"

// Channels is the number of interleaved elements per pixel.
const Channels = 4

// Buffer is a length-checked view over interleaved RGBA bytes.
// The zero value is an empty buffer.
type Buffer struct {
	data []uint8
}

// NewBuffer returns a Buffer over all of data.
func NewBuffer(data []uint8) (Buffer, error) {
	return View(data, len(data))
}

// View returns a Buffer over the first n elements of data.
// n must be non-negative, at most len(data) and a multiple of 4.
func View(data []uint8, n int) (Buffer, error) {
	switch {
	case n < 0:
		return Buffer{}, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	case n > len(data):
		return Buffer{}, fmt.Errorf("%w: %d > %d", ErrOutOfBounds, n, len(data))
	case n%Channels != 0:
		return Buffer{}, fmt.Errorf("%w: %d", ErrPartialPixel, n)
	}
	return Buffer{data: data[:n:n]}, nil
}

// MustBuffer is like NewBuffer but panics on an invalid length.
func MustBuffer(data []uint8) Buffer {
	buf, err := NewBuffer(data)
	if err != nil {
		panic(err)
	}
	return buf
}

// Len returns the number of elements (4 × pixels).
func (b Buffer) Len() int {
	return len(b.data)
}

// Pixels returns the number of pixels.
func (b Buffer) Pixels() int {
	return len(b.data) / Channels
}

// Bytes returns the underlying elements. The slice aliases the caller's memory.
func (b Buffer) Bytes() []uint8 {
	return b.data
}

// At returns the channels of pixel i.
func (b Buffer) At(i int) (r, g, bl, a uint8) {
	p := b.data[i*Channels : i*Channels+Channels]
	return p[0], p[1], p[2], p[3]
}

// Set stores the channels of pixel i.
func (b Buffer) Set(i int, r, g, bl, a uint8) {
	p := b.data[i*Channels : i*Channels+Channels]
	p[0], p[1], p[2], p[3] = r, g, bl, a
}
