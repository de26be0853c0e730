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

// The Apply functions validate an (elements, count) pair the way it arrives
// from a host boundary, then run the filter on the first n elements.

// ApplyGrayscale runs Grayscale over the first n elements of data.
func ApplyGrayscale(data []uint8, n int) error {
	return apply("grayscale", data, n, Grayscale)
}

// ApplyBrightness runs Brightness over the first n elements of data.
func ApplyBrightness(data []uint8, n int, delta int) error {
	return apply("brightness", data, n, func(buf Buffer) { Brightness(buf, delta) })
}

// ApplyContrast runs Contrast over the first n elements of data.
func ApplyContrast(data []uint8, n int, amount int) error {
	return apply("contrast", data, n, func(buf Buffer) { Contrast(buf, amount) })
}

// ApplySepia runs Sepia over the first n elements of data.
func ApplySepia(data []uint8, n int, amount float64) error {
	return apply("sepia", data, n, func(buf Buffer) { Sepia(buf, amount) })
}

// ApplyAdjustments runs Adjust over the first n elements of data.
func ApplyAdjustments(data []uint8, n int, adj Adjustments) error {
	return apply("adjust", data, n, func(buf Buffer) { Adjust(buf, adj) })
}

func apply(op string, data []uint8, n int, fn func(Buffer)) error {
	buf, err := View(data, n)
	if err != nil {
		return Reject(op, n, err)
	}
	fn(buf)
	Logger().Debug("pixel: filter applied", "op", op, "pixels", buf.Pixels())
	return nil
}

// Reject wraps err in a *PreconditionError for op and logs it at warn level.
func Reject(op string, n int, err error) error {
	Logger().Warn("pixel: precondition violated", "op", op, "len", n, "err", err)
	return &PreconditionError{Op: op, Len: n, Err: err}
}
