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

// Package abi manages the linear-memory blocks a WebAssembly host fills
// with pixel data.
//
// Go's collector must not reclaim memory the host is still writing, and a
// raw pointer from the host carries no length. An Arena keeps every block
// it hands out reachable and resolves a pointer/length pair back to a slice
// only when the whole range lies inside one live block.
package abi

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrInvalidSize is returned by Alloc for a size that is not positive.
	ErrInvalidSize = errors.New("allocation size must be positive")

	// ErrNilPointer is returned for a null pointer with a non-zero length.
	ErrNilPointer = errors.New("nil pointer")

	// ErrUnknownRegion is returned for a pointer outside every live block.
	ErrUnknownRegion = errors.New("pointer does not address a live block")

	// ErrOutOfBounds is returned when a range runs past the end of its block.
	ErrOutOfBounds = errors.New("range exceeds block")

	// ErrNegativeLength is returned for a length below zero.
	ErrNegativeLength = errors.New("negative length")
)

// Arena tracks blocks handed to the host. It is not safe for concurrent use;
// a wasm module runs on a single thread.
type Arena struct {
	blocks map[uintptr][]byte
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{blocks: make(map[uintptr][]byte)}
}

// Alloc returns a pointer to size zeroed bytes that stay valid until Free.
func (a *Arena) Alloc(size int32) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	block := make([]byte, size)
	ptr := unsafe.Pointer(unsafe.SliceData(block))
	a.blocks[uintptr(ptr)] = block
	return ptr, nil
}

// Free releases the block that starts at ptr. Freeing nil is a no-op.
func (a *Arena) Free(ptr unsafe.Pointer) error {
	if ptr == nil {
		return nil
	}
	if _, ok := a.blocks[uintptr(ptr)]; !ok {
		return fmt.Errorf("free %#x: %w", uintptr(ptr), ErrUnknownRegion)
	}
	delete(a.blocks, uintptr(ptr))
	return nil
}

// Live returns the number of blocks not yet freed.
func (a *Arena) Live() int {
	return len(a.blocks)
}

// Region returns the n bytes starting at ptr. The range must lie inside a
// single live block; a zero length always yields an empty slice.
func (a *Arena) Region(ptr unsafe.Pointer, n int32) ([]byte, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	case n == 0:
		return []byte{}, nil
	case ptr == nil:
		return nil, ErrNilPointer
	}

	addr := uintptr(ptr)
	for base, block := range a.blocks {
		if addr < base || addr >= base+uintptr(len(block)) {
			continue
		}
		off := int(addr - base)
		if int(n) > len(block)-off {
			return nil, fmt.Errorf("%w: %d bytes at offset %d of %d", ErrOutOfBounds, n, off, len(block))
		}
		return block[off : off+int(n) : off+int(n)], nil
	}
	return nil, fmt.Errorf("%#x: %w", addr, ErrUnknownRegion)
}
