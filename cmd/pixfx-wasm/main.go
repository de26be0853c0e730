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

// Command pixfx-wasm is a WebAssembly reactor exposing the pixel filters to
// a host such as a browser.
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o pixfx.wasm ./cmd/pixfx-wasm
//
// The host calls alloc to obtain a block in the module's memory, copies
// RGBA bytes into it, calls one of the apply_* exports with the block
// address and length, reads the bytes back and calls free. A length that is
// negative, not a multiple of 4 or outside the block traps the call; the
// buffer is left untouched.
//
// Environment:
//
//	PIXFX_LOG_LEVEL  debug|info|warn|error|off (default off), logs to stderr
//	PIXFX_NO_SIMD    force 16-byte blocks
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wasmpix/pixfx/lane"
	"github.com/wasmpix/pixfx/lane/contrib/pixel"
)

func init() {
	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pixfx: %v\n", err)
	}
	if cfg.LogEnabled {
		pixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	}
	pixel.Logger().Info("pixfx: module ready", "lanes", lane.CurrentName(), "width", lane.CurrentWidth())
}

// main is empty: a reactor module is driven entirely through its exports.
func main() {}
