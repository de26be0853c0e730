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

// Command wasmexports lists the //go:wasmexport functions of a package.
//
// The package is loaded for GOOS=wasip1 GOARCH=wasm so files restricted to
// that target are included. The manifest is printed as JSON; with -require,
// the command fails when any of the named exports is missing.
//
//	wasmexports -pkg ./cmd/pixfx-wasm -require apply_grayscale,apply_brightness
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	pkgPattern = flag.String("pkg", "./cmd/pixfx-wasm", "Package pattern to inspect")
	require    = flag.String("require", "", "Comma-separated export names that must be present")
	quiet      = flag.Bool("q", false, "Do not print the manifest")
)

func main() {
	flag.Parse()

	exports, err := LoadExports(*pkgPattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if missing := Missing(exports, parseNames(*require)); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "Error: missing exports: %s\n", strings.Join(missing, ", "))
		os.Exit(1)
	}

	if *quiet {
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(exports); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseNames(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
