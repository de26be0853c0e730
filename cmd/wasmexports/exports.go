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
	"fmt"
	"go/ast"
	"go/types"
	"os"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

const exportDirective = "//go:wasmexport "

// Export describes one exported wasm function.
type Export struct {
	Name    string   `json:"name"`   // name visible to the host
	Func    string   `json:"func"`   // Go function name
	Params  []string `json:"params"` // Go parameter types, one per value
	Results []string `json:"results,omitempty"`
	File    string   `json:"file,omitempty"`
}

// LoadExports loads the packages matching pattern for wasip1/wasm and
// returns their exports sorted by name.
func LoadExports(pattern string) ([]Export, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Env:  append(os.Environ(), "GOOS=wasip1", "GOARCH=wasm"),
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", pattern, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("load %s: package has errors", pattern)
	}

	var exports []Export
	for _, pkg := range pkgs {
		for i, file := range pkg.Syntax {
			name := ""
			if i < len(pkg.CompiledGoFiles) {
				name = pkg.CompiledGoFiles[i]
			}
			exports = append(exports, CollectExports(file, name)...)
		}
	}
	slices.SortFunc(exports, func(a, b Export) int { return strings.Compare(a.Name, b.Name) })
	return exports, nil
}

// CollectExports returns the exports declared in file.
func CollectExports(file *ast.File, filename string) []Export {
	var exports []Export
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Doc == nil || fn.Recv != nil {
			continue
		}
		name, ok := directiveName(fn.Doc)
		if !ok {
			continue
		}
		exports = append(exports, Export{
			Name:    name,
			Func:    fn.Name.Name,
			Params:  fieldTypes(fn.Type.Params),
			Results: fieldTypes(fn.Type.Results),
			File:    filename,
		})
	}
	return exports
}

// directiveName returns the name of a //go:wasmexport line in doc.
// A directive without a name is malformed and ignored.
func directiveName(doc *ast.CommentGroup) (string, bool) {
	for _, c := range doc.List {
		if name, ok := strings.CutPrefix(c.Text, exportDirective); ok {
			if name = strings.TrimSpace(name); name != "" {
				return name, true
			}
		}
	}
	return "", false
}

// fieldTypes expands "a, b int32" into one entry per value.
func fieldTypes(fl *ast.FieldList) []string {
	if fl == nil {
		return nil
	}
	var out []string
	for _, f := range fl.List {
		typ := types.ExprString(f.Type)
		n := max(len(f.Names), 1)
		for range n {
			out = append(out, typ)
		}
	}
	return out
}

// Missing returns the names in want that are not exported, in order.
func Missing(exports []Export, want []string) []string {
	var missing []string
	for _, name := range want {
		if !slices.ContainsFunc(exports, func(e Export) bool { return e.Name == name }) {
			missing = append(missing, name)
		}
	}
	return missing
}
