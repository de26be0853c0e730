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

package lane

import "testing"

func TestLoadStore(t *testing.T) {
	lanes := MaxLanes[int32]()
	src := make([]int32, lanes+3)
	for i := range src {
		src[i] = int32(i * 7)
	}

	v := Load(src)
	if v.NumLanes() != lanes {
		t.Fatalf("NumLanes() = %d, want %d", v.NumLanes(), lanes)
	}
	dst := make([]int32, lanes)
	v.Store(dst)
	for i := range dst {
		if dst[i] != src[i] {
			t.Errorf("lane %d: got %d, want %d", i, dst[i], src[i])
		}
	}

	short := Load(src[:2])
	if short.NumLanes() != 2 {
		t.Errorf("short NumLanes() = %d, want 2", short.NumLanes())
	}

	// Store stops at the end of dst.
	small := make([]int32, 1)
	Store(v, small)
	if small[0] != src[0] {
		t.Errorf("Store into short slice: got %d, want %d", small[0], src[0])
	}
}

func TestSetZero(t *testing.T) {
	v := Set[uint8](42)
	if v.NumLanes() != MaxLanes[uint8]() {
		t.Fatalf("NumLanes() = %d, want %d", v.NumLanes(), MaxLanes[uint8]())
	}
	for i, x := range v.Data() {
		if x != 42 {
			t.Errorf("Set lane %d = %d, want 42", i, x)
		}
	}
	for i, x := range Zero[float32]().Data() {
		if x != 0 {
			t.Errorf("Zero lane %d = %v, want 0", i, x)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Load([]int32{10, -7, 300, 0})
	b := Load([]int32{3, 2, -100, 5})

	tests := []struct {
		name string
		got  Vec[int32]
		want []int32
	}{
		{"Add", Add(a, b), []int32{13, -5, 200, 5}},
		{"Sub", Sub(a, b), []int32{7, -9, 400, -5}},
		{"Mul", Mul(a, b), []int32{30, -14, -30000, 0}},
		{"Div", Div(a, b), []int32{3, -3, -3, 0}},
		{"MulAdd", MulAdd(a, b, a), []int32{40, -21, -29700, 0}},
		{"Min", Min(a, b), []int32{3, -7, -100, 0}},
		{"Max", Max(a, b), []int32{10, 2, 300, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.got.Data()
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("lane %d: got %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestShortestOperandWins(t *testing.T) {
	full := Set[int32](1)
	short := Load([]int32{5, 6})
	if got := Add(full, short).NumLanes(); got != 2 {
		t.Errorf("Add NumLanes() = %d, want 2", got)
	}
	if got := MulAdd(full, full, short).NumLanes(); got != 2 {
		t.Errorf("MulAdd NumLanes() = %d, want 2", got)
	}
}

func TestClamp(t *testing.T) {
	v := Load([]float64{-3.5, 0, 128.25, 255, 300})
	got := Clamp(v, Set(0.0), Set(255.0)).Data()
	want := []float64{0, 0, 128.25, 255, 255}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRoundToEven(t *testing.T) {
	v := Load([]float64{0.5, 1.5, 2.5, -0.5, 2.4999, 254.5})
	got := RoundToEven(v).Data()
	want := []float64{0, 2, 2, 0, 2, 254}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lane %d: RoundToEven(%v) = %v, want %v", i, v.Data()[i], got[i], want[i])
		}
	}
}

func TestMulAddRoundsProduct(t *testing.T) {
	// 0.1*3 rounds to 0.30000000000000004 before the add.
	got := MulAdd(Load([]float64{0.1}), Load([]float64{3}), Load([]float64{-0.3})).Data()[0]
	x, y := 0.1, 3.0
	want := float64(x*y) - 0.3
	if got != want {
		t.Errorf("MulAdd = %v, want %v", got, want)
	}
}
