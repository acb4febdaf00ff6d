// Copyright 2025 go-highway Authors
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

package wide

import (
	"math"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

// specials covers the bit patterns that tend to break vector code.
var specials = []float32{
	0,
	math.Float32frombits(0x80000000), // -0
	1, -1, 0.5, -2.5, 3, math.Pi,
	1 << 23, 1<<23 + 1,
	math.MaxFloat32, -math.MaxFloat32,
	math.Float32frombits(0x00800000), // smallest normal
	math.Float32frombits(0x00000001), // smallest denormal
	math.Float32frombits(0x807FFFFF), // largest negative denormal
	float32(math.Inf(1)), float32(math.Inf(-1)),
	math.Float32frombits(0x7FC00000),
	math.Float32frombits(0xFFC00001),
	math.Float32frombits(0x7FA00000), // signaling
}

// sameBits reports whether got and want are bit-identical, treating any two
// NaNs as equal.
func sameBits(got, want float32) bool {
	if got != got && want != want {
		return true
	}
	return math.Float32bits(got) == math.Float32bits(want)
}

// quads yields groups of four specials so every special visits every lane.
func quads() [][4]float32 {
	var out [][4]float32
	n := len(specials)
	for i := range n {
		out = append(out, [4]float32{specials[i], specials[(i+1)%n], specials[(i+5)%n], specials[(i+11)%n]})
	}
	return out
}

func TestLayout(t *testing.T) {
	if got := unsafe.Sizeof(F32x4{}); got != 16 {
		t.Errorf("Sizeof(F32x4): got %d, want 16", got)
	}
	if got := unsafe.Sizeof(Mask{}); got != 16 {
		t.Errorf("Sizeof(Mask): got %d, want 16", got)
	}
	// Go aligns values to at most 8 bytes; MakeAligned provides the
	// 16-byte boundary.
	for _, n := range []int{1, 4} {
		vs := MakeAligned(n)
		for i := range vs {
			if addr := uintptr(unsafe.Pointer(&vs[i])); addr%16 != 0 {
				t.Errorf("MakeAligned(%d)[%d]: address %#x is not 16-byte aligned", n, i, addr)
			}
		}
	}
}

func TestArrayRoundTripKeepsBits(t *testing.T) {
	for _, q := range quads() {
		got := FromArray(q).Array()
		for i := range q {
			if math.Float32bits(got[i]) != math.Float32bits(q[i]) {
				t.Errorf("FromArray(%v).Array(): lane %d: got %#08x, want %#08x",
					q, i, math.Float32bits(got[i]), math.Float32bits(q[i]))
			}
		}
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  F32x4
		want [4]float32
	}{
		{"New", New(1, 2, 3, 4), [4]float32{1, 2, 3, 4}},
		{"Splat", Splat(-2.5), [4]float32{-2.5, -2.5, -2.5, -2.5}},
		{"Zero", Zero(), [4]float32{}},
		{"zero value", F32x4{}, [4]float32{}},
		{"FromInt8s", FromInt8s([4]int8{-128, -1, 0, 127}), [4]float32{-128, -1, 0, 127}},
		{"FromUint8s", FromUint8s([4]uint8{0, 1, 128, 255}), [4]float32{0, 1, 128, 255}},
		{"FromInt16s", FromInt16s([4]int16{-32768, -7, 7, 32767}), [4]float32{-32768, -7, 7, 32767}},
		{"FromUint16s", FromUint16s([4]uint16{0, 9, 40000, 65535}), [4]float32{0, 9, 40000, 65535}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Array()); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestLanes(t *testing.T) {
	a, b, c, d := New(1, 2, 3, 4).Lanes()
	if a != 1 || b != 2 || c != 3 || d != 4 {
		t.Errorf("Lanes: got (%v, %v, %v, %v), want (1, 2, 3, 4)", a, b, c, d)
	}
}

func TestAsArrayAliases(t *testing.T) {
	v := New(1, 2, 3, 4)
	AsArray(&v)[2] = 30
	if got := v.Lane(2); got != 30 {
		t.Errorf("after AsArray write: lane 2: got %v, want 30", got)
	}
}

func TestLaneAccess(t *testing.T) {
	v := New(10, 20, 30, 40)
	for i := range NumLanes {
		if got, want := v.Lane(i), float32(10*(i+1)); got != want {
			t.Errorf("Lane(%d): got %v, want %v", i, got, want)
		}
	}

	v.SetLane(3, -1)
	if diff := cmp.Diff([4]float32{10, 20, 30, -1}, v.Array()); diff != "" {
		t.Errorf("SetLane mismatch (-want +got):\n%s", diff)
	}
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func TestLaneOutOfRangePanics(t *testing.T) {
	v := Splat(1)
	for _, i := range []int{-1, 4, 100} {
		mustPanic(t, "Lane", func() { _ = v.Lane(i) })
		mustPanic(t, "SetLane", func() { v.SetLane(i, 0) })
		mustPanic(t, "Mask.Lane", func() { _ = v.CmpEq(v).Lane(i) })
	}
}
