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

package vreg

import "math"

// Generic is the scalar register: four float32 lanes worked one at a time.
// Each lane operation is a single IEEE-754 binary32 operation, so results
// match the vector instructions bit-for-bit.
type Generic [4]float32

// BroadcastGeneric returns a Generic with every lane set to x.
func BroadcastGeneric(x float32) Generic {
	return Generic{x, x, x, x}
}

// LoadGeneric copies four lanes from src.
func LoadGeneric(src *[4]float32) Generic {
	return Generic(*src)
}

// Store copies the four lanes to dst.
func (g Generic) Store(dst *[4]float32) {
	*dst = [4]float32(g)
}

func (g Generic) Add(o Generic) Generic {
	return Generic{g[0] + o[0], g[1] + o[1], g[2] + o[2], g[3] + o[3]}
}

func (g Generic) Sub(o Generic) Generic {
	return Generic{g[0] - o[0], g[1] - o[1], g[2] - o[2], g[3] - o[3]}
}

func (g Generic) Mul(o Generic) Generic {
	return Generic{g[0] * o[0], g[1] * o[1], g[2] * o[2], g[3] * o[3]}
}

func (g Generic) Div(o Generic) Generic {
	return Generic{g[0] / o[0], g[1] / o[1], g[2] / o[2], g[3] / o[3]}
}

// Recip returns 1/x per lane, computed with a true division.
func (g Generic) Recip() Generic {
	return BroadcastGeneric(1).Div(g)
}

func (g Generic) And(o Generic) Generic {
	return g.bitwise(o, func(a, b uint32) uint32 { return a & b })
}

func (g Generic) Or(o Generic) Generic {
	return g.bitwise(o, func(a, b uint32) uint32 { return a | b })
}

func (g Generic) Xor(o Generic) Generic {
	return g.bitwise(o, func(a, b uint32) uint32 { return a ^ b })
}

// AndNot returns g &^ o per lane.
func (g Generic) AndNot(o Generic) Generic {
	return g.bitwise(o, func(a, b uint32) uint32 { return a &^ b })
}

func (g Generic) bitwise(o Generic, op func(a, b uint32) uint32) Generic {
	var r Generic
	for i := range r {
		r[i] = math.Float32frombits(op(math.Float32bits(g[i]), math.Float32bits(o[i])))
	}
	return r
}

func (g Generic) Equal(o Generic) Generic {
	return g.compare(o, func(a, b float32) bool { return a == b })
}

func (g Generic) Less(o Generic) Generic {
	return g.compare(o, func(a, b float32) bool { return a < b })
}

func (g Generic) LessEqual(o Generic) Generic {
	return g.compare(o, func(a, b float32) bool { return a <= b })
}

func (g Generic) Greater(o Generic) Generic {
	return g.compare(o, func(a, b float32) bool { return a > b })
}

func (g Generic) GreaterEqual(o Generic) Generic {
	return g.compare(o, func(a, b float32) bool { return a >= b })
}

// Unordered holds where either lane is NaN.
func (g Generic) Unordered(o Generic) Generic {
	return g.compare(o, func(a, b float32) bool { return a != a || b != b })
}

func (g Generic) compare(o Generic, pred func(a, b float32) bool) Generic {
	var r Generic
	for i := range r {
		if pred(g[i], o[i]) {
			r[i] = math.Float32frombits(TrueBits)
		}
	}
	return r
}

// MoveMask packs the sign bit of lane i into bit i.
func (g Generic) MoveMask() int {
	m := 0
	for i, x := range g {
		m |= int(math.Float32bits(x)>>31) << i
	}
	return m
}

func (g Generic) Ceil() Generic {
	return g.round(math.Ceil)
}

func (g Generic) Floor() Generic {
	return g.round(math.Floor)
}

func (g Generic) Trunc() Generic {
	return g.round(math.Trunc)
}

// Sqrt is correctly rounded: a binary64 square root of a binary32 input
// rounds to the same binary32 value as a native single-precision sqrt.
func (g Generic) Sqrt() Generic {
	return g.round(math.Sqrt)
}

func (g Generic) round(f func(float64) float64) Generic {
	var r Generic
	for i, x := range g {
		r[i] = float32(f(float64(x)))
	}
	return r
}
