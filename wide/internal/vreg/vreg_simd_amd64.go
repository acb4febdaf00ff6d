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

//go:build amd64 && goexperiment.simd && amd64.v3 && !purego

package vreg

import "simd/archsimd"

// Accelerated reports whether Float32x4 maps onto hardware vector registers.
const Accelerated = true

// Float32x4 wraps one 128-bit XMM register of four float32 lanes.
// GOAMD64=v3 guarantees AVX at build time, which the VEX-encoded
// archsimd.Float32x4 methods require.
type Float32x4 struct {
	v archsimd.Float32x4
}

var (
	onesI32 = archsimd.BroadcastInt32x4(-1)
	zeroI32 = archsimd.BroadcastInt32x4(0)
)

// Broadcast returns a register with every lane set to x.
func Broadcast(x float32) Float32x4 {
	return Float32x4{v: archsimd.BroadcastFloat32x4(x)}
}

// Load copies four lanes from src.
func Load(src *[4]float32) Float32x4 {
	return Float32x4{v: archsimd.LoadFloat32x4(src)}
}

// Store copies the four lanes to dst.
func (r Float32x4) Store(dst *[4]float32) {
	r.v.Store(dst)
}

func (r Float32x4) Add(o Float32x4) Float32x4 {
	return Float32x4{v: r.v.Add(o.v)}
}

func (r Float32x4) Sub(o Float32x4) Float32x4 {
	return Float32x4{v: r.v.Sub(o.v)}
}

func (r Float32x4) Mul(o Float32x4) Float32x4 {
	return Float32x4{v: r.v.Mul(o.v)}
}

func (r Float32x4) Div(o Float32x4) Float32x4 {
	return Float32x4{v: r.v.Div(o.v)}
}

// Recip uses VDIVPS rather than VRCPPS: the approximate reciprocal differs
// from 1/x in the low mantissa bits.
func (r Float32x4) Recip() Float32x4 {
	return Float32x4{v: archsimd.BroadcastFloat32x4(1).Div(r.v)}
}

func (r Float32x4) And(o Float32x4) Float32x4 {
	return Float32x4{v: r.v.AsInt32x4().And(o.v.AsInt32x4()).AsFloat32x4()}
}

func (r Float32x4) Or(o Float32x4) Float32x4 {
	return Float32x4{v: r.v.AsInt32x4().Or(o.v.AsInt32x4()).AsFloat32x4()}
}

func (r Float32x4) Xor(o Float32x4) Float32x4 {
	return Float32x4{v: r.v.AsInt32x4().Xor(o.v.AsInt32x4()).AsFloat32x4()}
}

// AndNot returns r &^ o per lane.
func (r Float32x4) AndNot(o Float32x4) Float32x4 {
	return Float32x4{v: r.v.AsInt32x4().AndNot(o.v.AsInt32x4()).AsFloat32x4()}
}

// boolish widens a compare mask into all-ones / all-zero lanes.
func boolish(m archsimd.Mask32x4) archsimd.Int32x4 {
	return onesI32.Merge(zeroI32, m)
}

func (r Float32x4) Equal(o Float32x4) Float32x4 {
	return Float32x4{v: boolish(r.v.Equal(o.v)).AsFloat32x4()}
}

func (r Float32x4) Less(o Float32x4) Float32x4 {
	return Float32x4{v: boolish(r.v.Less(o.v)).AsFloat32x4()}
}

func (r Float32x4) LessEqual(o Float32x4) Float32x4 {
	return Float32x4{v: boolish(r.v.LessEqual(o.v)).AsFloat32x4()}
}

func (r Float32x4) Greater(o Float32x4) Float32x4 {
	return Float32x4{v: boolish(r.v.Greater(o.v)).AsFloat32x4()}
}

func (r Float32x4) GreaterEqual(o Float32x4) Float32x4 {
	return Float32x4{v: boolish(r.v.GreaterEqual(o.v)).AsFloat32x4()}
}

// Unordered holds where either lane is NaN. A lane equals itself exactly
// when it is not NaN, whatever its payload.
func (r Float32x4) Unordered(o Float32x4) Float32x4 {
	ordered := boolish(r.v.Equal(r.v)).And(boolish(o.v.Equal(o.v)))
	return Float32x4{v: ordered.Xor(onesI32).AsFloat32x4()}
}

// MoveMask packs the sign bit of lane i into bit i. A lane's sign bit is
// set exactly when its int32 reinterpretation is negative.
func (r Float32x4) MoveMask() int {
	return int(r.v.AsInt32x4().Less(zeroI32).ToBits())
}

func (r Float32x4) Ceil() Float32x4 {
	return Float32x4{v: r.v.Ceil()}
}

func (r Float32x4) Floor() Float32x4 {
	return Float32x4{v: r.v.Floor()}
}

func (r Float32x4) Trunc() Float32x4 {
	return Float32x4{v: r.v.Trunc()}
}

func (r Float32x4) Sqrt() Float32x4 {
	return Float32x4{v: r.v.Sqrt()}
}
