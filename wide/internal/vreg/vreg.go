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

// Package vreg is the register adapter behind wide.F32x4.
//
// It exposes one 128-bit register type, Float32x4, together with the handful
// of primitives the hardware executes natively: broadcast, load/store,
// add/sub/mul/div, bitwise and/or/xor/andnot, ordered compares, move-mask,
// ceil/floor/trunc and sqrt. Everything richer is built on top of these in
// package wide.
//
// Float32x4 is chosen at build time:
//
//   - amd64 with GOEXPERIMENT=simd, GOAMD64=v3 and without the purego tag:
//     a wrapper around archsimd.Float32x4 (VEX-encoded 128-bit ops).
//   - everything else: an alias of Generic, a plain [4]float32 operated on
//     lane by lane.
//
// Generic is compiled on every build so the two paths can be compared
// bit-for-bit in one test binary.
package vreg

// ops is the primitive contract shared by every register implementation.
// Compare methods return boolish registers: each lane is 0xFFFFFFFF when the
// predicate holds and 0 otherwise.
type ops[R any] interface {
	Store(dst *[4]float32)

	Add(R) R
	Sub(R) R
	Mul(R) R
	Div(R) R
	Recip() R

	And(R) R
	Or(R) R
	Xor(R) R
	AndNot(R) R

	Equal(R) R
	Less(R) R
	LessEqual(R) R
	Greater(R) R
	GreaterEqual(R) R
	Unordered(R) R
	MoveMask() int

	Ceil() R
	Floor() R
	Trunc() R
	Sqrt() R
}

var (
	_ ops[Generic]   = Generic{}
	_ ops[Float32x4] = Float32x4{}
)

// TrueBits is the lane pattern of a satisfied predicate.
const TrueBits uint32 = 0xFFFFFFFF

// SignBit is the IEEE-754 binary32 sign bit.
const SignBit uint32 = 0x80000000
