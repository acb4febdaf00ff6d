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

// Package consts provides IEEE-754 limits and mathematical constants for
// float32, each repeated once per lane of a wide.F32x4.
//
// The values are plain arrays so they can be declared as package variables
// without touching a register. Turn one into a vector at the call site:
//
//	tau := wide.FromArray(consts.Pi).Mul(wide.Splat(2))
package consts

import "math"

func x4[T any](v T) [4]T { return [4]T{v, v, v, v} }

// IEEE-754 binary32 special values.
var (
	// Epsilon is the difference between 1 and the next larger float32.
	Epsilon     = x4[float32](0x1p-23)
	Infinity    = x4(float32(math.Inf(1)))
	NegInfinity = x4(float32(math.Inf(-1)))
	Max         = x4[float32](math.MaxFloat32)
	Min         = x4[float32](-math.MaxFloat32)
	// MinPositive is the smallest positive normal float32.
	MinPositive = x4[float32](0x1p-126)
	NaN         = x4(float32(math.NaN()))
)

// Binary32 format parameters.
var (
	Digits         = x4[uint32](6)
	MantissaDigits = x4[uint32](24)
	Radix          = x4[uint32](2)

	Max10Exp = x4[int32](38)
	MaxExp   = x4[int32](128)
	Min10Exp = x4[int32](-37)
	MinExp   = x4[int32](-125)
)

// Mathematical constants rounded to float32.
var (
	E      = x4[float32](math.E)
	Pi     = x4[float32](math.Pi)
	Sqrt2  = x4[float32](math.Sqrt2)
	Ln2    = x4[float32](math.Ln2)
	Ln10   = x4[float32](math.Ln10)
	Log2E  = x4[float32](math.Log2E)
	Log10E = x4[float32](math.Log10E)

	Frac1Pi     = x4[float32](1 / math.Pi)
	Frac2Pi     = x4[float32](2 / math.Pi)
	Frac2SqrtPi = x4[float32](2 / math.SqrtPi)
	Frac1Sqrt2  = x4[float32](1 / math.Sqrt2)
	FracPi2     = x4[float32](math.Pi / 2)
	FracPi3     = x4[float32](math.Pi / 3)
	FracPi4     = x4[float32](math.Pi / 4)
	FracPi6     = x4[float32](math.Pi / 6)
	FracPi8     = x4[float32](math.Pi / 8)
)
