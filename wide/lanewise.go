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
	"strconv"
)

// Operations in this file and in lanewise.gen.go have no vector instruction
// and always run lane by lane against package math. Binary32 lanes are
// widened to binary64, evaluated, and rounded once on the way back.

func (v F32x4) map1(f func(x float32) float32) F32x4 {
	a := v.Array()
	return New(f(a[0]), f(a[1]), f(a[2]), f(a[3]))
}

func (v F32x4) map2(w F32x4, f func(x, y float32) float32) F32x4 {
	a, b := v.Array(), w.Array()
	return New(f(a[0], b[0]), f(a[1], b[1]), f(a[2], b[2]), f(a[3], b[3]))
}

// Min returns the smaller lane of v and w. A NaN lane is treated as missing
// data: if exactly one of the two is NaN the other is returned, and NaN only
// comes back when both are NaN. -0 is smaller than +0.
//
// This is not the MINPS rule, which returns w whenever either lane is NaN.
func (v F32x4) Min(w F32x4) F32x4 {
	return v.map2(w, minNum)
}

// Max returns the larger lane of v and w, ignoring a NaN lane the way Min
// does. +0 is larger than -0.
func (v F32x4) Max(w F32x4) F32x4 {
	return v.map2(w, maxNum)
}

func minNum(x, y float32) float32 {
	switch {
	case x != x:
		return y
	case y != y:
		return x
	}
	return min(x, y)
}

func maxNum(x, y float32) float32 {
	switch {
	case x != x:
		return y
	case y != y:
		return x
	}
	return max(x, y)
}

// MulAdd returns v*a + b per lane with a single rounding.
func (v F32x4) MulAdd(a, b F32x4) F32x4 {
	x, y, z := v.Array(), a.Array(), b.Array()
	return New(fma32(x[0], y[0], z[0]), fma32(x[1], y[1], z[1]), fma32(x[2], y[2], z[2]), fma32(x[3], y[3], z[3]))
}

// fma32 computes x*y + z rounded once to binary32.
//
// The binary64 product of two binary32 values is exact. The sum is rounded to
// odd in binary64 (53 >= 2*24+2 bits), after which the conversion to binary32
// rounds as if from the exact value.
func fma32(x, y, z float32) float32 {
	p := float64(float64(x) * float64(y))
	c := float64(z)
	s := p + c
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	// TwoSum: e is the exact rounding error of p + c.
	bb := s - p
	e := (p - (s - bb)) + (c - bb)
	if e == 0 {
		return float32(s)
	}
	bits := math.Float64bits(s)
	if (e > 0) != (s > 0) {
		bits-- // s was rounded away from zero; step back toward it
	}
	bits |= 1
	return float32(math.Float64frombits(bits))
}

// PowI raises each lane to the matching integer power.
func (v F32x4) PowI(n [4]int32) F32x4 {
	a := v.Array()
	var r [4]float32
	for i := range r {
		r[i] = float32(math.Pow(float64(a[i]), float64(n[i])))
	}
	return FromArray(r)
}

// Signum returns 1 with the sign of each lane, or NaN for NaN lanes. Zeros
// map to ±1 following their sign bit.
func (v F32x4) Signum() F32x4 {
	return v.map1(func(x float32) float32 {
		if x != x {
			return x
		}
		return math.Float32frombits(math.Float32bits(1) | math.Float32bits(x)&(1<<31))
	})
}

// SinCos returns Sin and Cos of v.
func (v F32x4) SinCos() (sin, cos F32x4) {
	return v.Sin(), v.Cos()
}

const (
	degreesPerRadian float32 = 57.2957795130823208767981548141051703
	radiansPerDegree float32 = math.Pi / 180
)

// ToDegrees converts each lane from radians to degrees.
func (v F32x4) ToDegrees() F32x4 {
	return v.Mul(Splat(degreesPerRadian))
}

// ToRadians converts each lane from degrees to radians.
func (v F32x4) ToRadians() F32x4 {
	return v.Mul(Splat(radiansPerDegree))
}

// Category is the IEEE-754 class of a lane.
type Category int

const (
	CategoryNaN Category = iota
	CategoryInfinite
	CategoryZero
	CategorySubnormal
	CategoryNormal
)

func (c Category) String() string {
	switch c {
	case CategoryNaN:
		return "NaN"
	case CategoryInfinite:
		return "Infinite"
	case CategoryZero:
		return "Zero"
	case CategorySubnormal:
		return "Subnormal"
	case CategoryNormal:
		return "Normal"
	default:
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
}

// Classify returns the class of each lane.
func (v F32x4) Classify() [4]Category {
	var r [4]Category
	for i, x := range v.Array() {
		r[i] = classify(x)
	}
	return r
}

func classify(x float32) Category {
	b := math.Float32bits(x)
	exp, mant := b&0x7F800000, b&0x007FFFFF
	switch {
	case exp == 0x7F800000 && mant != 0:
		return CategoryNaN
	case exp == 0x7F800000:
		return CategoryInfinite
	case exp == 0 && mant == 0:
		return CategoryZero
	case exp == 0:
		return CategorySubnormal
	default:
		return CategoryNormal
	}
}
