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

// Rounding and sign manipulation.
//
// Ceil, Floor, Trunc and Sqrt are single instructions on the hardware path.
// Abs, CopySign, Fract and Round are built from those plus bitwise ops, so
// both paths run the same sequence of IEEE operations.

// Ceil rounds each lane toward +Inf.
func (v F32x4) Ceil() F32x4 {
	return F32x4{r: v.r.Ceil()}
}

// Floor rounds each lane toward -Inf.
func (v F32x4) Floor() F32x4 {
	return F32x4{r: v.r.Floor()}
}

// Trunc rounds each lane toward zero.
func (v F32x4) Trunc() F32x4 {
	return F32x4{r: v.r.Trunc()}
}

// Sqrt returns the correctly rounded square root of each lane.
func (v F32x4) Sqrt() F32x4 {
	return F32x4{r: v.r.Sqrt()}
}

// Abs clears the sign bit of each lane, NaN included.
func (v F32x4) Abs() F32x4 {
	return v.AndNot(signBits())
}

// CopySign returns the magnitude of v with the sign bit of sign.
func (v F32x4) CopySign(sign F32x4) F32x4 {
	s := signBits()
	return v.AndNot(s).Or(sign.And(s))
}

// Fract returns v - Trunc(v). The result has the sign of v; infinities
// yield NaN.
func (v F32x4) Fract() F32x4 {
	return v.Sub(v.Trunc())
}

// Round rounds each lane to the nearest integer, ties away from zero, like
// math.Round.
func (v F32x4) Round() F32x4 {
	t := v.Trunc()
	// v - t is exact, so no value just below one half can round up.
	bump := v.Sub(t).Abs().CmpGe(Splat(0.5))
	return Merge(bump, t.Add(Splat(1).CopySign(v)), t)
}
