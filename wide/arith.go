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

import "math"

// Add returns v + w per lane.
func (v F32x4) Add(w F32x4) F32x4 {
	return F32x4{r: v.r.Add(w.r)}
}

// Sub returns v - w per lane.
func (v F32x4) Sub(w F32x4) F32x4 {
	return F32x4{r: v.r.Sub(w.r)}
}

// Mul returns v * w per lane.
func (v F32x4) Mul(w F32x4) F32x4 {
	return F32x4{r: v.r.Mul(w.r)}
}

// Div returns v / w per lane. Division by zero yields a signed infinity or
// NaN as IEEE-754 prescribes.
func (v F32x4) Div(w F32x4) F32x4 {
	return F32x4{r: v.r.Div(w.r)}
}

// Rem returns the truncated-division remainder of v / w per lane. The result
// has the sign of v: New(-5.5, ...).Rem(Splat(2)) has lane 0 equal to -1.5.
//
// No vector instruction computes this, so it always runs lane by lane.
func (v F32x4) Rem(w F32x4) F32x4 {
	return v.map2(w, func(x, y float32) float32 {
		// fmod is exact, so the binary64 result is representable in binary32.
		return float32(math.Mod(float64(x), float64(y)))
	})
}

// Neg returns 0 - v per lane. Like the subtraction it is, Neg maps +0 and -0
// to +0 and keeps NaN payloads.
func (v F32x4) Neg() F32x4 {
	return Zero().Sub(v)
}

// Recip returns 1 / v per lane using a true division.
func (v F32x4) Recip() F32x4 {
	return F32x4{r: v.r.Recip()}
}

// AddAssign sets *v to *v + w.
func (v *F32x4) AddAssign(w F32x4) {
	*v = v.Add(w)
}

// SubAssign sets *v to *v - w.
func (v *F32x4) SubAssign(w F32x4) {
	*v = v.Sub(w)
}

// MulAssign sets *v to *v * w.
func (v *F32x4) MulAssign(w F32x4) {
	*v = v.Mul(w)
}

// DivAssign sets *v to *v / w.
func (v *F32x4) DivAssign(w F32x4) {
	*v = v.Div(w)
}

// RemAssign sets *v to the remainder of *v / w.
func (v *F32x4) RemAssign(w F32x4) {
	*v = v.Rem(w)
}
