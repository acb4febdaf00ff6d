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

	"github.com/ajroetker/go-wide/wide/internal/vreg"
)

// The bitwise operations act on the raw 32-bit pattern of each lane, not on
// its numeric value.

// And returns v & w per lane.
func (v F32x4) And(w F32x4) F32x4 {
	return F32x4{r: v.r.And(w.r)}
}

// Or returns v | w per lane.
func (v F32x4) Or(w F32x4) F32x4 {
	return F32x4{r: v.r.Or(w.r)}
}

// Xor returns v ^ w per lane.
func (v F32x4) Xor(w F32x4) F32x4 {
	return F32x4{r: v.r.Xor(w.r)}
}

// AndNot returns v &^ w per lane.
func (v F32x4) AndNot(w F32x4) F32x4 {
	return F32x4{r: v.r.AndNot(w.r)}
}

// Not flips every bit.
func (v F32x4) Not() F32x4 {
	return v.Xor(allOnes())
}

// AndAssign sets *v to *v & w.
func (v *F32x4) AndAssign(w F32x4) {
	*v = v.And(w)
}

// OrAssign sets *v to *v | w.
func (v *F32x4) OrAssign(w F32x4) {
	*v = v.Or(w)
}

// XorAssign sets *v to *v ^ w.
func (v *F32x4) XorAssign(w F32x4) {
	*v = v.Xor(w)
}

func allOnes() F32x4 {
	return Splat(math.Float32frombits(vreg.TrueBits))
}

func signBits() F32x4 {
	return Splat(math.Float32frombits(vreg.SignBit))
}
