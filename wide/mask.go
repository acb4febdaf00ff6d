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

// Mask is a boolish vector: each lane is expected to be all-ones (true) or
// all-zero (false). It shares the storage of F32x4 but carries no arithmetic,
// so a mask cannot be added or divided by accident.
//
// Masks come from the Cmp* predicates. MaskOf reinterprets arbitrary bits as
// a mask; Merge and MoveMask handle partially set lanes bit by bit.
type Mask F32x4

// MaskOf reinterprets the bits of v as a mask.
func MaskOf(v F32x4) Mask {
	return Mask(v)
}

// Vec returns the raw lane bits of m as a vector.
func (m Mask) Vec() F32x4 {
	return F32x4(m)
}

// And returns m & o.
func (m Mask) And(o Mask) Mask {
	return Mask(m.Vec().And(o.Vec()))
}

// Or returns m | o.
func (m Mask) Or(o Mask) Mask {
	return Mask(m.Vec().Or(o.Vec()))
}

// Xor returns m ^ o.
func (m Mask) Xor(o Mask) Mask {
	return Mask(m.Vec().Xor(o.Vec()))
}

// Not flips every bit of m.
func (m Mask) Not() Mask {
	return Mask(m.Vec().Not())
}

// MoveMask packs the sign bit of lane i into bit i of the result.
func (m Mask) MoveMask() int {
	return m.Vec().MoveMask()
}

// Any reports whether any lane has its sign bit set.
func (m Mask) Any() bool {
	return m.MoveMask() != 0
}

// All reports whether every lane has its sign bit set.
func (m Mask) All() bool {
	return m.MoveMask() == 1<<NumLanes-1
}

// None reports whether no lane has its sign bit set.
func (m Mask) None() bool {
	return m.MoveMask() == 0
}

// Lane reports whether lane i is set, judged by its sign bit. It panics
// unless 0 <= i < 4.
func (m Mask) Lane(i int) bool {
	checkLane("Mask.Lane", i)
	return m.MoveMask()&(1<<i) != 0
}

// Select is Merge(m, t, f).
func (m Mask) Select(t, f F32x4) F32x4 {
	return Merge(m, t, f)
}

// Merge takes each bit from t where the corresponding bit of mask is 1 and
// from f where it is 0. It is computed as f ^ ((f ^ t) & mask), which holds
// for any mask bits, not only whole-lane masks.
func Merge(mask Mask, t, f F32x4) F32x4 {
	return f.Xor(f.Xor(t).And(mask.Vec()))
}

// MoveMask packs the sign bit of lane i into bit i of the result. Any lane
// that is negative, -0 or a negative NaN sets its bit.
func (v F32x4) MoveMask() int {
	return v.r.MoveMask()
}

// CmpEq holds where v == w. False if either lane is NaN.
func (v F32x4) CmpEq(w F32x4) Mask {
	return Mask{r: v.r.Equal(w.r)}
}

// CmpNe holds where v != w. True if either lane is NaN; always the bitwise
// complement of CmpEq.
func (v F32x4) CmpNe(w F32x4) Mask {
	return v.CmpEq(w).Not()
}

// CmpLt holds where v < w. False if either lane is NaN.
func (v F32x4) CmpLt(w F32x4) Mask {
	return Mask{r: v.r.Less(w.r)}
}

// CmpLe holds where v <= w. False if either lane is NaN.
func (v F32x4) CmpLe(w F32x4) Mask {
	return Mask{r: v.r.LessEqual(w.r)}
}

// CmpGt holds where v > w. False if either lane is NaN.
func (v F32x4) CmpGt(w F32x4) Mask {
	return Mask{r: v.r.Greater(w.r)}
}

// CmpGe holds where v >= w. False if either lane is NaN.
func (v F32x4) CmpGe(w F32x4) Mask {
	return Mask{r: v.r.GreaterEqual(w.r)}
}

// CmpNlt holds where !(v < w). True if either lane is NaN.
func (v F32x4) CmpNlt(w F32x4) Mask {
	return v.CmpLt(w).Not()
}

// CmpNle holds where !(v <= w). True if either lane is NaN.
func (v F32x4) CmpNle(w F32x4) Mask {
	return v.CmpLe(w).Not()
}

// CmpNgt holds where !(v > w). True if either lane is NaN.
func (v F32x4) CmpNgt(w F32x4) Mask {
	return v.CmpGt(w).Not()
}

// CmpNge holds where !(v >= w). True if either lane is NaN.
func (v F32x4) CmpNge(w F32x4) Mask {
	return v.CmpGe(w).Not()
}

// CmpNaN holds where v or w is NaN, whatever the payload.
func (v F32x4) CmpNaN(w F32x4) Mask {
	return Mask{r: v.r.Unordered(w.r)}
}

// CmpNotNaN holds where neither v nor w is NaN.
func (v F32x4) CmpNotNaN(w F32x4) Mask {
	return v.CmpNaN(w).Not()
}
