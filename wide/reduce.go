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

import "iter"

// Sum adds vs lane-wise from left to right, starting from zero.
// Sum() is the zero vector.
func Sum(vs ...F32x4) F32x4 {
	acc := Zero()
	for _, v := range vs {
		acc = acc.Add(v)
	}
	return acc
}

// Product multiplies vs lane-wise from left to right, starting from one.
// Product() is Splat(1).
func Product(vs ...F32x4) F32x4 {
	acc := Splat(1)
	for _, v := range vs {
		acc = acc.Mul(v)
	}
	return acc
}

// SumSeq is Sum over a sequence.
func SumSeq(seq iter.Seq[F32x4]) F32x4 {
	acc := Zero()
	for v := range seq {
		acc = acc.Add(v)
	}
	return acc
}

// ProductSeq is Product over a sequence.
func ProductSeq(seq iter.Seq[F32x4]) F32x4 {
	acc := Splat(1)
	for v := range seq {
		acc = acc.Mul(v)
	}
	return acc
}

// ReduceAdd returns ((v0 + v1) + v2) + v3.
func (v F32x4) ReduceAdd() float32 {
	a := v.Array()
	return ((a[0] + a[1]) + a[2]) + a[3]
}
