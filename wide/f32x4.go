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
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-wide/wide/internal/vreg"
)

// F32x4 holds four IEEE-754 single-precision lanes in 16 contiguous bytes.
//
// F32x4 is a value type: operations return new values and never share
// storage. The zero value has all lanes +0.
type F32x4 struct {
	r vreg.Float32x4
}

// NumLanes is the number of float32 lanes in an F32x4.
const NumLanes = 4

// New returns a vector with lane i set to the i-th argument.
func New(a, b, c, d float32) F32x4 {
	arr := [4]float32{a, b, c, d}
	return F32x4{r: vreg.Load(&arr)}
}

// Splat returns a vector with every lane set to x.
func Splat(x float32) F32x4 {
	return F32x4{r: vreg.Broadcast(x)}
}

// Zero returns a vector of +0 lanes.
func Zero() F32x4 {
	return F32x4{}
}

// FromArray reinterprets arr as a vector. Lane bits are kept exactly.
func FromArray(arr [4]float32) F32x4 {
	return F32x4{r: vreg.Load(&arr)}
}

// Array returns the lanes as a plain array, bit for bit.
func (v F32x4) Array() [4]float32 {
	var arr [4]float32
	v.r.Store(&arr)
	return arr
}

// AsArray views the storage of *v as a *[4]float32. Writes through the
// returned pointer modify v.
func AsArray(v *F32x4) *[4]float32 {
	return (*[4]float32)(unsafe.Pointer(v))
}

// Lanes returns the four lanes in order.
func (v F32x4) Lanes() (a, b, c, d float32) {
	arr := v.Array()
	return arr[0], arr[1], arr[2], arr[3]
}

// FromInt8s widens four int8 values. The conversion is exact.
func FromInt8s(x [4]int8) F32x4 {
	return New(float32(x[0]), float32(x[1]), float32(x[2]), float32(x[3]))
}

// FromUint8s widens four uint8 values. The conversion is exact.
func FromUint8s(x [4]uint8) F32x4 {
	return New(float32(x[0]), float32(x[1]), float32(x[2]), float32(x[3]))
}

// FromInt16s widens four int16 values. The conversion is exact.
func FromInt16s(x [4]int16) F32x4 {
	return New(float32(x[0]), float32(x[1]), float32(x[2]), float32(x[3]))
}

// FromUint16s widens four uint16 values. The conversion is exact.
func FromUint16s(x [4]uint16) F32x4 {
	return New(float32(x[0]), float32(x[1]), float32(x[2]), float32(x[3]))
}

// Lane returns lane i. It panics unless 0 <= i < 4.
func (v F32x4) Lane(i int) float32 {
	checkLane("F32x4.Lane", i)
	return AsArray(&v)[i]
}

// SetLane replaces lane i with x. It panics unless 0 <= i < 4.
func (v *F32x4) SetLane(i int, x float32) {
	checkLane("F32x4.SetLane", i)
	AsArray(v)[i] = x
}

func checkLane(op string, i int) {
	if i < 0 || i >= NumLanes {
		panic(fmt.Sprintf("wide: %s: lane index %d out of range [0, %d)", op, i, NumLanes))
	}
}
