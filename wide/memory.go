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

// Alignment is the byte alignment of a hardware register.
//
// The Go compiler never aligns a value above 8 bytes, so F32x4 variables
// and slices are only 8-byte aligned in general. MakeAligned provides
// storage that honors Alignment.
const Alignment = 16

// Load reads the first four elements of src. It panics if len(src) < 4.
func Load(src []float32) F32x4 {
	checkLen("Load", len(src))
	return F32x4{r: vreg.Load((*[NumLanes]float32)(src))}
}

// Store writes the lanes of v to the first four elements of dst. It panics
// if len(dst) < 4.
func (v F32x4) Store(dst []float32) {
	checkLen("F32x4.Store", len(dst))
	v.r.Store((*[NumLanes]float32)(dst))
}

// AsFloats reinterprets vs as a flat slice of 4*len(vs) lanes sharing the
// same memory.
func AsFloats(vs []F32x4) []float32 {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&vs[0])), len(vs)*NumLanes)
}

// MakeAligned returns a zeroed slice of n vectors whose first element
// starts on an Alignment boundary.
func MakeAligned(n int) []F32x4 {
	if n <= 0 {
		return nil
	}
	size := int(unsafe.Sizeof(F32x4{}))
	buf := make([]byte, n*size+Alignment-1)
	off := 0
	if rem := uintptr(unsafe.Pointer(&buf[0])) % Alignment; rem != 0 {
		off = Alignment - int(rem)
	}
	return unsafe.Slice((*F32x4)(unsafe.Pointer(&buf[off])), n)
}

func checkLen(op string, n int) {
	if n < NumLanes {
		panic(fmt.Sprintf("wide: %s: slice length %d is less than %d lanes", op, n, NumLanes))
	}
}
