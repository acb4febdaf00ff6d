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

//go:build !(amd64 && goexperiment.simd && amd64.v3) || purego

package vreg

// Accelerated reports whether Float32x4 maps onto hardware vector registers.
const Accelerated = false

// Float32x4 is the active register type.
type Float32x4 = Generic

// Broadcast returns a register with every lane set to x.
func Broadcast(x float32) Float32x4 {
	return BroadcastGeneric(x)
}

// Load copies four lanes from src.
func Load(src *[4]float32) Float32x4 {
	return LoadGeneric(src)
}
