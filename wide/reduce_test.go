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
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSumProductAreSequential(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	vs := make([]F32x4, 33)
	for i := range vs {
		vs[i] = New(float32(rng.NormFloat64()*1e6), float32(rng.NormFloat64()), float32(rng.NormFloat64()*1e-6), float32(1+rng.Float64()))
	}

	var sum, prod [4]float32
	prod = [4]float32{1, 1, 1, 1}
	for _, v := range vs {
		a := v.Array()
		for i := range a {
			sum[i] += a[i]
			prod[i] *= a[i]
		}
	}

	if diff := cmp.Diff(sum, Sum(vs...).Array()); diff != "" {
		t.Errorf("Sum mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(prod, Product(vs...).Array()); diff != "" {
		t.Errorf("Product mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(sum, SumSeq(slices.Values(vs)).Array()); diff != "" {
		t.Errorf("SumSeq mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(prod, ProductSeq(slices.Values(vs)).Array()); diff != "" {
		t.Errorf("ProductSeq mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyReductions(t *testing.T) {
	if got := Sum().Array(); got != [4]float32{} {
		t.Errorf("Sum(): got %v, want zeros", got)
	}
	if got := Product().Array(); got != [4]float32{1, 1, 1, 1} {
		t.Errorf("Product(): got %v, want ones", got)
	}
}

func TestReduceAdd(t *testing.T) {
	// (1e8 + 1) + -1e8 + 1 loses the first 1 when added left to right.
	if got := New(1e8, 1, -1e8, 1).ReduceAdd(); got != 1 {
		t.Errorf("ReduceAdd: got %v, want 1", got)
	}
}
