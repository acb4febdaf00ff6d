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
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type unaryCase struct {
	name   string
	vec    func(F32x4) F32x4
	scalar func(x float32) float32
}

func viaFloat64(f func(float64) float64) func(float32) float32 {
	return func(x float32) float32 { return float32(f(float64(x))) }
}

var roundingOps = []unaryCase{
	{"Ceil", F32x4.Ceil, viaFloat64(math.Ceil)},
	{"Floor", F32x4.Floor, viaFloat64(math.Floor)},
	{"Trunc", F32x4.Trunc, viaFloat64(math.Trunc)},
	{"Round", F32x4.Round, viaFloat64(math.Round)},
	{"Sqrt", F32x4.Sqrt, viaFloat64(math.Sqrt)},
	{"Abs", F32x4.Abs, viaFloat64(math.Abs)},
	{"Fract", F32x4.Fract, func(x float32) float32 { return x - float32(math.Trunc(float64(x))) }},
}

func TestRoundHalvesAwayFromZero(t *testing.T) {
	negZero := math.Float32frombits(0x80000000)
	tests := []struct {
		in, want [4]float32
	}{
		{[4]float32{0, 0.2, 0.5, 2.5}, [4]float32{0, 0, 1, 3}},
		{[4]float32{0.5, 1.5, 2.5, -0.5}, [4]float32{1, 2, 3, -1}},
		{[4]float32{-1.5, -2.5, 0.49999997, -0.49999997}, [4]float32{-2, -3, 0, negZero}},
		{[4]float32{8388607.5, -8388607.5, 1 << 24, -3.7}, [4]float32{8388608, -8388608, 1 << 24, -4}},
		{[4]float32{negZero, 0, -0.2, 2.2}, [4]float32{negZero, 0, negZero, 2}},
	}
	for _, tt := range tests {
		got := FromArray(tt.in).Round().Array()
		if !bitsEqual(got, tt.want) {
			t.Errorf("Round(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}

	nanInf := New(float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1)), 0).Round().Array()
	if !isNaN(nanInf[0]) || !math.IsInf(float64(nanInf[1]), 1) || !math.IsInf(float64(nanInf[2]), -1) {
		t.Errorf("Round(NaN, +Inf, -Inf): got %v", nanInf)
	}
}

func TestCopySign(t *testing.T) {
	negNaN := math.Float32frombits(0xFFC00000)
	got := New(1, -2, float32(math.Inf(1)), 3).CopySign(New(0, 5, -1, negNaN)).Array()
	want := [4]float32{1, 2, float32(math.Inf(-1)), -3}
	if got != want {
		t.Errorf("CopySign: got %v, want %v", got, want)
	}
}

// TestRoundingSweep checks every rounding op against package math on a
// strided walk over all 2^32 bit patterns.
func TestRoundingSweep(t *testing.T) {
	const stride = 4093
	workers := runtime.GOMAXPROCS(0)
	chunk := (uint64(1)<<32 + uint64(workers) - 1) / uint64(workers)

	var g errgroup.Group
	for w := range workers {
		lo := uint64(w) * chunk
		hi := min(lo+chunk, uint64(1)<<32)
		g.Go(func() error {
			for b := lo; b < hi; b += stride * 4 {
				var in [4]float32
				for i := range in {
					in[i] = math.Float32frombits(uint32(b + uint64(i)*stride))
				}
				v := FromArray(in)
				for _, op := range roundingOps {
					got := op.vec(v).Array()
					for i, x := range in {
						if want := op.scalar(x); !sameBits(got[i], want) {
							return fmt.Errorf("%s(%#08x): got %#08x, want %#08x",
								op.name, math.Float32bits(x), math.Float32bits(got[i]), math.Float32bits(want))
						}
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func BenchmarkRound(b *testing.B) {
	v := New(0.5, -1.5, 2.25, 1e6)
	for b.Loop() {
		_ = v.Round()
	}
}
