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

// Package wide provides F32x4, a fixed-width vector of four float32 lanes.
//
// Every operation has two implementations selected at build time: one maps
// onto 128-bit hardware vector instructions (amd64 built with
// GOEXPERIMENT=simd and GOAMD64=v3), the other works lane by lane on a plain
// [4]float32. The two produce bit-identical results, including NaN payloads,
// signed zeros and denormals. Build with -tags purego to force the lane-by-lane
// path anywhere.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-wide/wide"
//
//	a := wide.New(1, 2, 3, 4)
//	b := wide.Splat(2.5)
//	mask := a.CmpGt(b)
//	v := wide.Merge(mask, wide.Splat(10), wide.Splat(2)) // f32x4(2, 2, 10, 10)
//
// Comparisons return a Mask whose lanes are all-ones or all-zero bit
// patterns. Masks feed Merge (a per-bit select) and MoveMask (the sign bit of
// every lane packed into an int).
//
// Transcendental functions, remainder and min/max always run lane by lane
// against package math so both builds agree exactly.
package wide

//go:generate go run ../cmd/widegen -output lanewise.gen.go -pkg wide
