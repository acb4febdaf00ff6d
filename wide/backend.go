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
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-wide/wide/internal/vreg"
)

// BackendLevel identifies the implementation F32x4 was compiled against.
// The choice is made at build time; nothing is detected at run time.
type BackendLevel int

const (
	// BackendGeneric is the portable array-backed implementation. It is
	// used on every build that does not satisfy the hardware constraints,
	// and on any build with the purego tag.
	BackendGeneric BackendLevel = iota

	// BackendAVX uses 128-bit VEX-encoded instructions through
	// simd/archsimd. It requires GOARCH=amd64, GOAMD64=v3 and
	// GOEXPERIMENT=simd.
	BackendAVX
)

// String returns a human-readable name for the backend.
func (b BackendLevel) String() string {
	switch b {
	case BackendGeneric:
		return "generic"
	case BackendAVX:
		return "avx"
	default:
		return "unknown"
	}
}

// Backend returns the implementation this binary was built with.
func Backend() BackendLevel {
	if vreg.Accelerated {
		return BackendAVX
	}
	return BackendGeneric
}

// CPUFeatures lists the SIMD features of the running CPU that are
// relevant to F32x4, for diagnostics. It does not influence Backend.
func CPUFeatures() []string {
	var features []string
	add := func(has bool, name string) {
		if has {
			features = append(features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE2, "sse2")
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasFPHP, "fphp")
		add(cpu.ARM64.HasSVE, "sve")
	}
	return features
}
