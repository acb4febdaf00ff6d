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
	"slices"
	"testing"

	"github.com/ajroetker/go-wide/wide/internal/vreg"
)

func TestBackend(t *testing.T) {
	b := Backend()
	t.Logf("backend: %s, cpu features: %v", b, CPUFeatures())

	want := BackendGeneric
	if vreg.Accelerated {
		want = BackendAVX
	}
	if b != want {
		t.Errorf("Backend: got %v, want %v", b, want)
	}
	if b == BackendAVX && !slices.Contains(CPUFeatures(), "avx") {
		t.Errorf("BackendAVX on a CPU without avx: %v", CPUFeatures())
	}
}

func TestBackendLevelString(t *testing.T) {
	tests := []struct {
		level BackendLevel
		want  string
	}{
		{BackendGeneric, "generic"},
		{BackendAVX, "avx"},
		{BackendLevel(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("BackendLevel(%d).String(): got %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCPUFeaturesBaseline(t *testing.T) {
	features := CPUFeatures()
	switch runtime.GOARCH {
	case "amd64":
		if !slices.Contains(features, "sse2") {
			t.Errorf("amd64 without sse2: %v", features)
		}
	case "arm64":
		if !slices.Contains(features, "asimd") {
			t.Errorf("arm64 without asimd: %v", features)
		}
	}
}
