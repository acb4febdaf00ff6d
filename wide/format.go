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
	"strconv"
	"strings"
)

// String renders the lanes with their shortest representation, for
// example "f32x4(1, 2.5, NaN, -Inf)".
//
// Lanes use strconv's %g vocabulary: infinities print as +Inf and -Inf, and
// magnitudes of at least 1e6 or below 1e-4 switch to exponent form, so
// 1000000 prints as 1e+06. Use %f for fixed notation.
func (v F32x4) String() string {
	return v.render(func(x float32) string {
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	})
}

// GoString is like String but keeps a fractional part on finite integral
// lanes: "f32x4(1.0, 2.5, NaN, -Inf)".
func (v F32x4) GoString() string {
	return v.render(func(x float32) string {
		s := strconv.FormatFloat(float64(x), 'g', -1, 32)
		if math.IsInf(float64(x), 0) || x != x || strings.ContainsAny(s, ".e") {
			return s
		}
		return s + ".0"
	})
}

// Format implements fmt.Formatter.
//
// %v and %s print String, %#v prints GoString. The float verbs
// %e %E %f %F %g %G format each lane with the given flags, width and
// precision. The integer verbs %b %o %O %x %X format the raw bits of each
// lane as a uint32.
func (v F32x4) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprint(f, v.GoString())
			return
		}
		fmt.Fprint(f, v.String())
	case 's':
		fmt.Fprint(f, v.String())
	case 'e', 'E', 'f', 'F', 'g', 'G':
		directive := fmt.FormatString(f, verb)
		fmt.Fprint(f, v.render(func(x float32) string {
			return fmt.Sprintf(directive, x)
		}))
	case 'b', 'o', 'O', 'x', 'X':
		directive := fmt.FormatString(f, verb)
		fmt.Fprint(f, v.render(func(x float32) string {
			return fmt.Sprintf(directive, math.Float32bits(x))
		}))
	default:
		fmt.Fprintf(f, "%%!%c(wide.F32x4=%s)", verb, v.String())
	}
}

func (v F32x4) render(lane func(float32) string) string {
	a := v.Array()
	var b strings.Builder
	b.WriteString("f32x4(")
	for i, x := range a {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(lane(x))
	}
	b.WriteByte(')')
	return b.String()
}
