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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

// Func describes one lane-wise wrapper.
type Func struct {
	Name string
	// Doc completes the sentence "Name returns ...".
	Doc string
	// Expr is the float64 expression evaluated per lane. Unary functions
	// see the lane as x; binary functions see v's lane as x and the
	// argument's lane as y.
	Expr string
	// Arg names the second operand of a binary function. Empty for unary
	// functions.
	Arg string
}

// Binary reports whether f takes a second vector operand.
func (f Func) Binary() bool { return f.Arg != "" }

// Funcs is the table rendered into lanewise.gen.go.
var Funcs = []Func{
	{Name: "Sin", Doc: "the sine of each lane (radians)", Expr: "math.Sin(float64(x))"},
	{Name: "Cos", Doc: "the cosine of each lane (radians)", Expr: "math.Cos(float64(x))"},
	{Name: "Tan", Doc: "the tangent of each lane (radians)", Expr: "math.Tan(float64(x))"},
	{Name: "Asin", Doc: "the arcsine of each lane", Expr: "math.Asin(float64(x))"},
	{Name: "Acos", Doc: "the arccosine of each lane", Expr: "math.Acos(float64(x))"},
	{Name: "Atan", Doc: "the arctangent of each lane", Expr: "math.Atan(float64(x))"},
	{Name: "Sinh", Doc: "the hyperbolic sine of each lane", Expr: "math.Sinh(float64(x))"},
	{Name: "Cosh", Doc: "the hyperbolic cosine of each lane", Expr: "math.Cosh(float64(x))"},
	{Name: "Tanh", Doc: "the hyperbolic tangent of each lane", Expr: "math.Tanh(float64(x))"},
	{Name: "Asinh", Doc: "the inverse hyperbolic sine of each lane", Expr: "math.Asinh(float64(x))"},
	{Name: "Acosh", Doc: "the inverse hyperbolic cosine of each lane", Expr: "math.Acosh(float64(x))"},
	{Name: "Atanh", Doc: "the inverse hyperbolic tangent of each lane", Expr: "math.Atanh(float64(x))"},
	{Name: "Exp", Doc: "e raised to each lane", Expr: "math.Exp(float64(x))"},
	{Name: "Exp2", Doc: "2 raised to each lane", Expr: "math.Exp2(float64(x))"},
	{Name: "ExpM1", Doc: "e raised to each lane, minus 1, accurate near zero", Expr: "math.Expm1(float64(x))"},
	{Name: "Ln", Doc: "the natural logarithm of each lane", Expr: "math.Log(float64(x))"},
	{Name: "Ln1p", Doc: "the natural logarithm of 1 plus each lane, accurate near zero", Expr: "math.Log1p(float64(x))"},
	{Name: "Log2", Doc: "the base-2 logarithm of each lane", Expr: "math.Log2(float64(x))"},
	{Name: "Log10", Doc: "the base-10 logarithm of each lane", Expr: "math.Log10(float64(x))"},
	{Name: "Cbrt", Doc: "the cube root of each lane", Expr: "math.Cbrt(float64(x))"},
	{Name: "Atan2", Doc: "the four-quadrant arctangent of v/x per lane", Expr: "math.Atan2(float64(x), float64(y))", Arg: "x"},
	{Name: "Hypot", Doc: "sqrt(v*v + w*w) per lane without undue overflow", Expr: "math.Hypot(float64(x), float64(y))", Arg: "w"},
	{Name: "PowF", Doc: "each lane raised to the matching lane of n", Expr: "math.Pow(float64(x), float64(y))", Arg: "n"},
	{Name: "Log", Doc: "the logarithm of each lane in the matching lane of base", Expr: "math.Log(float64(x)) / math.Log(float64(y))", Arg: "base"},
}

// Generator renders a table of Funcs into a Go source file.
type Generator struct {
	Package string
	Funcs   []Func
}

var errNoFuncs = errors.New("no functions to generate")

const fileTemplate = `// Code generated by widegen. DO NOT EDIT.

package {{.Package}}

import "math"
{{range .Funcs}}
// {{.Name}} returns {{.Doc}}.
{{- if .Binary}}
func (v F32x4) {{.Name}}({{.Arg}} F32x4) F32x4 {
	return v.map2({{.Arg}}, func(x, y float32) float32 { return float32({{.Expr}}) })
}
{{- else}}
func (v F32x4) {{.Name}}() F32x4 {
	return v.map1(func(x float32) float32 { return float32({{.Expr}}) })
}
{{- end}}
{{end}}`

var fileTmpl = template.Must(template.New("lanewise").Parse(fileTemplate))

// Source returns the formatted generated file.
func (g *Generator) Source() ([]byte, error) {
	if len(g.Funcs) == 0 {
		return nil, errNoFuncs
	}
	seen := make(map[string]bool, len(g.Funcs))
	for _, fn := range g.Funcs {
		if seen[fn.Name] {
			return nil, fmt.Errorf("duplicate function %q", fn.Name)
		}
		seen[fn.Name] = true
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, g); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	out, err := imports.Process("lanewise.gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return out, nil
}

// WriteFile renders the generated file to filename.
func (g *Generator) WriteFile(filename string) error {
	src, err := g.Source()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
