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

// Command widegen generates the lane-wise scalar wrappers of package wide.
//
// Usage:
//
//	widegen -output lanewise.gen.go -pkg wide
//
// Or via go:generate from the wide package directory:
//
//	//go:generate go run ../cmd/widegen -output lanewise.gen.go -pkg wide
//
// Each wrapper unpacks the four lanes, evaluates the matching package math
// function in float64 and rounds the result back to float32.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "lanewise.gen.go", "Output file")
	packageOut = flag.String("pkg", "wide", "Output package name")
	list       = flag.Bool("list", false, "Print the generated method names and exit")
)

func main() {
	flag.Parse()

	if *list {
		for _, fn := range Funcs {
			fmt.Println(fn.Name)
		}
		return
	}

	gen := &Generator{
		Package: *packageOut,
		Funcs:   Funcs,
	}
	if err := gen.WriteFile(*outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d lane-wise methods into %s\n", len(gen.Funcs), *outputFile)
}
