// Package main provides the lazymat CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/lazymat/backend/host"
	"github.com/born-ml/lazymat/compiler"
	"github.com/born-ml/lazymat/lazy"
	"github.com/born-ml/lazymat/sparse"
	"github.com/born-ml/lazymat/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("lazymat %s\n", version)
	case "demo":
		demo(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("lazymat - compile lazy matrix expressions to native handles")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Compile and evaluate a sample expression on the host backend")
}

func demo(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	workers := fs.Int("workers", 0, "Host evaluation workers (0 = one per CPU)")
	maxDepth := fs.Int("max-depth", compiler.DefaultConfig().MaxDepth, "Maximum expression depth")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("demo: %v", err)
	}

	hostCfg := host.DefaultConfig()
	if *workers > 0 {
		hostCfg.Parallel.NumWorkers = *workers
		hostCfg.Parallel.Enabled = *workers > 1
	}
	backend := host.New(hostCfg)
	c := compiler.New(backend, compiler.Config{MaxDepth: *maxDepth})

	// A 3x3 dense matrix in column-major order and a sparse identity.
	a, err := tensor.FromSliceColMajor([]float64{
		1.2, -4.5, 7.5,
		2.5, 5.4, -8.1,
		-3.6, 6.3, 9.9,
	}, tensor.Shape{3, 3})
	if err != nil {
		log.Fatalf("dense: %v", err)
	}
	eye, err := sparse.FromDense([]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}, 3, 3)
	if err != nil {
		log.Fatalf("sparse: %v", err)
	}

	expr := &lazy.Combine{
		Axis: 0,
		Children: []any{
			&lazy.Round{Child: &lazy.Binary{Left: a, Right: eye, Op: lazy.OpAdd}},
			&lazy.UnaryArg{
				Child:   &lazy.Subset{Child: a, Rows: lazy.Indices{-1}},
				Op:      lazy.OpMul,
				Arg:     []float64{10, 100, 1000},
				IsRight: true,
				Axis:    1,
			},
		},
	}

	h, err := c.Compile(expr)
	if err != nil {
		log.Fatalf("compile: %v", err)
	}
	desc, err := backend.Describe(h.Ptr())
	if err != nil {
		log.Fatalf("describe: %v", err)
	}
	values, err := backend.Materialize(h.Ptr())
	if err != nil {
		log.Fatalf("materialize: %v", err)
	}

	fmt.Printf("Expression: %s\n", desc)
	fmt.Printf("Handle:     %s\n", h)
	fmt.Printf("Anchors:    %d\n\n", h.NumAnchors())
	for i := 0; i < h.Rows(); i++ {
		for j := 0; j < h.Cols(); j++ {
			fmt.Printf("%10.2f", values[i*h.Cols()+j])
		}
		fmt.Println()
	}
}
