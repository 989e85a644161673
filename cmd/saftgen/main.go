// saftgen - CSG mesh generator
// Builds the reference demo scene, samples its distance field on a grid,
// meshes it with marching cubes, and writes the result as an OBJ file (or
// dumps the compiled bytecode program with -disassemble).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/taigrr/opensaft/pkg/compiler"
	"github.com/taigrr/opensaft/pkg/graph"
	"github.com/taigrr/opensaft/pkg/pipeline"
)

var (
	outPath     = flag.String("out", "scene.obj", "Output OBJ path")
	preset      = flag.String("preset", "default", "Mesh quality preset: default|low")
	meanRes     = flag.Float64("mean-res", 0, "Override mean grid resolution (0 = use preset)")
	maxRes      = flag.Float64("max-res", 0, "Override max grid resolution (0 = use preset)")
	minRes      = flag.Float64("min-res", 0, "Override min grid resolution (0 = use preset)")
	disassemble = flag.Bool("disassemble", false, "Print the compiled bytecode program instead of meshing")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "saftgen - CSG mesh generator\n\n")
		fmt.Fprintf(os.Stderr, "Usage: saftgen [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	g := graph.NewGraph()
	root := g.Example(graph.DefaultExampleParams())

	if *disassemble {
		p := compiler.Compile(g, root)
		text, err := compiler.Disassemble(p)
		if err != nil {
			return fmt.Errorf("disassemble: %w", err)
		}
		fmt.Print(text)
		return nil
	}

	opt := pipeline.DefaultMeshOptions()
	if *preset == "low" {
		opt = pipeline.LowMeshOptions()
	}
	if *meanRes > 0 {
		opt.MeanResolution = float32(*meanRes)
	}
	if *maxRes > 0 {
		opt.MaxResolution = float32(*maxRes)
	}
	if *minRes > 0 {
		opt.MinResolution = float32(*minRes)
	}

	m, err := pipeline.MeshFromSDF(g, root, opt)
	if err != nil {
		return fmt.Errorf("mesh: %w", err)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", *outPath, err)
	}
	defer f.Close()

	if err := m.WriteOBJ(f); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}

	fmt.Fprintf(os.Stderr, "wrote %s: %d vertices, %d triangles\n", *outPath, len(m.Positions), len(m.Indices)/3)
	return nil
}
