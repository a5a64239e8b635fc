// meshexport runs the sampling and extraction pipeline for one shape and
// writes the combined chunk meshes as a Wavefront OBJ file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"isoforge.dev/internal/field"
	"isoforge.dev/internal/gen"
	"isoforge.dev/internal/tuning"
)

func main() {
	var (
		shapeName  = flag.String("shape", "sphere", fmt.Sprintf("shape to export (%s)", strings.Join(field.ShapeNames(), ", ")))
		outPath    = flag.String("out", "mesh.obj", "output OBJ path")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (optional)")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[meshexport] ", log.LstdFlags)

	tn := tuning.Default()
	if *tuningPath != "" {
		var err error
		tn, err = tuning.Load(*tuningPath)
		if err != nil {
			logger.Fatalf("load tuning: %v", err)
		}
	}

	index := -1
	for i := 0; i < field.NumShapes; i++ {
		if field.ChooseShape(i).Name == *shapeName {
			index = i
			break
		}
	}
	if index < 0 {
		logger.Fatalf("unknown shape %q (want one of %s)", *shapeName, strings.Join(field.ShapeNames(), ", "))
	}

	state := gen.NewState(tn.GenConfig())
	scene := gen.NewCollector()
	rep, err := state.SetShape(index, scene)
	if err != nil {
		logger.Fatalf("generate: %v", err)
	}
	logger.Printf("generated %s: %d meshes, %d vertices, %d triangles in %s",
		rep.Shape, scene.Len(), rep.Vertices, rep.Triangles, rep.Duration)

	f, err := os.Create(*outPath)
	if err != nil {
		logger.Fatalf("create %s: %v", *outPath, err)
	}
	if err := writeOBJ(f, scene.Meshes()); err != nil {
		_ = f.Close()
		logger.Fatalf("write OBJ: %v", err)
	}
	if err := f.Close(); err != nil {
		logger.Fatalf("close %s: %v", *outPath, err)
	}
	logger.Printf("wrote %s", *outPath)
}
