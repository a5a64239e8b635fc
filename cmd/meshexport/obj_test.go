package main

import (
	"bufio"
	"strings"
	"testing"

	"isoforge.dev/internal/mesh"
)

func TestWriteOBJ_OffsetsAcrossMeshes(t *testing.T) {
	meshes := []*mesh.PosNormMesh{
		{
			Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			Normals:   [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
			Indices:   []uint32{0, 1, 2},
		},
		{
			Positions: [][3]float32{{5, 0, 0}, {6, 0, 0}, {5, 1, 0}},
			Normals:   [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
			Indices:   []uint32{0, 1, 2},
		},
	}

	var sb strings.Builder
	if err := writeOBJ(&sb, meshes); err != nil {
		t.Fatalf("writeOBJ: %v", err)
	}
	out := sb.String()

	var vCount, vnCount, fCount int
	var lastFace string
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "v "):
			vCount++
		case strings.HasPrefix(line, "vn "):
			vnCount++
		case strings.HasPrefix(line, "f "):
			fCount++
			lastFace = line
		}
	}
	if vCount != 6 || vnCount != 6 || fCount != 2 {
		t.Fatalf("counts: v=%d vn=%d f=%d", vCount, vnCount, fCount)
	}
	// The second mesh's face references vertices 4..6.
	if lastFace != "f 4//4 5//5 6//6" {
		t.Fatalf("second face: got %q want %q", lastFace, "f 4//4 5//5 6//6")
	}
	if !strings.Contains(out, "o chunk_0\n") || !strings.Contains(out, "o chunk_1\n") {
		t.Fatalf("missing object headers:\n%s", out)
	}
}
