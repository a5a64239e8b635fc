package mesh

import (
	"testing"

	"github.com/chewxy/math32"

	"isoforge.dev/internal/grid"
)

func sampleSphere(extent grid.Extent3i, radius float32) *grid.Array3 {
	a := grid.FillArray3(extent, 0)
	extent.ForEach(func(p grid.Point3i) {
		x, y, z := p.Float()
		a.Set(p, math32.Sqrt(x*x+y*y+z*z)-radius)
	})
	return a
}

func checkMeshInvariants(t *testing.T, m *PosNormMesh) {
	t.Helper()
	if len(m.Positions) != len(m.Normals) {
		t.Fatalf("positions/normals length mismatch: %d vs %d", len(m.Positions), len(m.Normals))
	}
	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d not a multiple of 3", len(m.Indices))
	}
	for _, i := range m.Indices {
		if int(i) >= len(m.Positions) {
			t.Fatalf("index %d out of range (%d vertices)", i, len(m.Positions))
		}
	}
}

func TestSurfaceNets_Sphere(t *testing.T) {
	extent := grid.NewExtent3i(grid.Point3i{X: -12, Y: -12, Z: -12}, grid.Uniform3i(25))
	sdf := sampleSphere(extent, 8)

	var buf SurfaceNetsBuffer
	SurfaceNets(sdf, extent, &buf)

	if buf.Mesh.IsEmpty() {
		t.Fatalf("sphere extraction produced no triangles")
	}
	checkMeshInvariants(t, &buf.Mesh)

	for i, p := range buf.Mesh.Positions {
		r := math32.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		if math32.Abs(r-8) > 1 {
			t.Fatalf("vertex %d at radius %v, want 8 +- 1", i, r)
		}
		// Normals of a sphere point radially outward.
		n := buf.Mesh.Normals[i]
		dot := (n[0]*p[0] + n[1]*p[1] + n[2]*p[2]) / r
		if dot < 0.8 {
			t.Fatalf("vertex %d normal not radial: dot %v", i, dot)
		}
	}
}

func TestSurfaceNets_NoCrossingIsEmpty(t *testing.T) {
	extent := grid.NewExtent3i(grid.Point3i{X: 0, Y: 0, Z: 0}, grid.Uniform3i(10))
	sdf := grid.FillArray3(extent, math32.MaxFloat32)

	var buf SurfaceNetsBuffer
	SurfaceNets(sdf, extent, &buf)
	if !buf.Mesh.IsEmpty() {
		t.Fatalf("all-ambient field produced %d triangles", buf.Mesh.TriangleCount())
	}
	if buf.Mesh.VertexCount() != 0 {
		t.Fatalf("all-ambient field produced %d vertices", buf.Mesh.VertexCount())
	}
}

func TestSurfaceNets_BufferReuseClears(t *testing.T) {
	extent := grid.NewExtent3i(grid.Point3i{X: -6, Y: -6, Z: -6}, grid.Uniform3i(13))
	sdf := sampleSphere(extent, 4)

	var buf SurfaceNetsBuffer
	SurfaceNets(sdf, extent, &buf)
	first := buf.Mesh.VertexCount()
	if first == 0 {
		t.Fatalf("expected vertices on first extraction")
	}

	// Re-extracting the same field must not accumulate geometry.
	SurfaceNets(sdf, extent, &buf)
	if buf.Mesh.VertexCount() != first {
		t.Fatalf("reuse accumulated vertices: got %d want %d", buf.Mesh.VertexCount(), first)
	}

	// And a crossing-free field must leave it empty.
	empty := grid.FillArray3(extent, 1)
	SurfaceNets(empty, extent, &buf)
	if !buf.Mesh.IsEmpty() {
		t.Fatalf("buffer kept stale triangles after empty extraction")
	}
}
