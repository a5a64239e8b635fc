package chunks

import (
	"testing"

	"isoforge.dev/internal/grid"
)

func TestPaddedForSurfaceNets(t *testing.T) {
	chunk := grid.NewExtent3i(grid.Point3i{X: 16, Y: 0, Z: -16}, grid.Uniform3i(16))
	p := PaddedForSurfaceNets(chunk)
	if p.Shape != grid.Uniform3i(18) {
		t.Fatalf("padded shape: got %v want {18 18 18}", p.Shape)
	}
	if p.Min != (grid.Point3i{X: 15, Y: -1, Z: -17}) {
		t.Fatalf("padded min: got %v", p.Min)
	}
}

func TestPaddedForHeightMap_InteriorAndBoundary(t *testing.T) {
	domain := grid.NewExtent2i(grid.Point2i{X: -50, Y: -50}, grid.Uniform2i(100))

	interior := grid.NewExtent2i(grid.Point2i{X: 0, Y: 0}, grid.Uniform2i(16))
	p := PaddedForHeightMap(interior, domain)
	if p.Min != (grid.Point2i{X: -1, Y: -1}) || p.Shape != grid.Uniform2i(19) {
		t.Fatalf("interior padding: got min=%v shape=%v", p.Min, p.Shape)
	}

	// The chunk row at the domain's max edge loses its extra column to the clip.
	edge := grid.NewExtent2i(grid.Point2i{X: 48, Y: 48}, grid.Uniform2i(16))
	p = PaddedForHeightMap(edge, domain)
	if p.Max().X > domain.Max().X || p.Max().Y > domain.Max().Y {
		t.Fatalf("clipped extent exceeds domain: %v", p)
	}
	if p.Min != (grid.Point2i{X: 47, Y: 47}) {
		t.Fatalf("boundary min: got %v want {47 47}", p.Min)
	}
}
