package mesh

import (
	"github.com/chewxy/math32"

	"isoforge.dev/internal/grid"
)

// HeightMapMeshBuffer is the reusable output buffer for heightfield
// triangulation.
type HeightMapMeshBuffer struct {
	Mesh PosNormMesh
}

// TriangulateHeightMap meshes a heightfield: one vertex per sample at
// (x, height, y), two triangles per interior cell. The 2D lattice's Y axis
// maps to world Z. Normals come from finite differences, one-sided at the
// extent border. An extent thinner than two samples on either axis yields
// an empty index list.
func TriangulateHeightMap(height *grid.Array2, extent grid.Extent2i, buf *HeightMapMeshBuffer) {
	buf.Mesh.Clear()
	if extent.Volume() <= 0 {
		return
	}

	vertexIndex := func(p grid.Point2i) uint32 {
		l := p.Sub(extent.Min)
		return uint32(l.X + l.Y*extent.Shape.X)
	}

	extent.ForEach(func(p grid.Point2i) {
		h := height.Get(p)
		x, y := p.Float()
		buf.Mesh.Positions = append(buf.Mesh.Positions, [3]float32{x, h, y})

		// Central differences where both neighbors exist, one-sided at
		// the border. Step length follows the samples used.
		dx, sx := slope(height, p, grid.Point2i{X: 1}, extent)
		dy, sy := slope(height, p, grid.Point2i{Y: 1}, extent)
		n := [3]float32{-dx / sx, 1, -dy / sy}
		l := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		buf.Mesh.Normals = append(buf.Mesh.Normals, [3]float32{n[0] / l, n[1] / l, n[2] / l})
	})

	cells := grid.NewExtent2i(extent.Min, extent.Shape.Sub(grid.Uniform2i(1)))
	cells.ForEach(func(p grid.Point2i) {
		v00 := vertexIndex(p)
		v10 := vertexIndex(p.Add(grid.Point2i{X: 1}))
		v01 := vertexIndex(p.Add(grid.Point2i{Y: 1}))
		v11 := vertexIndex(p.Add(grid.Point2i{X: 1, Y: 1}))
		buf.Mesh.Indices = append(buf.Mesh.Indices, v00, v01, v10, v10, v01, v11)
	})
}

// slope returns the height delta along unit and the lattice span it covers
// (2 for central differences, 1 one-sided).
func slope(height *grid.Array2, p, unit grid.Point2i, extent grid.Extent2i) (float32, float32) {
	fwd := p.Add(unit)
	back := p.Sub(unit)
	hasFwd := extent.Contains(fwd)
	hasBack := extent.Contains(back)
	switch {
	case hasFwd && hasBack:
		return height.Get(fwd) - height.Get(back), 2
	case hasFwd:
		return height.Get(fwd) - height.Get(p), 1
	case hasBack:
		return height.Get(p) - height.Get(back), 1
	default:
		return 0, 1
	}
}
