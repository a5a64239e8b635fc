package mesh

import (
	"github.com/chewxy/math32"

	"isoforge.dev/internal/grid"
)

// SurfaceNetsBuffer holds the output mesh plus per-cell scratch reused
// across extractions. Callers pass the same buffer to every SurfaceNets
// call; it is logically cleared on entry and never shrinks.
type SurfaceNetsBuffer struct {
	Mesh PosNormMesh

	// cellVertex maps each cell (linear index over the cell grid) to its
	// mesh vertex, or -1 when the cell has no surface crossing.
	cellVertex []int32
}

// Corner order: bit 0 = +x, bit 1 = +y, bit 2 = +z.
var cubeEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // x edges
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // y edges
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // z edges
}

// SurfaceNets extracts the zero crossing of sdf over extent into buf using
// naive surface nets: one vertex per sign-crossing cell, placed at the mean
// of that cell's edge crossings, and one quad per crossing lattice edge.
// The input array is only read during the call. An extent with no crossing
// leaves buf.Mesh with an empty index list.
func SurfaceNets(sdf *grid.Array3, extent grid.Extent3i, buf *SurfaceNetsBuffer) {
	buf.Mesh.Clear()

	// Cells are addressed by their minimum corner; the last lattice point
	// on each axis has no cell of its own.
	cells := grid.NewExtent3i(extent.Min, extent.Shape.Sub(grid.Uniform3i(1)))
	if cells.Volume() <= 0 {
		return
	}
	if cap(buf.cellVertex) < cells.Volume() {
		buf.cellVertex = make([]int32, cells.Volume())
	}
	buf.cellVertex = buf.cellVertex[:cells.Volume()]
	for i := range buf.cellVertex {
		buf.cellVertex[i] = -1
	}

	cellIndex := func(p grid.Point3i) int {
		l := p.Sub(cells.Min)
		return l.X + l.Y*cells.Shape.X + l.Z*cells.Shape.X*cells.Shape.Y
	}

	cells.ForEach(func(p grid.Point3i) {
		var d [8]float32
		for c := 0; c < 8; c++ {
			d[c] = sdf.Get(grid.Point3i{
				X: p.X + (c & 1),
				Y: p.Y + (c >> 1 & 1),
				Z: p.Z + (c >> 2 & 1),
			})
		}
		pos, norm, crossed := estimateSurface(p, d)
		if !crossed {
			return
		}
		buf.cellVertex[cellIndex(p)] = int32(len(buf.Mesh.Positions))
		buf.Mesh.Positions = append(buf.Mesh.Positions, pos)
		buf.Mesh.Normals = append(buf.Mesh.Normals, norm)
	})

	// One quad per lattice edge with a sign change, joining the four cells
	// that share the edge. Edges on the low faces of the cell grid belong
	// to the neighboring chunk's extraction.
	axes := [3]grid.Point3i{{X: 1}, {Y: 1}, {Z: 1}}
	cells.ForEach(func(p grid.Point3i) {
		v0 := buf.cellVertex[cellIndex(p)]
		if v0 < 0 {
			return
		}
		d0 := sdf.Get(p)
		inside0 := d0 < 0
		for axis, unit := range axes {
			d1 := sdf.Get(p.Add(unit))
			if (d1 < 0) == inside0 {
				continue
			}
			u, v := axes[(axis+1)%3], axes[(axis+2)%3]
			pu := p.Sub(u)
			pv := p.Sub(v)
			puv := pu.Sub(v)
			if !cells.Contains(pu) || !cells.Contains(pv) {
				continue
			}
			vu := buf.cellVertex[cellIndex(pu)]
			vv := buf.cellVertex[cellIndex(pv)]
			vuv := buf.cellVertex[cellIndex(puv)]
			if vu < 0 || vv < 0 || vuv < 0 {
				continue
			}
			if inside0 {
				buf.quad(uint32(v0), uint32(vu), uint32(vuv), uint32(vv))
			} else {
				buf.quad(uint32(v0), uint32(vv), uint32(vuv), uint32(vu))
			}
		}
	})
}

func (b *SurfaceNetsBuffer) quad(v0, v1, v2, v3 uint32) {
	b.Mesh.Indices = append(b.Mesh.Indices, v0, v1, v2, v0, v2, v3)
}

// estimateSurface places a vertex at the mean of the cell's edge crossings
// and derives a normal from the corner samples' gradient. It reports false
// when the eight corners share one sign.
func estimateSurface(cell grid.Point3i, d [8]float32) (pos, norm [3]float32, crossed bool) {
	var centroid [3]float32
	count := 0
	for _, e := range cubeEdges {
		a, b := d[e[0]], d[e[1]]
		if (a < 0) == (b < 0) {
			continue
		}
		t := a / (a - b)
		for i := 0; i < 3; i++ {
			c0 := float32(e[0] >> i & 1)
			c1 := float32(e[1] >> i & 1)
			centroid[i] += c0 + t*(c1-c0)
		}
		count++
	}
	if count == 0 {
		return pos, norm, false
	}

	inv := 1 / float32(count)
	x, y, z := cell.Float()
	pos = [3]float32{x + centroid[0]*inv, y + centroid[1]*inv, z + centroid[2]*inv}

	// Box-filter gradient over the corner samples.
	var g [3]float32
	for c := 0; c < 8; c++ {
		for i := 0; i < 3; i++ {
			if c>>i&1 == 1 {
				g[i] += d[c]
			} else {
				g[i] -= d[c]
			}
		}
	}
	if l := math32.Sqrt(g[0]*g[0] + g[1]*g[1] + g[2]*g[2]); l > 0 {
		norm = [3]float32{g[0] / l, g[1] / l, g[2] / l}
	}
	return pos, norm, true
}
