// Package field holds the closed-form scalar fields the generator samples.
// Volumetric fields follow the signed-distance convention: negative inside
// the solid, zero on the boundary, positive outside. Plane and Cube are
// quasi-distances, not true Euclidean distances, but keep the sign
// convention. Heightfields carry no sign convention at all; the value is an
// elevation.
package field

import (
	"github.com/chewxy/math32"

	"isoforge.dev/internal/grid"
)

// Sdf evaluates a signed (or quasi) distance at a 3D lattice point.
type Sdf interface {
	Eval(p grid.Point3i) float32
}

// HeightMap evaluates an elevation at a 2D lattice point.
type HeightMap interface {
	Eval(p grid.Point2i) float32
}

type Sphere struct {
	Center [3]float32
	Radius float32
}

func (s Sphere) Eval(p grid.Point3i) float32 {
	x, y, z := p.Float()
	dx := x - s.Center[0]
	dy := y - s.Center[1]
	dz := z - s.Center[2]
	return math32.Sqrt(dx*dx+dy*dy+dz*dz) - s.Radius
}

// Plane is a slab: its zero set is two parallel planes at distance
// sqrt(Thickness) from the plane through the origin with normal Normal.
type Plane struct {
	Normal    [3]float32
	Thickness float32
}

func (s Plane) Eval(p grid.Point3i) float32 {
	x, y, z := p.Float()
	d := x*s.Normal[0] + y*s.Normal[1] + z*s.Normal[2]
	return d*d - s.Thickness
}

type Cube struct {
	Center     [3]float32
	HalfExtent float32
}

func (s Cube) Eval(p grid.Point3i) float32 {
	x, y, z := p.Float()
	dx := math32.Abs(x - s.Center[0])
	dy := math32.Abs(y - s.Center[1])
	dz := math32.Abs(z - s.Center[2])
	return math32.Max(dx, math32.Max(dy, dz)) - s.HalfExtent
}

// Torus lies in the XZ plane, centered at the origin.
type Torus struct {
	MajorRadius float32
	MinorRadius float32
}

func (s Torus) Eval(p grid.Point3i) float32 {
	x, y, z := p.Float()
	qx := math32.Sqrt(x*x+z*z) - s.MajorRadius
	return math32.Sqrt(qx*qx+y*y) - s.MinorRadius
}

// HeightWave is a fixed sum of axis-aligned waves with range [-10, 30].
type HeightWave struct{}

func (HeightWave) Eval(p grid.Point2i) float32 {
	x, y := p.Float()
	return 10 * (1 + math32.Cos(0.1*x) + math32.Sin(0.1*y))
}
