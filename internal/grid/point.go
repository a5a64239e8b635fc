// Package grid provides integer lattice points, axis-aligned extents and
// dense sample arrays over them. Extents are half-open only in the sense of
// min corner + shape; all iteration covers min..min+shape-1 inclusive.
package grid

type Point2i struct {
	X, Y int
}

type Point3i struct {
	X, Y, Z int
}

func (p Point2i) Add(q Point2i) Point2i {
	return Point2i{p.X + q.X, p.Y + q.Y}
}

func (p Point2i) Sub(q Point2i) Point2i {
	return Point2i{p.X - q.X, p.Y - q.Y}
}

func (p Point3i) Add(q Point3i) Point3i {
	return Point3i{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

func (p Point3i) Sub(q Point3i) Point3i {
	return Point3i{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Float converts a lattice point to the float coordinates passed to fields.
func (p Point2i) Float() (float32, float32) {
	return float32(p.X), float32(p.Y)
}

func (p Point3i) Float() (float32, float32, float32) {
	return float32(p.X), float32(p.Y), float32(p.Z)
}

func Uniform2i(v int) Point2i { return Point2i{v, v} }

func Uniform3i(v int) Point3i { return Point3i{v, v, v} }

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
