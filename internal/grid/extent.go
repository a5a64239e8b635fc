package grid

// Extent3i is an axis-aligned box of lattice points, described by its
// minimum corner and shape. The maximum contained point is Min+Shape-1.
type Extent3i struct {
	Min   Point3i
	Shape Point3i
}

func NewExtent3i(min, shape Point3i) Extent3i {
	return Extent3i{Min: min, Shape: shape}
}

// Max returns the greatest lattice point contained in the extent.
func (e Extent3i) Max() Point3i {
	return Point3i{e.Min.X + e.Shape.X - 1, e.Min.Y + e.Shape.Y - 1, e.Min.Z + e.Shape.Z - 1}
}

// LUB is the least point strictly above the extent on every axis (Min+Shape).
func (e Extent3i) LUB() Point3i {
	return e.Min.Add(e.Shape)
}

func (e Extent3i) Volume() int {
	if e.Shape.X <= 0 || e.Shape.Y <= 0 || e.Shape.Z <= 0 {
		return 0
	}
	return e.Shape.X * e.Shape.Y * e.Shape.Z
}

func (e Extent3i) Contains(p Point3i) bool {
	lub := e.LUB()
	return p.X >= e.Min.X && p.X < lub.X &&
		p.Y >= e.Min.Y && p.Y < lub.Y &&
		p.Z >= e.Min.Z && p.Z < lub.Z
}

// Padded grows the extent by n cells on every face.
func (e Extent3i) Padded(n int) Extent3i {
	return Extent3i{
		Min:   e.Min.Sub(Uniform3i(n)),
		Shape: e.Shape.Add(Uniform3i(2 * n)),
	}
}

// AddToShape grows the max corner by p, leaving the min corner fixed.
func (e Extent3i) AddToShape(p Point3i) Extent3i {
	return Extent3i{Min: e.Min, Shape: e.Shape.Add(p)}
}

// Intersection clips the extent to other. The result may be empty
// (zero or negative shape on some axis collapses to zero volume).
func (e Extent3i) Intersection(other Extent3i) Extent3i {
	min := Point3i{
		maxi(e.Min.X, other.Min.X),
		maxi(e.Min.Y, other.Min.Y),
		maxi(e.Min.Z, other.Min.Z),
	}
	alub := e.LUB()
	blub := other.LUB()
	lub := Point3i{mini(alub.X, blub.X), mini(alub.Y, blub.Y), mini(alub.Z, blub.Z)}
	return Extent3i{
		Min:   min,
		Shape: Point3i{maxi(lub.X-min.X, 0), maxi(lub.Y-min.Y, 0), maxi(lub.Z-min.Z, 0)},
	}
}

// ForEach visits every lattice point, x fastest, then y, then z.
func (e Extent3i) ForEach(f func(Point3i)) {
	lub := e.LUB()
	for z := e.Min.Z; z < lub.Z; z++ {
		for y := e.Min.Y; y < lub.Y; y++ {
			for x := e.Min.X; x < lub.X; x++ {
				f(Point3i{x, y, z})
			}
		}
	}
}

// Extent2i is the 2D counterpart of Extent3i.
type Extent2i struct {
	Min   Point2i
	Shape Point2i
}

func NewExtent2i(min, shape Point2i) Extent2i {
	return Extent2i{Min: min, Shape: shape}
}

func (e Extent2i) Max() Point2i {
	return Point2i{e.Min.X + e.Shape.X - 1, e.Min.Y + e.Shape.Y - 1}
}

func (e Extent2i) LUB() Point2i {
	return e.Min.Add(e.Shape)
}

func (e Extent2i) Volume() int {
	if e.Shape.X <= 0 || e.Shape.Y <= 0 {
		return 0
	}
	return e.Shape.X * e.Shape.Y
}

func (e Extent2i) Contains(p Point2i) bool {
	lub := e.LUB()
	return p.X >= e.Min.X && p.X < lub.X && p.Y >= e.Min.Y && p.Y < lub.Y
}

func (e Extent2i) Padded(n int) Extent2i {
	return Extent2i{
		Min:   e.Min.Sub(Uniform2i(n)),
		Shape: e.Shape.Add(Uniform2i(2 * n)),
	}
}

func (e Extent2i) AddToShape(p Point2i) Extent2i {
	return Extent2i{Min: e.Min, Shape: e.Shape.Add(p)}
}

func (e Extent2i) Intersection(other Extent2i) Extent2i {
	min := Point2i{maxi(e.Min.X, other.Min.X), maxi(e.Min.Y, other.Min.Y)}
	alub := e.LUB()
	blub := other.LUB()
	lub := Point2i{mini(alub.X, blub.X), mini(alub.Y, blub.Y)}
	return Extent2i{
		Min:   min,
		Shape: Point2i{maxi(lub.X-min.X, 0), maxi(lub.Y-min.Y, 0)},
	}
}

// ForEach visits every lattice point, x fastest, then y.
func (e Extent2i) ForEach(f func(Point2i)) {
	lub := e.LUB()
	for y := e.Min.Y; y < lub.Y; y++ {
		for x := e.Min.X; x < lub.X; x++ {
			f(Point2i{x, y})
		}
	}
}
