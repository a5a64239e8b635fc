package grid

// Array3 is a dense block of float32 samples covering an extent.
// Storage is x fastest, then y, then z (matches Extent3i.ForEach).
type Array3 struct {
	Extent Extent3i
	Values []float32
}

// FillArray3 allocates an array covering extent with every sample set to v.
func FillArray3(extent Extent3i, v float32) *Array3 {
	vals := make([]float32, extent.Volume())
	if v != 0 {
		for i := range vals {
			vals[i] = v
		}
	}
	return &Array3{Extent: extent, Values: vals}
}

func (a *Array3) Index(p Point3i) int {
	l := p.Sub(a.Extent.Min)
	return l.X + l.Y*a.Extent.Shape.X + l.Z*a.Extent.Shape.X*a.Extent.Shape.Y
}

func (a *Array3) Get(p Point3i) float32 {
	return a.Values[a.Index(p)]
}

func (a *Array3) Set(p Point3i, v float32) {
	a.Values[a.Index(p)] = v
}

// Array2 is the 2D counterpart of Array3, x fastest then y.
type Array2 struct {
	Extent Extent2i
	Values []float32
}

func FillArray2(extent Extent2i, v float32) *Array2 {
	vals := make([]float32, extent.Volume())
	if v != 0 {
		for i := range vals {
			vals[i] = v
		}
	}
	return &Array2{Extent: extent, Values: vals}
}

func (a *Array2) Index(p Point2i) int {
	l := p.Sub(a.Extent.Min)
	return l.X + l.Y*a.Extent.Shape.X
}

func (a *Array2) Get(p Point2i) float32 {
	return a.Values[a.Index(p)]
}

func (a *Array2) Set(p Point2i, v float32) {
	a.Values[a.Index(p)] = v
}
