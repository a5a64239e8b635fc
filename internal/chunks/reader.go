package chunks

import "isoforge.dev/internal/grid"

// Reader3 reads a Map3 through a cache of decompressed chunks. A reader is
// scoped to one sampling pass; it must not be retained once the pass ends,
// or decompressed chunks accumulate.
type Reader3 struct {
	m     *Map3
	cache map[Key3][]float32
}

func (m *Map3) Reader() *Reader3 {
	return &Reader3{m: m, cache: map[Key3][]float32{}}
}

// Read returns the sample at p, or the ambient value if the containing
// chunk was never created.
func (r *Reader3) Read(p grid.Point3i) float32 {
	k := r.m.KeyForPoint(p)
	samples, ok := r.cache[k]
	if !ok {
		if _, created := r.m.chunks[k]; !created {
			return r.m.ambient
		}
		samples = r.m.decompress(k)
		r.cache[k] = samples
	}
	arr := grid.Array3{Extent: r.m.ExtentForChunk(k), Values: samples}
	return arr.Get(p)
}

// ReadExtent populates dst with the stored sample at every point of its
// extent. This is the chunked sampler: every point resolves, to ambient
// when uncovered.
func (r *Reader3) ReadExtent(dst *grid.Array3) {
	dst.Extent.ForEach(func(p grid.Point3i) {
		dst.Set(p, r.Read(p))
	})
}

// Reader2 is the 2D counterpart of Reader3.
type Reader2 struct {
	m     *Map2
	cache map[Key2][]float32
}

func (m *Map2) Reader() *Reader2 {
	return &Reader2{m: m, cache: map[Key2][]float32{}}
}

func (r *Reader2) Read(p grid.Point2i) float32 {
	k := r.m.KeyForPoint(p)
	samples, ok := r.cache[k]
	if !ok {
		if _, created := r.m.chunks[k]; !created {
			return r.m.ambient
		}
		samples = r.m.decompress(k)
		r.cache[k] = samples
	}
	arr := grid.Array2{Extent: r.m.ExtentForChunk(k), Values: samples}
	return arr.Get(p)
}

func (r *Reader2) ReadExtent(dst *grid.Array2) {
	dst.Extent.ForEach(func(p grid.Point2i) {
		dst.Set(p, r.Read(p))
	})
}
