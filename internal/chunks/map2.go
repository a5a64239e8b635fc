package chunks

import (
	"fmt"
	"sort"

	"github.com/klauspost/compress/zstd"

	"isoforge.dev/internal/grid"
)

// Key2 identifies a 2D chunk by its coordinates in chunk space.
type Key2 struct {
	X, Y int
}

// Map2 is the 2D counterpart of Map3, used for heightfields.
type Map2 struct {
	chunkShape grid.Point2i
	ambient    float32

	enc *zstd.Encoder
	dec *zstd.Decoder

	chunks map[Key2][]byte
}

func NewMap2(chunkShape grid.Point2i, ambient float32, level zstd.EncoderLevel) (*Map2, error) {
	if chunkShape.X <= 0 || chunkShape.Y <= 0 {
		return nil, fmt.Errorf("chunk shape must be positive, got %v", chunkShape)
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	return &Map2{
		chunkShape: chunkShape,
		ambient:    ambient,
		enc:        enc,
		dec:        dec,
		chunks:     map[Key2][]byte{},
	}, nil
}

func (m *Map2) Ambient() float32 { return m.ambient }

func (m *Map2) ChunkShape() grid.Point2i { return m.chunkShape }

func (m *Map2) KeyForPoint(p grid.Point2i) Key2 {
	return Key2{
		X: floorDiv(p.X, m.chunkShape.X),
		Y: floorDiv(p.Y, m.chunkShape.Y),
	}
}

func (m *Map2) ExtentForChunk(k Key2) grid.Extent2i {
	min := grid.Point2i{X: k.X * m.chunkShape.X, Y: k.Y * m.chunkShape.Y}
	return grid.NewExtent2i(min, m.chunkShape)
}

func (m *Map2) ChunkKeys() []Key2 {
	keys := make([]Key2, 0, len(m.chunks))
	for k := range m.chunks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	return keys
}

func (m *Map2) WriteExtent(extent grid.Extent2i, eval func(grid.Point2i) float32) {
	lo := m.KeyForPoint(extent.Min)
	hi := m.KeyForPoint(extent.Max())
	for ky := lo.Y; ky <= hi.Y; ky++ {
		for kx := lo.X; kx <= hi.X; kx++ {
			k := Key2{kx, ky}
			chunkExtent := m.ExtentForChunk(k)
			samples := m.decompress(k)
			arr := &grid.Array2{Extent: chunkExtent, Values: samples}
			chunkExtent.Intersection(extent).ForEach(func(p grid.Point2i) {
				arr.Set(p, eval(p))
			})
			m.compress(k, samples)
		}
	}
}

func (m *Map2) chunkVolume() int {
	return m.chunkShape.X * m.chunkShape.Y
}

func (m *Map2) decompress(k Key2) []float32 {
	raw, ok := m.chunks[k]
	if !ok {
		samples := make([]float32, m.chunkVolume())
		for i := range samples {
			samples[i] = m.ambient
		}
		return samples
	}
	buf, err := m.dec.DecodeAll(raw, nil)
	if err != nil {
		panic(fmt.Sprintf("chunks: corrupt chunk %v: %v", k, err))
	}
	return bytesToFloats(buf)
}

func (m *Map2) compress(k Key2, samples []float32) {
	m.chunks[k] = m.enc.EncodeAll(floatsToBytes(samples), nil)
}
