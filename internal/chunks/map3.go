// Package chunks stores scalar samples in fixed-shape chunks, each held
// zstd-compressed until read. Reads go through a per-pass cache of
// decompressed chunks; any cell never written resolves to the map's
// ambient value.
package chunks

import (
	"fmt"
	"sort"

	"github.com/klauspost/compress/zstd"

	"isoforge.dev/internal/grid"
)

// Key3 identifies a chunk by its coordinates in chunk space. The chunk's
// minimum lattice corner is the key scaled by the chunk shape.
type Key3 struct {
	X, Y, Z int
}

// Map3 is a chunked store of 3D float32 samples.
type Map3 struct {
	chunkShape grid.Point3i
	ambient    float32

	enc *zstd.Encoder
	dec *zstd.Decoder

	// Compressed little-endian sample blocks, one per created chunk.
	chunks map[Key3][]byte
}

func NewMap3(chunkShape grid.Point3i, ambient float32, level zstd.EncoderLevel) (*Map3, error) {
	if chunkShape.X <= 0 || chunkShape.Y <= 0 || chunkShape.Z <= 0 {
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
	return &Map3{
		chunkShape: chunkShape,
		ambient:    ambient,
		enc:        enc,
		dec:        dec,
		chunks:     map[Key3][]byte{},
	}, nil
}

func (m *Map3) Ambient() float32 { return m.ambient }

func (m *Map3) ChunkShape() grid.Point3i { return m.chunkShape }

// KeyForPoint returns the key of the chunk containing p.
func (m *Map3) KeyForPoint(p grid.Point3i) Key3 {
	return Key3{
		X: floorDiv(p.X, m.chunkShape.X),
		Y: floorDiv(p.Y, m.chunkShape.Y),
		Z: floorDiv(p.Z, m.chunkShape.Z),
	}
}

// ExtentForChunk returns the chunk's native (unpadded) extent.
func (m *Map3) ExtentForChunk(k Key3) grid.Extent3i {
	min := grid.Point3i{X: k.X * m.chunkShape.X, Y: k.Y * m.chunkShape.Y, Z: k.Z * m.chunkShape.Z}
	return grid.NewExtent3i(min, m.chunkShape)
}

// ChunkKeys returns every created chunk's key in sorted order.
func (m *Map3) ChunkKeys() []Key3 {
	keys := make([]Key3, 0, len(m.chunks))
	for k := range m.chunks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Z != keys[j].Z {
			return keys[i].Z < keys[j].Z
		}
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	return keys
}

// WriteExtent rasterizes eval over every lattice point of extent, creating
// chunks as needed. Cells of a touched chunk outside extent keep their
// previous value (ambient for fresh chunks).
func (m *Map3) WriteExtent(extent grid.Extent3i, eval func(grid.Point3i) float32) {
	lo := m.KeyForPoint(extent.Min)
	hi := m.KeyForPoint(extent.Max())
	for kz := lo.Z; kz <= hi.Z; kz++ {
		for ky := lo.Y; ky <= hi.Y; ky++ {
			for kx := lo.X; kx <= hi.X; kx++ {
				k := Key3{kx, ky, kz}
				chunkExtent := m.ExtentForChunk(k)
				samples := m.decompress(k)
				arr := &grid.Array3{Extent: chunkExtent, Values: samples}
				chunkExtent.Intersection(extent).ForEach(func(p grid.Point3i) {
					arr.Set(p, eval(p))
				})
				m.compress(k, samples)
			}
		}
	}
}

func (m *Map3) chunkVolume() int {
	return m.chunkShape.X * m.chunkShape.Y * m.chunkShape.Z
}

// decompress returns the chunk's samples, or a fresh ambient-filled block
// if the chunk was never written.
func (m *Map3) decompress(k Key3) []float32 {
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
		// Chunks are only ever written by compress below.
		panic(fmt.Sprintf("chunks: corrupt chunk %v: %v", k, err))
	}
	return bytesToFloats(buf)
}

func (m *Map3) compress(k Key3, samples []float32) {
	m.chunks[k] = m.enc.EncodeAll(floatsToBytes(samples), nil)
}
