// Package gen drives the sampling and extraction pipeline: pick a shape,
// rasterize its field into a chunked map, then walk every chunk and extract
// a mesh from its padded sample window. One regeneration is synchronous;
// nothing observes the shared buffers mid-run.
package gen

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/klauspost/compress/zstd"

	"isoforge.dev/internal/chunks"
	"isoforge.dev/internal/field"
	"isoforge.dev/internal/grid"
	"isoforge.dev/internal/mesh"
)

// AmbientSdf fills volumetric cells outside every written extent. The
// maximum float is "outside all solids": it can never read as inside.
const AmbientSdf = math32.MaxFloat32

// AmbientHeight is the neutral elevation for unsampled heightfield cells.
const AmbientHeight float32 = 0

type Config struct {
	// Domain3 bounds volumetric sampling, Domain2 heightfield sampling.
	Domain3 grid.Extent3i
	Domain2 grid.Extent2i

	// ChunkEdge is the chunk size along every axis.
	ChunkEdge int

	ZstdLevel zstd.EncoderLevel
}

// DefaultConfig samples [-50,50) on every axis with 16-cell chunks.
func DefaultConfig() Config {
	return Config{
		Domain3:   grid.NewExtent3i(grid.Uniform3i(-50), grid.Uniform3i(100)),
		Domain2:   grid.NewExtent2i(grid.Uniform2i(-50), grid.Uniform2i(100)),
		ChunkEdge: 16,
		ZstdLevel: zstd.SpeedDefault,
	}
}

// Report summarizes one regeneration for logs and the run index.
type Report struct {
	Shape       string        `json:"shape"`
	ShapeIndex  int           `json:"shape_index"`
	Chunks      int           `json:"chunks"`
	EmptyChunks int           `json:"empty_chunks"`
	Vertices    int           `json:"vertices"`
	Triangles   int           `json:"triangles"`
	Duration    time.Duration `json:"duration_ns"`
}

// State owns the current shape selection, the handles of the meshes built
// by the last regeneration, and the two reusable extraction buffers.
// Created once at startup and mutated only by Regenerate.
type State struct {
	cfg        Config
	shapeIndex int
	handles    []Handle

	surfaceNetsBuf mesh.SurfaceNetsBuffer
	heightMapBuf   mesh.HeightMapMeshBuffer
}

func NewState(cfg Config) *State {
	return &State{cfg: cfg}
}

func (s *State) ShapeIndex() int { return s.shapeIndex }

func (s *State) CurrentShape() field.Shape { return field.ChooseShape(s.shapeIndex) }

// Next advances to the following shape (wrapping) and regenerates.
func (s *State) Next(scene Scene) (Report, error) {
	s.shapeIndex = wrap(s.shapeIndex+1, field.NumShapes)
	return s.Regenerate(scene)
}

// Prev steps back to the previous shape (wrapping) and regenerates.
func (s *State) Prev(scene Scene) (Report, error) {
	s.shapeIndex = wrap(s.shapeIndex-1, field.NumShapes)
	return s.Regenerate(scene)
}

// SetShape selects a shape by index and regenerates. The index must be in
// range; ChooseShape panics otherwise.
func (s *State) SetShape(index int, scene Scene) (Report, error) {
	s.shapeIndex = index
	return s.Regenerate(scene)
}

// Regenerate tears down exactly the meshes created by the previous run,
// then rebuilds chunk by chunk for the current shape.
func (s *State) Regenerate(scene Scene) (Report, error) {
	for _, h := range s.handles {
		scene.DestroyMesh(h)
	}
	s.handles = s.handles[:0]

	start := time.Now()
	shape := field.ChooseShape(s.shapeIndex)
	var (
		rep Report
		err error
	)
	switch shape.Category {
	case field.CategorySdf:
		rep, err = s.generateFromSdf(shape.Sdf, scene)
	case field.CategoryHeightMap:
		rep, err = s.generateFromHeightMap(shape.HeightMap, scene)
	default:
		panic(fmt.Sprintf("bad shape category: %d", shape.Category))
	}
	if err != nil {
		return Report{}, err
	}
	rep.Shape = shape.Name
	rep.ShapeIndex = s.shapeIndex
	rep.Duration = time.Since(start)
	return rep, nil
}

func (s *State) generateFromSdf(sdf field.Sdf, scene Scene) (Report, error) {
	m, err := chunks.NewMap3(grid.Uniform3i(s.cfg.ChunkEdge), AmbientSdf, s.cfg.ZstdLevel)
	if err != nil {
		return Report{}, fmt.Errorf("chunk map: %w", err)
	}
	m.WriteExtent(s.cfg.Domain3, sdf.Eval)

	var rep Report
	reader := m.Reader()
	for _, key := range m.ChunkKeys() {
		rep.Chunks++
		padded := chunks.PaddedForSurfaceNets(m.ExtentForChunk(key))
		local := grid.FillArray3(padded, 0)
		reader.ReadExtent(local)

		mesh.SurfaceNets(local, padded, &s.surfaceNetsBuf)
		if s.surfaceNetsBuf.Mesh.IsEmpty() {
			// Common and expected: most chunks of a sparse shape hold
			// no surface crossing.
			rep.EmptyChunks++
			continue
		}
		rep.Vertices += s.surfaceNetsBuf.Mesh.VertexCount()
		rep.Triangles += s.surfaceNetsBuf.Mesh.TriangleCount()
		s.handles = append(s.handles, scene.CreateMesh(&s.surfaceNetsBuf.Mesh))
	}
	return rep, nil
}

func (s *State) generateFromHeightMap(hm field.HeightMap, scene Scene) (Report, error) {
	m, err := chunks.NewMap2(grid.Uniform2i(s.cfg.ChunkEdge), AmbientHeight, s.cfg.ZstdLevel)
	if err != nil {
		return Report{}, fmt.Errorf("chunk map: %w", err)
	}
	m.WriteExtent(s.cfg.Domain2, hm.Eval)

	var rep Report
	reader := m.Reader()
	for _, key := range m.ChunkKeys() {
		rep.Chunks++
		padded := chunks.PaddedForHeightMap(m.ExtentForChunk(key), s.cfg.Domain2)
		if padded.Volume() == 0 {
			rep.EmptyChunks++
			continue
		}
		local := grid.FillArray2(padded, 0)
		reader.ReadExtent(local)

		mesh.TriangulateHeightMap(local, padded, &s.heightMapBuf)
		if s.heightMapBuf.Mesh.IsEmpty() {
			rep.EmptyChunks++
			continue
		}
		rep.Vertices += s.heightMapBuf.Mesh.VertexCount()
		rep.Triangles += s.heightMapBuf.Mesh.TriangleCount()
		s.handles = append(s.handles, scene.CreateMesh(&s.heightMapBuf.Mesh))
	}
	return rep, nil
}

// wrap is a euclidean remainder: wrap(-1, 5) == 4.
func wrap(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
