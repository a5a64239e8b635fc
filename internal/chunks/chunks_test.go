package chunks

import (
	"testing"

	"github.com/klauspost/compress/zstd"

	"isoforge.dev/internal/grid"
)

func newTestMap3(t *testing.T, ambient float32) *Map3 {
	t.Helper()
	m, err := NewMap3(grid.Uniform3i(16), ambient, zstd.SpeedDefault)
	if err != nil {
		t.Fatalf("NewMap3: %v", err)
	}
	return m
}

func TestMap3_WriteReadRoundTrip(t *testing.T) {
	m := newTestMap3(t, 99)
	extent := grid.NewExtent3i(grid.Point3i{X: -10, Y: -10, Z: -10}, grid.Uniform3i(20))
	eval := func(p grid.Point3i) float32 {
		return float32(p.X + 100*p.Y + 10000*p.Z)
	}
	m.WriteExtent(extent, eval)

	r := m.Reader()
	extent.ForEach(func(p grid.Point3i) {
		if got, want := r.Read(p), eval(p); got != want {
			t.Fatalf("read %v: got %v want %v", p, got, want)
		}
	})
}

func TestMap3_AmbientOutsideWrittenExtent(t *testing.T) {
	m := newTestMap3(t, 42)
	extent := grid.NewExtent3i(grid.Point3i{X: 0, Y: 0, Z: 0}, grid.Uniform3i(8))
	m.WriteExtent(extent, func(grid.Point3i) float32 { return 1 })

	r := m.Reader()
	// Same chunk, outside the written extent: chunk exists, cell untouched.
	if got := r.Read(grid.Point3i{X: 12, Y: 12, Z: 12}); got != 42 {
		t.Fatalf("untouched cell in written chunk: got %v want 42", got)
	}
	// A chunk never created at all.
	if got := r.Read(grid.Point3i{X: 100, Y: 100, Z: 100}); got != 42 {
		t.Fatalf("uncreated chunk: got %v want 42", got)
	}
}

func TestMap3_ChunkKeysSortedAndCovering(t *testing.T) {
	m := newTestMap3(t, 0)
	extent := grid.NewExtent3i(grid.Point3i{X: -50, Y: -50, Z: -50}, grid.Uniform3i(100))
	m.WriteExtent(extent, func(grid.Point3i) float32 { return 1 })

	keys := m.ChunkKeys()
	// [-50,49] spans chunk coords -4..3 on every axis.
	if len(keys) != 8*8*8 {
		t.Fatalf("chunk count: got %d want %d", len(keys), 8*8*8)
	}
	for i := 1; i < len(keys); i++ {
		a, b := keys[i-1], keys[i]
		less := a.Z < b.Z || (a.Z == b.Z && (a.Y < b.Y || (a.Y == b.Y && a.X < b.X)))
		if !less {
			t.Fatalf("keys not sorted at %d: %v then %v", i, a, b)
		}
	}
	for _, k := range keys {
		if m.ExtentForChunk(k).Intersection(extent).Volume() == 0 {
			t.Fatalf("chunk %v does not intersect written extent", k)
		}
	}
}

func TestReader3_ReadExtentThroughChunkBorders(t *testing.T) {
	m := newTestMap3(t, -1)
	domain := grid.NewExtent3i(grid.Point3i{X: 0, Y: 0, Z: 0}, grid.Uniform3i(32))
	eval := func(p grid.Point3i) float32 { return float32(p.X) }
	m.WriteExtent(domain, eval)

	// A padded chunk extent straddles four chunks and the domain boundary.
	padded := PaddedForSurfaceNets(m.ExtentForChunk(Key3{0, 0, 0}))
	dst := grid.FillArray3(padded, 0)
	m.Reader().ReadExtent(dst)

	padded.ForEach(func(p grid.Point3i) {
		want := float32(-1)
		if domain.Contains(p) {
			want = eval(p)
		}
		if got := dst.Get(p); got != want {
			t.Fatalf("sample %v: got %v want %v", p, got, want)
		}
	})
}

func TestMap2_WriteReadAndKeys(t *testing.T) {
	m, err := NewMap2(grid.Uniform2i(16), 0, zstd.SpeedDefault)
	if err != nil {
		t.Fatalf("NewMap2: %v", err)
	}
	extent := grid.NewExtent2i(grid.Point2i{X: -16, Y: -16}, grid.Uniform2i(32))
	eval := func(p grid.Point2i) float32 { return float32(p.X - p.Y) }
	m.WriteExtent(extent, eval)

	if got := len(m.ChunkKeys()); got != 4 {
		t.Fatalf("chunk count: got %d want 4", got)
	}
	r := m.Reader()
	extent.ForEach(func(p grid.Point2i) {
		if got, want := r.Read(p), eval(p); got != want {
			t.Fatalf("read %v: got %v want %v", p, got, want)
		}
	})
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 16, 0}, {15, 16, 0}, {16, 16, 1}, {-1, 16, -1}, {-16, 16, -1}, {-17, 16, -2},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.want {
			t.Fatalf("floorDiv(%d,%d): got %d want %d", c.a, c.b, got, c.want)
		}
	}
}
