package grid

import "testing"

func TestExtent3i_Padded(t *testing.T) {
	e := NewExtent3i(Point3i{0, 0, 0}, Uniform3i(16))
	p := e.Padded(1)
	if p.Min != (Point3i{-1, -1, -1}) {
		t.Fatalf("padded min: got %v want {-1 -1 -1}", p.Min)
	}
	if p.Shape != (Point3i{18, 18, 18}) {
		t.Fatalf("padded shape: got %v want {18 18 18}", p.Shape)
	}
	if p.Volume() < e.Volume() {
		t.Fatalf("padding shrank the extent: %d < %d", p.Volume(), e.Volume())
	}
}

func TestExtent3i_IntersectionNeverGrows(t *testing.T) {
	e := NewExtent3i(Point3i{-8, -8, -8}, Uniform3i(32))
	domain := NewExtent3i(Point3i{0, 0, 0}, Uniform3i(16))
	got := e.Intersection(domain)
	if got.Volume() > e.Volume() || got.Volume() > domain.Volume() {
		t.Fatalf("intersection grew: %d", got.Volume())
	}
	if got.Min != (Point3i{0, 0, 0}) || got.Shape != (Point3i{16, 16, 16}) {
		t.Fatalf("intersection: got min=%v shape=%v", got.Min, got.Shape)
	}
}

func TestExtent3i_PadThenClipIdempotent(t *testing.T) {
	// A domain that already contains the padded extent leaves it unchanged.
	chunk := NewExtent3i(Point3i{16, 16, 16}, Uniform3i(16))
	domain := NewExtent3i(Point3i{-50, -50, -50}, Uniform3i(100))
	padded := chunk.Padded(1)
	clipped := padded.Intersection(domain)
	if clipped != padded {
		t.Fatalf("clip changed contained extent: got %v want %v", clipped, padded)
	}
}

func TestExtent3i_DisjointIntersectionEmpty(t *testing.T) {
	a := NewExtent3i(Point3i{0, 0, 0}, Uniform3i(4))
	b := NewExtent3i(Point3i{10, 10, 10}, Uniform3i(4))
	if v := a.Intersection(b).Volume(); v != 0 {
		t.Fatalf("disjoint intersection volume: got %d want 0", v)
	}
}

func TestExtent2i_HeightMapPadding(t *testing.T) {
	chunk := NewExtent2i(Point2i{32, 32}, Uniform2i(16))
	domain := NewExtent2i(Point2i{-50, -50}, Uniform2i(100))
	padded := chunk.Padded(1).AddToShape(Uniform2i(1)).Intersection(domain)
	// 16 + 2 (pad) + 1 (shape extension), fully inside the domain.
	if padded.Shape != (Point2i{19, 19}) {
		t.Fatalf("padded shape: got %v want {19 19}", padded.Shape)
	}
	if padded.Min != (Point2i{31, 31}) {
		t.Fatalf("padded min: got %v want {31 31}", padded.Min)
	}

	// At the domain boundary the clip shrinks asymmetrically.
	edge := NewExtent2i(Point2i{48, 48}, Uniform2i(16))
	clipped := edge.Padded(1).AddToShape(Uniform2i(1)).Intersection(domain)
	if clipped.Max().X > domain.Max().X || clipped.Max().Y > domain.Max().Y {
		t.Fatalf("clipped extent exceeds domain: %v", clipped)
	}
}

func TestExtent3i_ForEachOrderAndCount(t *testing.T) {
	e := NewExtent3i(Point3i{1, 2, 3}, Point3i{2, 2, 2})
	var pts []Point3i
	e.ForEach(func(p Point3i) { pts = append(pts, p) })
	if len(pts) != e.Volume() {
		t.Fatalf("visited %d points, want %d", len(pts), e.Volume())
	}
	if pts[0] != e.Min {
		t.Fatalf("first point: got %v want %v", pts[0], e.Min)
	}
	if pts[1] != (Point3i{2, 2, 3}) {
		t.Fatalf("x should vary fastest: got %v", pts[1])
	}
	if pts[len(pts)-1] != e.Max() {
		t.Fatalf("last point: got %v want %v", pts[len(pts)-1], e.Max())
	}
}
