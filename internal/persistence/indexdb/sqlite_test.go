package indexdb

import (
	"path/filepath"
	"testing"
	"time"

	"isoforge.dev/internal/gen"
)

func TestSQLiteIndex_RecordAndRecent(t *testing.T) {
	dir := t.TempDir()
	idx, err := OpenSQLite(filepath.Join(dir, "runs.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer idx.Close()

	idx.RecordGeneration(gen.Report{Shape: "sphere", ShapeIndex: 2, Chunks: 512, EmptyChunks: 400, Vertices: 1000, Triangles: 1800, Duration: 12 * time.Millisecond})
	idx.RecordGeneration(gen.Report{Shape: "wave", ShapeIndex: 4, Chunks: 64, Vertices: 2000, Triangles: 3600, Duration: 3 * time.Millisecond})
	idx.Flush()
	// Flush drains the queue; give the writer a beat to finish the last insert.
	time.Sleep(50 * time.Millisecond)

	rows, err := idx.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("row count: got %d want 2", len(rows))
	}
	if rows[0].Shape != "wave" || rows[1].Shape != "sphere" {
		t.Fatalf("order: got %s,%s want wave,sphere", rows[0].Shape, rows[1].Shape)
	}
	if rows[1].Chunks != 512 || rows[1].EmptyChunks != 400 {
		t.Fatalf("sphere row: %+v", rows[1])
	}
}
