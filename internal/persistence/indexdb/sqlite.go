// Package indexdb keeps a queryable index of past generation runs in
// SQLite. It is a read-model only: losing it never affects generation.
package indexdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"isoforge.dev/internal/gen"
)

type SQLiteIndex struct {
	db *sql.DB

	ch   chan gen.Report
	wg   sync.WaitGroup
	once sync.Once
}

func OpenSQLite(path string) (*SQLiteIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteIndex{
		db: db,
		ch: make(chan gen.Report, 1024),
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	// WAL is much faster for append-style workloads.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS generations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			at TEXT NOT NULL,
			shape TEXT NOT NULL,
			shape_index INTEGER NOT NULL,
			chunks INTEGER NOT NULL,
			empty_chunks INTEGER NOT NULL,
			vertices INTEGER NOT NULL,
			triangles INTEGER NOT NULL,
			duration_ms REAL NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_generations_shape ON generations(shape, id);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// RecordGeneration enqueues a report for the writer goroutine. When the
// queue is full the report is dropped; the index is best-effort.
func (s *SQLiteIndex) RecordGeneration(rep gen.Report) {
	select {
	case s.ch <- rep:
	default:
	}
}

func (s *SQLiteIndex) loop() {
	for rep := range s.ch {
		_, err := s.db.Exec(
			`INSERT INTO generations (at, shape, shape_index, chunks, empty_chunks, vertices, triangles, duration_ms)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			time.Now().UTC().Format(time.RFC3339Nano),
			rep.Shape, rep.ShapeIndex, rep.Chunks, rep.EmptyChunks,
			rep.Vertices, rep.Triangles,
			float64(rep.Duration)/float64(time.Millisecond),
		)
		if err != nil {
			// Best-effort: keep draining.
			continue
		}
	}
}

// GenerationRow is one indexed run.
type GenerationRow struct {
	ID          int64
	At          string
	Shape       string
	ShapeIndex  int
	Chunks      int
	EmptyChunks int
	Vertices    int
	Triangles   int
	DurationMS  float64
}

// Recent returns the latest n runs, newest first.
func (s *SQLiteIndex) Recent(n int) ([]GenerationRow, error) {
	rows, err := s.db.Query(
		`SELECT id, at, shape, shape_index, chunks, empty_chunks, vertices, triangles, duration_ms
		 FROM generations ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GenerationRow
	for rows.Next() {
		var r GenerationRow
		if err := rows.Scan(&r.ID, &r.At, &r.Shape, &r.ShapeIndex, &r.Chunks, &r.EmptyChunks, &r.Vertices, &r.Triangles, &r.DurationMS); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Flush blocks until every queued report has been written.
func (s *SQLiteIndex) Flush() {
	for len(s.ch) > 0 {
		time.Sleep(time.Millisecond)
	}
}

func (s *SQLiteIndex) Close() error {
	var err error
	s.once.Do(func() {
		close(s.ch)
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}
