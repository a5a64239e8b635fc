package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"isoforge.dev/internal/gen"
	"isoforge.dev/internal/persistence/indexdb"
	persistlog "isoforge.dev/internal/persistence/log"
	"isoforge.dev/internal/transport/ws"
	"isoforge.dev/internal/tuning"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "http listen address")
		configDir  = flag.String("configs", "./configs", "config directory")
		dataDir    = flag.String("data", "./data", "runtime data directory")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		disableDB  = flag.Bool("disable_db", false, "disable the generation run index")
		shapeIndex = flag.Int("shape", -1, "starting shape index (overrides tuning)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	tp := strings.TrimSpace(*tuningPath)
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tn, err := tuning.Load(tp)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Fatalf("load tuning: %v", err)
		}
		tn = tuning.Default()
		logger.Printf("no tuning.yaml at %s, using defaults", tp)
	}

	start := tn.ShapeStartIndex
	if *shapeIndex >= 0 {
		start = *shapeIndex
	}

	_ = os.MkdirAll(*dataDir, 0o755)

	genLog := persistlog.NewGenerationLogger(*dataDir)
	defer genLog.Close()

	var idx *indexdb.SQLiteIndex
	if !*disableDB {
		idx, err = indexdb.OpenSQLite(filepath.Join(*dataDir, "index", "runs.db"))
		if err != nil {
			logger.Fatalf("open run index: %v", err)
		}
		defer idx.Close()
	}

	state := gen.NewState(tn.GenConfig())
	scene := gen.NewCollector()
	rep, err := state.SetShape(start, scene)
	if err != nil {
		logger.Fatalf("initial generation: %v", err)
	}
	logger.Printf("generated %s: %d/%d chunks meshed, %d vertices in %s",
		rep.Shape, rep.Chunks-rep.EmptyChunks, rep.Chunks, rep.Vertices, rep.Duration)
	record(logger, genLog, idx, rep)

	srv := ws.NewServer(state, scene, tn.ChunkEdge, logger)
	srv.OnReport = func(rep gen.Report) {
		record(logger, genLog, idx, rep)
	}

	ctx, cancel := signalContext()
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
		_, _ = rw.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/runs", func(rw http.ResponseWriter, r *http.Request) {
		if idx == nil {
			http.Error(rw, "run index disabled", http.StatusNotFound)
			return
		}
		rows, err := idx.Recent(50)
		if err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
			return
		}
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(rows)
	})
	mux.HandleFunc("/v1/ws", srv.Handler())

	httpSrv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		_ = httpSrv.Shutdown(ctx2)
	}()

	logger.Printf("listening on %s", *addr)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("ListenAndServe: %v", err)
	}
}

func record(logger *log.Logger, genLog *persistlog.GenerationLogger, idx *indexdb.SQLiteIndex, rep gen.Report) {
	if err := genLog.WriteGeneration(rep); err != nil {
		logger.Printf("generation log: %v", err)
	}
	if idx != nil {
		idx.RecordGeneration(rep)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}
