// Package server exposes the tracker's control surface: a trigger endpoint
// guarded by the run-lock coordinator, a read-only artifact surface over
// the data directory, and the static web UI.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/config"
)

const serverVersion = "TechJobsTracker/1.0"

type Server struct {
	httpServer  *http.Server
	coordinator *Coordinator
	dataDir     string
	webDir      string
}

func New(cfg config.ServerConfig, dataDir string, coordinator *Coordinator) *Server {
	s := &Server{
		coordinator: coordinator,
		dataDir:     dataDir,
		webDir:      cfg.WebDir,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/run", s.handleRun)
	mux.HandleFunc("/data/", s.handleData)
	mux.HandleFunc("/", s.handleWeb)

	s.httpServer = &http.Server{
		Addr:              cfg.Address,
		Handler:           versionHeader(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) Run() error {
	log.Infof("tracker server listening on http://%s/", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, map[string]any{"ok": false, "error": "Use POST /api/run"})
		return
	}

	res := s.coordinator.TriggerRun(r.Context())
	switch res.Status {
	case StatusStarted:
		writeJSON(w, map[string]any{"ok": true, "status": StatusStarted, "pid": res.PID})
	case StatusBusy:
		writeJSON(w, map[string]any{"ok": true, "status": StatusBusy})
	default:
		writeJSON(w, map[string]any{"ok": false, "status": StatusError, "error": res.Err.Error()})
	}
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	rel := r.URL.Path[len("/data/"):]
	serveFile(w, s.dataDir, rel)
}

func (s *Server) handleWeb(w http.ResponseWriter, r *http.Request) {
	rel := r.URL.Path
	if len(rel) > 0 && rel[0] == '/' {
		rel = rel[1:]
	}
	if rel == "" {
		rel = "index.html"
	}
	serveFile(w, s.webDir, rel)
}

func versionHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", serverVersion)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
