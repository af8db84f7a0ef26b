// Package server exposes analyst.Engine over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/analyst"
	"github.com/sirupsen/logrus"
)

// Default timeouts. WriteTimeout is the floor; WriteTimeoutFor raises it
// above longer summary bounds.
const (
	ReadTimeout  = 15 * time.Second
	WriteTimeout = 15 * time.Second

	writeMargin = 5 * time.Second

	defaultMaxUpload = 20 << 20
)

// Server routes API requests to an analyst.Engine.
type Server struct {
	engine    *analyst.Engine
	logger    logrus.FieldLogger
	maxUpload int64
	router    *mux.Router
}

// New builds a Server and its routes. maxUpload <= 0 uses 20 MB.
func New(e *analyst.Engine, logger logrus.FieldLogger, maxUpload int64) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}
	s := &Server{engine: e, logger: logger, maxUpload: maxUpload}

	r := mux.NewRouter()
	r.Use(requestID, s.logRequests)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/upload", s.Upload).Methods("POST")
	api.HandleFunc("/query", s.Query).Methods("POST")
	api.HandleFunc("/areas", s.Areas).Methods("GET")
	api.HandleFunc("/download", s.Download).Methods("GET")
	api.HandleFunc("/download-sample", s.DownloadSample).Methods("GET")
	api.HandleFunc("/generate-excel", s.GenerateExcel).Methods("POST")
	api.HandleFunc("/health", s.Health).Methods("GET")

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// WriteTimeoutFor returns a write deadline that outlasts a summary call
// bounded by summaryTimeout.
func WriteTimeoutFor(summaryTimeout time.Duration) time.Duration {
	if d := summaryTimeout + writeMargin; d > WriteTimeout {
		return d
	}
	return WriteTimeout
}

// HTTPServer wraps the handler in an http.Server listening on addr. The
// write timeout is sized for summaryTimeout.
func (s *Server) HTTPServer(addr string, summaryTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeoutFor(summaryTimeout),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
