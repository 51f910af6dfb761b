package server

import (
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) auditMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		s.ToolAudit.Record(r.Context(), ToolCallEntry{
			Timestamp:  start.UTC(),
			Method:     r.Method,
			Path:       r.URL.Path,
			StatusCode: recorder.status,
			UserID:     r.URL.Query().Get("user_id"),
			Duration:   time.Since(start),
		})
	})
}
