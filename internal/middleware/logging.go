package middleware

import (
	"log"
	"net/http"
	"time"
)

// Logging logs one line per request: method, path, status, duration
// and the request ID assigned by RequestID (which must run earlier in
// the chain for the ID to appear).
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Printf("[HTTP] %s %s %d %s rid=%s",
			r.Method,
			r.URL.Path,
			rec.status,
			time.Since(start),
			GetRequestID(r.Context()),
		)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}
