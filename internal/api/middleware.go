package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hashvault-io/hashvault-core/internal/observability/metrics"
	"github.com/hashvault-io/hashvault-core/internal/observability/tracing"
)

// tracingMiddleware stamps every request context with a trace id so all log
// lines of one request correlate.
func tracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(tracing.InjectTraceID(r.Context())))
	})
}

// durationMiddleware records the request duration histogram labelled by the
// route pattern, not the raw path, to keep cardinality bounded.
func durationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stopTimer := metrics.StartHTTPRequestDurationTimer(r.Method)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = "unmatched"
		}
		stopTimer(pattern, rec.status)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
