package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/transit-catalog/subway/internal/api"
	"github.com/transit-catalog/subway/internal/logger"
	"github.com/transit-catalog/subway/internal/metrics"
)

// RequestSizeLimit caps request bodies at maxBytes.
//
// A declared Content-Length over the cap is answered with 413 before the handler runs.
// Bodies without a trustworthy length are wrapped in http.MaxBytesReader; the handlers
// report the resulting *http.MaxBytesError as 413 when decoding.
// Every response carries the cap in X-Max-Request-Size.
func RequestSizeLimit(maxBytes int64) func(http.Handler) http.Handler {
	limit := strconv.FormatInt(maxBytes, 10)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Max-Request-Size", limit)

			if r.ContentLength > maxBytes {
				api.RespondWithErrorResponse(w, r, api.NewRequestTooLargeError(
					fmt.Sprintf("request body is %d bytes, the limit is %d", r.ContentLength, maxBytes),
				))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

var securityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "strict-origin-when-cross-origin",
}

// SecurityHeaders sets the static hardening headers. HSTS is only sent from
// staging and prod, where the server sits behind TLS.
func SecurityHeaders(environment string) func(http.Handler) http.Handler {
	hsts := environment == "prod" || environment == "staging"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for name, value := range securityHeaders {
				h.Set(name, value)
			}
			if hsts {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit applies one token bucket to the whole server. A non-positive
// requestsPerSecond turns it off. Rejected requests get 429 with Retry-After.
func RateLimit(requestsPerSecond int32, burst int32) func(http.Handler) http.Handler {
	if requestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), int(burst))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			logger.ContextWithLogAttrs(r.Context(), slog.Bool("rate_limited", true))

			w.Header().Set("Retry-After", "1")
			api.RespondWithErrorResponse(w, r, api.NewRateLimitError(
				fmt.Sprintf("more than %d requests per second, retry later", requestsPerSecond),
			))
		})
	}
}

// Metrics records request count and latency per chi route pattern.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		metrics.ObserveHTTPRequest(r.Method, route, status, time.Since(start))
	})
}
