package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"netops-dashboard/internal/shared/loggers"
	"netops-dashboard/internal/shared/svcerrors"
	"netops-dashboard/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const metricsPath = "/metrics"

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwPrometheus)
	router.Use(mwRequestCompletionLog)
	router.Use(mwRecoverer)
}

// mwAppResponseWriter wraps the writer once so later middlewares can read
// the status and error code back.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(newAppResponseWriter(w, r.ProtoMajor), r)
	})
}

// responseOutcome reads the status (200 when nothing was written) and the
// service error code recorded by the adapter.
func responseOutcome(w http.ResponseWriter) (int, string) {
	appWriter, ok := w.(*appResponseWriter)
	if !ok {
		return http.StatusOK, ""
	}
	status := appWriter.Status()
	if status == 0 {
		status = http.StatusOK
	}
	return status, appWriter.ErrorCode()
}

// routePattern is the chi pattern ("/api/v1/views/sla-history/{month}/breakdown"),
// falling back to the raw path for unrouted requests.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// mwPrometheus records request counts and latency per route pattern. Scrapes
// of /metrics are not counted.
func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		inFlight := metricHTTPInFlight.WithLabelValues(r.Method)
		inFlight.Inc()
		func() {
			defer inFlight.Dec()
			next.ServeHTTP(w, r)
		}()

		pattern := routePattern(r)
		if pattern == metricsPath {
			return
		}
		status, errorCode := responseOutcome(w)
		labels := []string{r.Method, pattern, strconv.Itoa(status), errorCode}
		metricHTTPRequestsTotal.WithLabelValues(labels...).Inc()
		metricHTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}

// mwRequestID reuses the caller's x-request-id or mints a ULID, echoes it on
// the response and puts a request-scoped logger in the context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			if id == "" {
				id = ulid.NewULID()
				setRequestID(r, id)
			}
			w.Header().Set(headerRequestID, id)

			ctx := httpLogger.With().
				Str(loggers.FieldRequestID, id).
				Logger().WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// mwRequestCompletionLog logs one line per request. Metric scrapes log at debug.
func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			status, errorCode := responseOutcome(w)
			level := zerolog.InfoLevel
			if r.URL.Path == metricsPath {
				level = zerolog.DebugLevel
			}
			event := loggers.Ctx(r.Context()).WithLevel(level).
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Int(loggers.FieldHttpStatus, status).
				Str(loggers.FieldUserAgent, userAgentFamily(r)).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds())
			if errorCode != "" {
				event = event.Str(loggers.FieldErrorCode, errorCode)
			}
			event.Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// mwRecoverer turns a handler panic into the SYS_9000 error envelope.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}
			loggers.Ctx(r.Context()).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("http panic recovered: %v", p)

			writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicAsError(p)))
		}()

		next.ServeHTTP(w, r)
	})
}

func panicAsError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return fmt.Errorf("%v", p)
}
