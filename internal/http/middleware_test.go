package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"netops-dashboard/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMwRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		check    func(t *testing.T, id string)
	}{
		{
			name: "mints a ULID when absent",
			check: func(t *testing.T, id string) {
				assert.Len(t, id, 26)
			},
		},
		{
			name:     "keeps the caller's id",
			incoming: "dash-7f3a",
			check: func(t *testing.T, id string) {
				assert.Equal(t, "dash-7f3a", id)
			},
		},
		{
			name:     "blank id is replaced",
			incoming: "   ",
			check: func(t *testing.T, id string) {
				assert.Len(t, id, 26)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, err := loggers.New("info")
			require.NoError(t, err)

			var seen string
			handler := mwRequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = requestID(r)
				assert.NotNil(t, loggers.Ctx(r.Context()))
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
			if tt.incoming != "" {
				req.Header.Set(headerRequestID, tt.incoming)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			tt.check(t, seen)
			assert.Equal(t, seen, rr.Header().Get(headerRequestID))
		})
	}
}

func TestMwRecoverer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		panic any
	}{
		{name: "string value", panic: "heatmap exploded"},
		{name: "error value", panic: errors.New("nil snapshot")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			logger, err := loggers.NewWithWriter("info", &logs)
			require.NoError(t, err)

			handler := mwRequestID(logger)(mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panic)
			})))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/views/heatmap", nil)
			rr := httptest.NewRecorder()
			require.NotPanics(t, func() { handler.ServeHTTP(rr, req) })

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.RequestID)
			assert.Equal(t, "internal", resp.ErrorCategory)
			assert.Equal(t, "SYS_9000", resp.ErrorCode)
			assert.Equal(t, "internal server error", resp.ErrorDescription)

			assert.Contains(t, logs.String(), "http panic recovered")
			assert.Contains(t, logs.String(), loggers.FieldErrorStack)
		})
	}
}

func TestMwRecoverer_ReraisesAbortHandler(t *testing.T) {
	t.Parallel()

	handler := mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ws", nil))
	})
}

func TestMwRequestCompletionLog(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger, err := loggers.NewWithWriter("info", &logs)
	require.NoError(t, err)

	router := chi.NewRouter()
	setupMiddleware(router, logger)
	router.Get("/api/v1/incidents", errorHandlingAdapter(AppHttpHandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		_, svcErr := queryInt(r, "limit")
		return svcErr
	})))
	router.Get(metricsPath, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents?limit=ten", nil)
	req.Header.Set(headerUserAgent, "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &line))
	assert.Equal(t, "request completed", line["message"])
	assert.Equal(t, float64(http.StatusBadRequest), line[loggers.FieldHttpStatus])
	assert.Equal(t, codeInvalidQueryParam, line[loggers.FieldErrorCode])
	assert.Equal(t, "Firefox", line[loggers.FieldUserAgent])

	logs.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, metricsPath, nil))
	assert.Empty(t, logs.String(), "scrapes log at debug")
}

func TestRoutePattern(t *testing.T) {
	t.Parallel()

	var got string
	router := chi.NewRouter()
	router.Get("/api/v1/views/sla-history/{month}/breakdown", func(w http.ResponseWriter, r *http.Request) {
		got = routePattern(r)
	})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/views/sla-history/2026-02/breakdown", nil))
	assert.Equal(t, "/api/v1/views/sla-history/{month}/breakdown", got)

	assert.Equal(t, "/unrouted", routePattern(httptest.NewRequest(http.MethodGet, "/unrouted", nil)))
}

func TestSetupMiddleware_Integration(t *testing.T) {
	t.Parallel()

	logger, err := loggers.New("info")
	require.NoError(t, err)
	router := chi.NewRouter()
	setupMiddleware(router, logger)

	router.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, requestID(r))
		_, isApp := w.(*appResponseWriter)
		assert.True(t, isApp)
		w.WriteHeader(http.StatusNoContent)
	})
	router.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("integration panic")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(headerRequestID))

	rr = httptest.NewRecorder()
	require.NotPanics(t, func() {
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, rr.Header().Get(headerRequestID), resp.RequestID)
	assert.Equal(t, "SYS_9000", resp.ErrorCode)
}
