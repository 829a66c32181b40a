package sources

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"netops-dashboard/internal/models"
	"netops-dashboard/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBackendConfig(baseURL string) configs.BackendConfig {
	return configs.BackendConfig{
		BaseURL:           baseURL,
		APIKey:            "secret-key",
		Timeout:           5,
		FailuresTable:     "failures",
		DegradationsTable: "degradations",
		MassiveTable:      "massive",
		InventoryTable:    "inventory",
		CloseMassiveRPC:   "close_massive",
	}
}

func TestBackendClient_FetchSnapshot_Success(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	seen := map[string]bool{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "secret-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))

		mu.Lock()
		seen[r.URL.Path] = true
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/rest/v1/failures":
			_, _ = io.WriteString(w, `[{"id":17,"network_id":"L_1","start_time":"2026-03-18T10:00:00Z","lifecycle_stage":"Activa","total_downtime_minutes":42.5}]`)
		case "/rest/v1/degradations":
			_, _ = io.WriteString(w, `[{"id":"D-1","network_id":"L_1","status":"Resuelta"}]`)
		case "/rest/v1/massive":
			_, _ = io.WriteString(w, `[]`)
		case "/rest/v1/inventory":
			_, _ = io.WriteString(w, `[{"network_id":"L_1","store_name":"Tienda Centro","country":"Venezuela"},{"network_id":"L_2"}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewBackendClient(testBackendConfig(srv.URL + "/"))
	raw, err := client.FetchSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, raw.Failures, 1)
	assert.Equal(t, models.FlexibleID("17"), raw.Failures[0].ID)
	require.NotNil(t, raw.Failures[0].DowntimeMinutes)
	assert.InDelta(t, 42.5, *raw.Failures[0].DowntimeMinutes, 0.001)
	assert.Len(t, raw.Degradations, 1)
	assert.Empty(t, raw.Massive)
	assert.Len(t, raw.Inventory, 2)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, seen, 4)
}

func TestBackendClient_FetchSnapshot_OneTableFails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/rest/v1/massive" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"message":"relation does not exist"}`)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	client := NewBackendClient(testBackendConfig(srv.URL))
	raw, err := client.FetchSnapshot(context.Background())
	assert.Nil(t, raw)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "/rest/v1/massive", statusErr.Endpoint)
	assert.Contains(t, statusErr.Body, "relation does not exist")
}

func TestBackendClient_FetchSnapshot_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{not json`)
	}))
	defer srv.Close()

	client := NewBackendClient(testBackendConfig(srv.URL))
	_, err := client.FetchSnapshot(context.Background())
	assert.Error(t, err)
}

func TestBackendClient_FetchSnapshot_NoBaseURL(t *testing.T) {
	t.Parallel()

	client := NewBackendClient(testBackendConfig(""))
	_, err := client.FetchSnapshot(context.Background())
	assert.Error(t, err)
}

func TestBackendClient_CloseMassiveIncident(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		incidentID string
		status     int
		response   string
		wantCalled bool
		wantErr    error
		wantStatus bool
	}{
		{name: "closed", incidentID: "901", status: http.StatusOK, response: `true`, wantCalled: true},
		{name: "void procedure", incidentID: " 902 ", status: http.StatusNoContent, wantCalled: true},
		{name: "not found", incidentID: "903", status: http.StatusOK, response: `false`, wantCalled: true, wantErr: ErrMassiveIncidentNotFound},
		{name: "backend error", incidentID: "904", status: http.StatusBadGateway, response: `oops`, wantCalled: true, wantStatus: true},
		{name: "non numeric id", incidentID: "abc", wantErr: ErrInvalidIncidentID},
		{name: "zero id", incidentID: "0", wantErr: ErrInvalidIncidentID},
		{name: "negative id", incidentID: "-3", wantErr: ErrInvalidIncidentID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var called atomic.Bool
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called.Store(true)
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/rest/v1/rpc/close_massive", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var body map[string]int64
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Positive(t, body["p_incident_id"])

				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.response)
			}))
			defer srv.Close()

			client := NewBackendClient(testBackendConfig(srv.URL))
			err := client.CloseMassiveIncident(context.Background(), tt.incidentID)

			assert.Equal(t, tt.wantCalled, called.Load())
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantStatus:
				var statusErr *StatusError
				assert.True(t, errors.As(err, &statusErr))
			default:
				assert.NoError(t, err)
			}
		})
	}
}
