package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"netops-dashboard/internal/models"
	"netops-dashboard/internal/shared/configs"

	"golang.org/x/sync/errgroup"
)

const (
	restPrefix      = "/rest/v1/"
	maxErrorBodyLen = 512
)

// BackendClient reads the dashboard record sets from the managed backend's
// REST interface and calls its stored procedures.
//
//go:generate mockgen -source=backend_client.go -destination=./mocks/backend_client_mock.go -package=mocks
type BackendClient interface {
	// FetchSnapshot reads the four record sets concurrently. Any failing
	// read fails the whole fetch; partial snapshots are never returned.
	FetchSnapshot(ctx context.Context) (*models.RawSnapshot, error)
	CloseMassiveIncident(ctx context.Context, incidentID string) error
}

type backendClient struct {
	baseURL    string
	apiKey     string
	cfg        configs.BackendConfig
	httpClient *http.Client
}

func NewBackendClient(cfg configs.BackendConfig) BackendClient {
	return &backendClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		cfg:     cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

func (c *backendClient) FetchSnapshot(ctx context.Context) (*models.RawSnapshot, error) {
	raw := &models.RawSnapshot{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.selectAll(ctx, c.cfg.FailuresTable, &raw.Failures) })
	g.Go(func() error { return c.selectAll(ctx, c.cfg.DegradationsTable, &raw.Degradations) })
	g.Go(func() error { return c.selectAll(ctx, c.cfg.MassiveTable, &raw.Massive) })
	g.Go(func() error { return c.selectAll(ctx, c.cfg.InventoryTable, &raw.Inventory) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return raw, nil
}

func (c *backendClient) CloseMassiveIncident(ctx context.Context, incidentID string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(incidentID), 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidIncidentID, incidentID)
	}

	payload := map[string]any{"p_incident_id": id}
	var affected json.RawMessage
	err = c.do(ctx, http.MethodPost, restPrefix+"rpc/"+c.cfg.CloseMassiveRPC, nil, payload, &affected, "rpc:"+c.cfg.CloseMassiveRPC)
	if err != nil {
		return fmt.Errorf("close massive incident %d: %w", id, err)
	}
	// The procedure returns false when no open incident had that id.
	if strings.TrimSpace(string(affected)) == "false" {
		return fmt.Errorf("%w: %d", ErrMassiveIncidentNotFound, id)
	}
	return nil
}

func (c *backendClient) selectAll(ctx context.Context, table string, out any) error {
	query := url.Values{"select": []string{"*"}}
	if err := c.do(ctx, http.MethodGet, restPrefix+url.PathEscape(table), query, nil, out, table); err != nil {
		return fmt.Errorf("fetch %s: %w", table, err)
	}
	return nil
}

func (c *backendClient) do(ctx context.Context, method, path string, query url.Values, payload any, out any, target string) error {
	if c.baseURL == "" {
		return fmt.Errorf("backend base URL not configured")
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metricBackendRequestDuration.WithLabelValues(target).Observe(time.Since(start).Seconds())
	if err != nil {
		metricBackendRequestsTotal.WithLabelValues(target, "error").Inc()
		return err
	}
	defer resp.Body.Close()
	metricBackendRequestsTotal.WithLabelValues(target, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return &StatusError{Endpoint: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
