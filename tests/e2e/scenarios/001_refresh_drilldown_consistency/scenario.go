package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type refreshResponse struct {
	TriggerID string `json:"triggerId"`
	Coalesced bool   `json:"coalesced"`
}

type statusResponse struct {
	Status struct {
		Ready    bool `json:"ready"`
		Snapshot *struct {
			Sequence    uint64 `json:"sequence"`
			Source      string `json:"source"`
			RecordCount int    `json:"recordCount"`
		} `json:"snapshot"`
	} `json:"status"`
}

type heatmapResponse struct {
	View struct {
		Rows []struct {
			Provider string `json:"provider"`
			Cells    []struct {
				Date    string `json:"date"`
				Minutes int    `json:"minutes"`
			} `json:"cells"`
		} `json:"rows"`
	} `json:"view"`
}

type comparativeResponse struct {
	View struct {
		Current struct {
			Incidents int `json:"incidents"`
		} `json:"current"`
		Previous struct {
			Incidents int `json:"incidents"`
		} `json:"previous"`
	} `json:"view"`
}

type drilldownResponse struct {
	Count int `json:"count"`
	Value int `json:"value"`
}

// main runs the e2e scenario: 001_refresh_drilldown_consistency
//
// It fires a burst of manual refreshes against a running server, waits for
// a snapshot to be installed and then checks that every rendered number it
// samples can be reproduced through the drill-down endpoint.
//
// What it tests:
//   - POST /api/v1/refresh under concurrency, most triggers coalesce
//   - GET /api/v1/status reaches ready with a newer sequence
//   - heatmap cells: drill-down value equals the cell minutes
//   - comparative periods: drill-down count equals the incident count
//
// The server may run without a reachable backend; the sample snapshot is
// just as valid for the consistency checks.
func main() {
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	refreshes := getEnvInt("REFRESHES", 50)
	parallel := getEnvInt("PARALLEL", 8)
	waitFor := time.Duration(getEnvInt("WAIT_SECONDS", 30)) * time.Second

	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Println("Starting e2e scenario: 001_refresh_drilldown_consistency")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("REFRESHES: %d\n", refreshes)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	before, err := getJSON[statusResponse](client, baseURL+"/api/v1/status")
	if err != nil {
		fail("read initial status: %v", err)
	}
	var startSequence uint64
	if before.Status.Snapshot != nil {
		startSequence = before.Status.Snapshot.Sequence
	}

	var queued, coalesced int64
	g := errgroup.Group{}
	g.SetLimit(parallel)
	for i := 0; i < refreshes; i++ {
		g.Go(func() error {
			resp, err := postJSON[refreshResponse](client, baseURL+"/api/v1/refresh")
			if err != nil {
				return err
			}
			if resp.Coalesced {
				atomic.AddInt64(&coalesced, 1)
			} else {
				atomic.AddInt64(&queued, 1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fail("refresh burst: %v", err)
	}
	fmt.Printf("Refresh burst done: queued=%d coalesced=%d\n", queued, coalesced)

	deadline := time.Now().Add(waitFor)
	var status statusResponse
	for {
		status, err = getJSON[statusResponse](client, baseURL+"/api/v1/status")
		if err != nil {
			fail("poll status: %v", err)
		}
		if status.Status.Ready && status.Status.Snapshot != nil && status.Status.Snapshot.Sequence > startSequence {
			break
		}
		if time.Now().After(deadline) {
			fail("no new snapshot installed within %s", waitFor)
		}
		time.Sleep(250 * time.Millisecond)
	}
	fmt.Printf("Snapshot installed: sequence=%d source=%s records=%d\n",
		status.Status.Snapshot.Sequence, status.Status.Snapshot.Source, status.Status.Snapshot.RecordCount)

	heatmap, err := getJSON[heatmapResponse](client, baseURL+"/api/v1/views/heatmap")
	if err != nil {
		fail("read heatmap: %v", err)
	}
	checked := 0
	for _, row := range heatmap.View.Rows {
		for _, cell := range row.Cells {
			if cell.Minutes == 0 {
				continue
			}
			q := url.Values{"view": {"heatmap"}, "group": {row.Provider}, "bucket": {cell.Date}}
			dd, err := getJSON[drilldownResponse](client, baseURL+"/api/v1/drilldown?"+q.Encode())
			if err != nil {
				fail("drilldown %s %s: %v", row.Provider, cell.Date, err)
			}
			if dd.Value != cell.Minutes {
				fail("heatmap %s %s: cell=%d drilldown=%d", row.Provider, cell.Date, cell.Minutes, dd.Value)
			}
			checked++
		}
	}
	fmt.Printf("Heatmap cells verified: %d\n", checked)

	for _, granularity := range []string{"day", "week", "month", "year"} {
		rollup, err := getJSON[comparativeResponse](client, baseURL+"/api/v1/views/comparative?granularity="+granularity)
		if err != nil {
			fail("read comparative %s: %v", granularity, err)
		}
		for group, want := range map[string]int{"current": rollup.View.Current.Incidents, "previous": rollup.View.Previous.Incidents} {
			q := url.Values{"view": {"comparative"}, "group": {group}, "granularity": {granularity}}
			dd, err := getJSON[drilldownResponse](client, baseURL+"/api/v1/drilldown?"+q.Encode())
			if err != nil {
				fail("drilldown comparative %s %s: %v", granularity, group, err)
			}
			if dd.Count != want {
				fail("comparative %s %s: view=%d drilldown=%d", granularity, group, want, dd.Count)
			}
		}
	}
	fmt.Println("Comparative periods verified")
	fmt.Println("Scenario completed successfully")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getJSON[T any](client *http.Client, target string) (T, error) {
	return doJSON[T](client, http.MethodGet, target, http.StatusOK)
}

func postJSON[T any](client *http.Client, target string) (T, error) {
	return doJSON[T](client, http.MethodPost, target, http.StatusAccepted)
}

func doJSON[T any](client *http.Client, method, target string, wantStatus int) (T, error) {
	var out T
	req, err := http.NewRequest(method, target, nil)
	if err != nil {
		return out, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return out, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		return out, fmt.Errorf("%s %s: status %d", method, target, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}
