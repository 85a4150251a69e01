//go:build integration

// functions that are useful in integration tests

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/PaesslerAG/jsonpath"

	"github.com/transit-catalog/subway/internal/api"
)

// cleanupDatabase empties the catalog and restarts id sequences between scenarios
func cleanupDatabase(t *testing.T, env *testEnv) {
	t.Helper()

	if err := env.store.Clear(context.Background()); err != nil {
		t.Fatalf("Failed to cleanup database: %v", err)
	}
}

type response struct {
	statusCode int
	body       []byte
	header     http.Header
}

// doRequest sends body (if not nil) as JSON to the test server
func doRequest(t *testing.T, env *testEnv, method, path string, body any) response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, env.baseURL+path, reader)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return response{statusCode: resp.StatusCode, body: respBody, header: resp.Header}
}

func expectStatus(t *testing.T, resp response, want int) {
	t.Helper()
	if resp.statusCode != want {
		t.Fatalf("expected status %d, got %d: %s", want, resp.statusCode, resp.body)
	}
}

// extractStrings evaluates a jsonpath expression that selects a list of values
func extractStrings(t *testing.T, body []byte, expr string) []string {
	t.Helper()

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("Response is not JSON: %v", err)
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		t.Fatalf("jsonpath %s: %v", expr, err)
	}

	items, ok := val.([]any)
	if !ok {
		t.Fatalf("jsonpath %s: expected a list, got %T", expr, val)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprint(item))
	}
	return out
}

func createStation(t *testing.T, env *testEnv, name string) api.StationResponse {
	t.Helper()

	resp := doRequest(t, env, http.MethodPost, "/stations", api.StationRequest{Name: name})
	expectStatus(t, resp, http.StatusCreated)

	var station api.StationResponse
	if err := json.Unmarshal(resp.body, &station); err != nil {
		t.Fatalf("Failed to decode station: %v", err)
	}
	return station
}

func createLine(t *testing.T, env *testEnv, name, color string, up, down api.StationResponse, distance int) api.LineResponse {
	t.Helper()

	resp := doRequest(t, env, http.MethodPost, "/lines", map[string]any{
		"name":          name,
		"color":         color,
		"upStationId":   up.ID,
		"downStationId": down.ID,
		"distance":      distance,
	})
	expectStatus(t, resp, http.StatusCreated)

	var line api.LineResponse
	if err := json.Unmarshal(resp.body, &line); err != nil {
		t.Fatalf("Failed to decode line: %v", err)
	}
	return line
}
