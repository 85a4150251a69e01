//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/transit-catalog/subway/internal/api"
)

func TestLines(t *testing.T) {
	env := startInProcessServer(t)
	defer env.shutdown()

	t.Run("create line", func(t *testing.T) {
		cleanupDatabase(t, env)

		up := createStation(t, env, "연신내역")
		down := createStation(t, env, "불광역")

		resp := doRequest(t, env, http.MethodPost, "/lines", map[string]any{
			"name":          "3호선",
			"color":         "주황색",
			"upStationId":   up.ID,
			"downStationId": down.ID,
			"distance":      10,
		})
		expectStatus(t, resp, http.StatusCreated)
		if location := resp.header.Get("Location"); !strings.HasPrefix(location, "/lines/") {
			t.Errorf("Location = %q, want /lines/{id}", location)
		}

		resp = doRequest(t, env, http.MethodGet, "/lines", nil)
		expectStatus(t, resp, http.StatusOK)

		names := extractStrings(t, resp.body, "$[*].name")
		if !slices.Contains(names, "3호선") {
			t.Errorf("expected 3호선 in %v", names)
		}
	})

	t.Run("list lines", func(t *testing.T) {
		cleanupDatabase(t, env)

		a := createStation(t, env, "연신내역")
		b := createStation(t, env, "불광역")
		c := createStation(t, env, "강남역")

		createLine(t, env, "3호선", "주황색", a, b, 10)
		createLine(t, env, "2호선", "초록색", b, c, 5)

		first := doRequest(t, env, http.MethodGet, "/lines", nil)
		expectStatus(t, first, http.StatusOK)

		names := extractStrings(t, first.body, "$[*].name")
		if !slices.Contains(names, "3호선") || !slices.Contains(names, "2호선") {
			t.Errorf("expected both lines, got %v", names)
		}

		second := doRequest(t, env, http.MethodGet, "/lines", nil)
		if string(first.body) != string(second.body) {
			t.Errorf("list changed without mutations:\n%s\n%s", first.body, second.body)
		}
	})

	t.Run("get line", func(t *testing.T) {
		cleanupDatabase(t, env)

		up := createStation(t, env, "연신내역")
		down := createStation(t, env, "불광역")
		line := createLine(t, env, "3호선", "주황색", up, down, 10)

		resp := doRequest(t, env, http.MethodGet, fmt.Sprintf("/lines/%d", line.ID), nil)
		expectStatus(t, resp, http.StatusOK)

		stations := extractStrings(t, resp.body, "$.stations[*].name")
		if !slices.Equal(stations, []string{"연신내역", "불광역"}) {
			t.Errorf("stations = %v, want [연신내역 불광역]", stations)
		}
	})

	t.Run("update line", func(t *testing.T) {
		cleanupDatabase(t, env)

		up := createStation(t, env, "연신내역")
		down := createStation(t, env, "불광역")
		line := createLine(t, env, "3호선", "주황색", up, down, 10)
		path := fmt.Sprintf("/lines/%d", line.ID)

		resp := doRequest(t, env, http.MethodPatch, path, map[string]string{"name": "2호선", "color": "주황색"})
		expectStatus(t, resp, http.StatusOK)

		resp = doRequest(t, env, http.MethodGet, path, nil)
		expectStatus(t, resp, http.StatusOK)

		var got api.LineResponse
		if err := json.Unmarshal(resp.body, &got); err != nil {
			t.Fatal(err)
		}
		if got.Name != "2호선" {
			t.Errorf("name = %q, want 2호선", got.Name)
		}
		if got.Distance != 10 || len(got.Stations) != 2 {
			t.Errorf("update changed distance or stations: %+v", got)
		}
	})

	t.Run("delete line", func(t *testing.T) {
		cleanupDatabase(t, env)

		up := createStation(t, env, "연신내역")
		down := createStation(t, env, "불광역")
		line := createLine(t, env, "3호선", "주황색", up, down, 10)
		path := fmt.Sprintf("/lines/%d", line.ID)

		expectStatus(t, doRequest(t, env, http.MethodDelete, path, nil), http.StatusNoContent)

		resp := doRequest(t, env, http.MethodGet, "/lines", nil)
		expectStatus(t, resp, http.StatusOK)
		if strings.TrimSpace(string(resp.body)) != "[]" {
			t.Errorf("expected no lines, got %s", resp.body)
		}

		expectStatus(t, doRequest(t, env, http.MethodGet, path, nil), http.StatusNotFound)
		expectStatus(t, doRequest(t, env, http.MethodDelete, path, nil), http.StatusNotFound)
	})
}

func TestLineConstraints(t *testing.T) {
	env := startInProcessServer(t)
	defer env.shutdown()

	cleanupDatabase(t, env)

	a := createStation(t, env, "연신내역")
	b := createStation(t, env, "불광역")
	createLine(t, env, "3호선", "주황색", a, b, 10)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
	}{
		{
			name:       "duplicate line name",
			method:     http.MethodPost,
			path:       "/lines",
			body:       map[string]any{"name": "3호선", "color": "남색", "upStationId": b.ID, "downStationId": a.ID, "distance": 3},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown station",
			method:     http.MethodPost,
			path:       "/lines",
			body:       map[string]any{"name": "1호선", "color": "남색", "upStationId": a.ID, "downStationId": 9999, "distance": 3},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "identical stations",
			method:     http.MethodPost,
			path:       "/lines",
			body:       map[string]any{"name": "1호선", "color": "남색", "upStationId": a.ID, "downStationId": a.ID, "distance": 3},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate station name",
			method:     http.MethodPost,
			path:       "/stations",
			body:       map[string]any{"name": "연신내역"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "station in use",
			method:     http.MethodDelete,
			path:       fmt.Sprintf("/stations/%d", a.ID),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "update unknown line",
			method:     http.MethodPatch,
			path:       "/lines/9999",
			body:       map[string]any{"name": "1호선", "color": "남색"},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, env, tt.method, tt.path, tt.body)
			expectStatus(t, resp, tt.wantStatus)

			var errResp api.ErrorResponse
			if err := json.Unmarshal(resp.body, &errResp); err != nil {
				t.Fatalf("expected an error document: %v", err)
			}
			if len(errResp.Errors) == 0 {
				t.Error("expected at least one error detail")
			}
		})
	}
}

func TestConcurrentLineCreation(t *testing.T) {
	env := startInProcessServer(t)
	defer env.shutdown()

	cleanupDatabase(t, env)

	a := createStation(t, env, "연신내역")
	b := createStation(t, env, "불광역")

	const workers = 10

	var wg sync.WaitGroup
	statuses := make([]int, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := doRequest(t, env, http.MethodPost, "/lines", map[string]any{
				"name":          "3호선",
				"color":         "주황색",
				"upStationId":   a.ID,
				"downStationId": b.ID,
				"distance":      10,
			})
			statuses[i] = resp.statusCode
		}()
	}
	wg.Wait()

	created := 0
	for _, status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
		default:
			t.Errorf("unexpected status %d", status)
		}
	}
	if created != 1 {
		t.Errorf("expected exactly one line to be created, got %d", created)
	}
}
