// Package client is an HTTP client for the subway API, used by subway-cli.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/transit-catalog/subway/internal/api"
)

// Error is a non-2xx response from the API.
// ErrorResponse is set when the body was a JSON error document.
type Error struct {
	StatusCode    int
	ErrorResponse *api.ErrorResponse
	Body          string
}

func (e *Error) Error() string {
	if e.ErrorResponse != nil && len(e.ErrorResponse.Errors) > 0 {
		detail := e.ErrorResponse.Errors[0]
		return fmt.Sprintf("%d %s: %s", e.StatusCode, detail.ErrorCodeText, detail.ErrorCodeMessage)
	}
	if e.Body != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute: %q", baseURL)
	}

	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) CreateStation(ctx context.Context, name string) (api.StationResponse, error) {
	var station api.StationResponse
	err := c.do(ctx, http.MethodPost, "/stations", api.StationRequest{Name: name}, &station)
	return station, err
}

func (c *Client) ListStations(ctx context.Context) ([]api.StationResponse, error) {
	var stations []api.StationResponse
	err := c.do(ctx, http.MethodGet, "/stations", nil, &stations)
	return stations, err
}

func (c *Client) GetStation(ctx context.Context, id int64) (api.StationResponse, error) {
	var station api.StationResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/stations/%d", id), nil, &station)
	return station, err
}

func (c *Client) DeleteStation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/stations/%d", id), nil, nil)
}

func (c *Client) CreateLine(ctx context.Context, req api.LineRequest) (api.LineResponse, error) {
	var line api.LineResponse
	err := c.do(ctx, http.MethodPost, "/lines", req, &line)
	return line, err
}

func (c *Client) ListLines(ctx context.Context) ([]api.LineResponse, error) {
	var lines []api.LineResponse
	err := c.do(ctx, http.MethodGet, "/lines", nil, &lines)
	return lines, err
}

func (c *Client) GetLine(ctx context.Context, id int64) (api.LineResponse, error) {
	var line api.LineResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/lines/%d", id), nil, &line)
	return line, err
}

func (c *Client) UpdateLine(ctx context.Context, id int64, req api.LineUpdateRequest) (api.LineResponse, error) {
	var line api.LineResponse
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/lines/%d", id), req, &line)
	return line, err
}

func (c *Client) DeleteLine(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/lines/%d", id), nil, nil)
}

// Reset clears the catalog. Only servers running in dev or test expose it.
func (c *Client) Reset(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/admin/reset", nil, nil)
}

// do sends body as JSON (when not nil) and decodes a 2xx response into out (when not nil)
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	u := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	apiErr := &Error{StatusCode: resp.StatusCode}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.StatusCode != 0 {
		apiErr.ErrorResponse = &errResp
		return apiErr
	}

	apiErr.Body = strings.TrimSpace(string(data))
	return apiErr
}
