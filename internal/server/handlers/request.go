package handlers

// request.go holds the request parsing helpers shared by the handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/transit-catalog/subway/internal/api"
	"github.com/transit-catalog/subway/internal/subway"
)

// decodeJSON decodes the request body into dst.
// Bodies cut off by the RequestSizeLimit middleware are reported as too large.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return api.NewRequestTooLargeError(
				fmt.Sprintf("request body exceeds maximum allowed size (%d bytes)", maxBytesErr.Limit),
			)
		}
		return api.WrapMalformedRequestError(err, "failed to decode request JSON")
	}
	return nil
}

// pathID parses a positive integer id from the named URL parameter
func pathID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, api.NewInvalidArgumentError(fmt.Sprintf("%s must be a positive integer, got %q", param, raw))
	}
	return id, nil
}

// operationResult is the metrics label for the outcome of a service call
func operationResult(err error) string {
	if err == nil {
		return ""
	}
	return subway.KindOf(err).String()
}
