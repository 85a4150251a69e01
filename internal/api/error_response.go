package api

// error_response.go maps errors to the JSON error document returned to clients

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/transit-catalog/subway/internal/logger"
	"github.com/transit-catalog/subway/internal/subway"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {

	// The HTTP method used to make the request e.g. GET, POST, etc
	HTTPMethod string `json:"httpMethod"`

	// The URI that was requested
	RequestURI string `json:"requestUri"`

	// The HTTP status code returned
	StatusCode int `json:"statusCode"`

	// A standard short description corresponding to the HTTP status code
	StatusCodeText string `json:"statusCodeText"`

	// A description of the error category
	StatusCodeMessage string `json:"statusCodeMessage,omitempty"`

	// The request id, for correlating with server logs
	ProviderCorrelationReference string `json:"providerCorrelationReference,omitempty"`

	// The DateTime corresponding to the error occurring
	ErrorDateTime string `json:"errorDateTime"`

	// An array of errors providing more detail about the root cause
	Errors []DetailedError `json:"errors"`
}

// DetailedError represents a detailed error in the error response
type DetailedError struct {
	ErrorCode        ErrorCode `json:"errorCode"`
	ErrorCodeText    string    `json:"errorCodeText"`
	ErrorCodeMessage string    `json:"errorCodeMessage"`
}

// MapErrorToResponse maps api.APIError, subway.SubwayError or generic errors to an error response.
//
// Internal errors are reported with a generic message; the full error is only logged server-side.
func MapErrorToResponse(err error, r *http.Request) *ErrorResponse {
	requestID := middleware.GetReqID(r.Context())

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return errorResponseFromAPI(apiErr, r, requestID)
	}

	var subwayErr *subway.SubwayError
	if errors.As(err, &subwayErr) {
		return errorResponseFromSubway(subwayErr, r, requestID)
	}

	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Error("BUG: Unmapped error type in MapErrorToResponse",
		slog.String("error_type", fmt.Sprintf("%T", err)),
		slog.String("error", err.Error()),
		slog.String("request_id", requestID),
	)
	return internalErrorResponse(r, requestID)
}

func errorResponseFromAPI(err *APIError, r *http.Request, requestID string) *ErrorResponse {
	var statusCode int
	var errorCodeText string

	switch err.Code() {
	case ErrCodeMalformedRequest:
		statusCode = http.StatusBadRequest
		errorCodeText = "Malformed request"
	case ErrCodeInvalidArgument:
		statusCode = http.StatusBadRequest
		errorCodeText = "Invalid argument"
	case ErrCodeRateLimitExceeded:
		statusCode = http.StatusTooManyRequests
		errorCodeText = "Rate limit exceeded"
	case ErrCodeRequestTooLarge:
		statusCode = http.StatusRequestEntityTooLarge
		errorCodeText = "Request too large"
	default:
		return internalErrorResponse(r, requestID)
	}

	return newErrorResponse(r, requestID, statusCode, err.Code(), errorCodeText, err.Error())
}

func errorResponseFromSubway(err *subway.SubwayError, r *http.Request, requestID string) *ErrorResponse {
	switch err.Kind() {
	case subway.KindInvalidArgument:
		return newErrorResponse(r, requestID, http.StatusBadRequest, ErrCodeInvalidArgument, "Invalid argument", err.Error())
	case subway.KindNotFound:
		return newErrorResponse(r, requestID, http.StatusNotFound, ErrCodeNotFound, "Not found", err.Error())
	case subway.KindConflict:
		return newErrorResponse(r, requestID, http.StatusConflict, ErrCodeConflict, "Conflict", err.Error())
	default:
		return internalErrorResponse(r, requestID)
	}
}

func internalErrorResponse(r *http.Request, requestID string) *ErrorResponse {
	return newErrorResponse(r, requestID, http.StatusInternalServerError,
		ErrCodeInternalError, "Internal Error", "An internal error occurred")
}

func newErrorResponse(r *http.Request, requestID string, statusCode int, code ErrorCode, text, message string) *ErrorResponse {
	return &ErrorResponse{
		HTTPMethod:                   r.Method,
		RequestURI:                   r.RequestURI,
		StatusCode:                   statusCode,
		StatusCodeText:               http.StatusText(statusCode),
		StatusCodeMessage:            text,
		ProviderCorrelationReference: requestID,
		ErrorDateTime:                time.Now().UTC().Format(time.RFC3339),
		Errors: []DetailedError{
			{
				ErrorCode:        code,
				ErrorCodeText:    text,
				ErrorCodeMessage: message,
			},
		},
	}
}
