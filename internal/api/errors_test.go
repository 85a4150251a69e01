package api

import "testing"

// sanity check that the error codes are in the correct range

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		errCode  ErrorCode
		wantCode int
	}{
		{"malformed_request", ErrCodeMalformedRequest, 7001},
		{"invalid_argument", ErrCodeInvalidArgument, 7002},
		{"internal_error", ErrCodeInternalError, 7003},
		{"rate_limit", ErrCodeRateLimitExceeded, 7004},
		{"request_too_large", ErrCodeRequestTooLarge, 7005},
		{"not_found", ErrCodeNotFound, 8001},
		{"conflict", ErrCodeConflict, 8002},
	}
	for _, tt := range tests {
		if int(tt.errCode) != tt.wantCode {
			t.Errorf("%s: got %d, want %d", tt.name, tt.errCode, tt.wantCode)
		}
	}
}
