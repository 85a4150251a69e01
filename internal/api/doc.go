// Package api defines the wire format of the subway HTTP API: request and
// response bodies, the API error codes, the mapping of errors to the JSON
// error document, and helpers for writing responses.
package api
