// Package integration contains end-to-end tests for the subway API server.
//
// These tests verify the server handles API requests correctly (expected responses,
// error handling, database persistence, etc). Each test runs against a temporary
// PostgreSQL database with migrations applied, and the server is started in-process.
//
// The line and station logic is unit tested against the in-memory store in internal/subway.
// If bugs are introduced there, there will be cascading failures here -
// fix the low-level problems first.
package integration
