// Package server provides the HTTP server for the subway API.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// The package wires the routes for
//   - the line and station resources (/lines, /stations)
//   - common infrastructure handlers (health, version, metrics)
//   - the admin reset endpoint, registered in dev and test only.
//
// handlers are in internal/server/handlers and middleware is in internal/server/middleware
package server
