// Package handlers provides the HTTP handlers of the subway API.
//
// lines.go and stations.go implement the resource endpoints. The common
// infrastructure handlers (health, version) and the admin reset endpoint
// live alongside them. Admin handlers are for development and testing only
// and are not registered in prod.
package handlers
