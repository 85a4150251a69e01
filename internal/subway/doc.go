// Package subway is the core of the line catalog.
//
// It owns the Line and Station entities, their invariants and the services
// that mediate between the line store and the station registry:
//
//   - LineService creates, lists, reads, updates and deletes lines. Lines store
//     only the ids of their terminal stations; the read view (LineView) resolves
//     them against the StationRegistry at read time, up-station first.
//   - StationService manages the registry the lines refer to.
//
// Storage is abstracted behind the LineStore / StationStore interfaces
// (see store.go). Implementations live in internal/store.
//
// Errors returned by the services are *SubwayError values carrying an
// ErrorKind, which the HTTP layer maps to status codes (see internal/api).
package subway
