package subway

import "context"

// StationRegistry resolves station ids.
// Implementations return ErrStationNotFound for unknown ids.
type StationRegistry interface {
	ResolveStation(ctx context.Context, id int64) (Station, error)

	// ResolveStations returns the stations found among ids, keyed by id.
	// Unknown ids are omitted rather than reported as an error.
	ResolveStations(ctx context.Context, ids []int64) (map[int64]Station, error)
}

// StationStore persists stations.
type StationStore interface {
	StationRegistry

	// CreateStation returns ErrDuplicateStationName when the name is taken.
	CreateStation(ctx context.Context, name string) (Station, error)

	// ListStations returns all stations in creation order.
	ListStations(ctx context.Context) ([]Station, error)

	// DeleteStation returns ErrStationNotFound for unknown ids and
	// ErrStationInUse when a line still references the station.
	DeleteStation(ctx context.Context, id int64) error
}

// LineStore persists lines. Each method is atomic with respect to the others.
type LineStore interface {
	// CreateLine assigns a new id. It returns ErrStationNotFound when a
	// referenced station no longer exists and ErrDuplicateLineName when the
	// name is taken.
	CreateLine(ctx context.Context, line NewLine) (Line, error)

	// ListLines returns all lines in creation order.
	ListLines(ctx context.Context) ([]Line, error)

	// GetLine returns ErrLineNotFound for unknown ids.
	GetLine(ctx context.Context, id int64) (Line, error)

	// UpdateLine returns ErrLineNotFound or ErrDuplicateLineName.
	UpdateLine(ctx context.Context, id int64, update LineUpdate) (Line, error)

	// DeleteLine returns ErrLineNotFound for unknown ids.
	DeleteLine(ctx context.Context, id int64) error
}

// Store is the full storage backend used by the server.
type Store interface {
	LineStore
	StationStore

	// Clear removes all lines and stations and restarts id assignment.
	// It exists for test harnesses and must not be called by production flows.
	Clear(ctx context.Context) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	Close()
}
