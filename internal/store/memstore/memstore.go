// Package memstore is an in-memory implementation of subway.Store.
//
// All state sits behind a single RWMutex: mutations are serialized and reads
// run concurrently with other reads, so a read never observes a half-applied
// change. Ids are assigned from per-entity counters and therefore reflect
// creation order.
package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/transit-catalog/subway/internal/subway"
)

type Store struct {
	mu sync.RWMutex

	lastLineID    int64
	lastStationID int64

	lines    map[int64]subway.Line
	stations map[int64]subway.Station
}

var _ subway.Store = (*Store)(nil)

func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.lastLineID = 0
	s.lastStationID = 0
	s.lines = make(map[int64]subway.Line)
	s.stations = make(map[int64]subway.Station)
}

// Clear drops all lines and stations and restarts id assignment.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	return nil
}

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close() {}

// stations

func (s *Store) CreateStation(ctx context.Context, name string) (subway.Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, station := range s.stations {
		if station.Name == name {
			return subway.Station{}, subway.ErrDuplicateStationName
		}
	}

	s.lastStationID++
	station := subway.Station{ID: s.lastStationID, Name: name}
	s.stations[station.ID] = station
	return station, nil
}

func (s *Store) ResolveStation(ctx context.Context, id int64) (subway.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	station, ok := s.stations[id]
	if !ok {
		return subway.Station{}, subway.ErrStationNotFound
	}
	return station, nil
}

func (s *Store) ResolveStations(ctx context.Context, ids []int64) (map[int64]subway.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[int64]subway.Station, len(ids))
	for _, id := range ids {
		if station, ok := s.stations[id]; ok {
			found[id] = station
		}
	}
	return found, nil
}

func (s *Store) ListStations(ctx context.Context) ([]subway.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stations := make([]subway.Station, 0, len(s.stations))
	for _, station := range s.stations {
		stations = append(stations, station)
	}
	slices.SortFunc(stations, func(a, b subway.Station) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return stations, nil
}

func (s *Store) DeleteStation(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stations[id]; !ok {
		return subway.ErrStationNotFound
	}
	for _, line := range s.lines {
		if line.UpStationID == id || line.DownStationID == id {
			return subway.ErrStationInUse
		}
	}
	delete(s.stations, id)
	return nil
}

// lines

func (s *Store) CreateLine(ctx context.Context, req subway.NewLine) (subway.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stations[req.UpStationID]; !ok {
		return subway.Line{}, subway.ErrStationNotFound
	}
	if _, ok := s.stations[req.DownStationID]; !ok {
		return subway.Line{}, subway.ErrStationNotFound
	}
	if s.lineNameTaken(req.Name, 0) {
		return subway.Line{}, subway.ErrDuplicateLineName
	}

	s.lastLineID++
	line := subway.Line{
		ID:            s.lastLineID,
		Name:          req.Name,
		Color:         req.Color,
		UpStationID:   req.UpStationID,
		DownStationID: req.DownStationID,
		Distance:      req.Distance,
	}
	s.lines[line.ID] = line
	return line, nil
}

func (s *Store) ListLines(ctx context.Context) ([]subway.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]subway.Line, 0, len(s.lines))
	for _, line := range s.lines {
		lines = append(lines, line)
	}
	slices.SortFunc(lines, func(a, b subway.Line) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return lines, nil
}

func (s *Store) GetLine(ctx context.Context, id int64) (subway.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	line, ok := s.lines[id]
	if !ok {
		return subway.Line{}, subway.ErrLineNotFound
	}
	return line, nil
}

func (s *Store) UpdateLine(ctx context.Context, id int64, update subway.LineUpdate) (subway.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.lines[id]
	if !ok {
		return subway.Line{}, subway.ErrLineNotFound
	}
	if s.lineNameTaken(update.Name, id) {
		return subway.Line{}, subway.ErrDuplicateLineName
	}

	line = update.Apply(line)
	s.lines[id] = line
	return line, nil
}

func (s *Store) DeleteLine(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lines[id]; !ok {
		return subway.ErrLineNotFound
	}
	delete(s.lines, id)
	return nil
}

// lineNameTaken reports whether a line other than exceptID uses name.
// Callers must hold the lock.
func (s *Store) lineNameTaken(name string, exceptID int64) bool {
	for id, line := range s.lines {
		if id != exceptID && line.Name == name {
			return true
		}
	}
	return false
}
