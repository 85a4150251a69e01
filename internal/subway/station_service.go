package subway

import (
	"context"
	"errors"
	"fmt"
)

// StationService manages the station registry.
type StationService struct {
	stations StationStore
}

func NewStationService(stations StationStore) *StationService {
	return &StationService{stations: stations}
}

// Create registers a station. Names are unique.
func (s *StationService) Create(ctx context.Context, name string) (Station, error) {
	name, err := normalizeStationName(name)
	if err != nil {
		return Station{}, err
	}

	station, err := s.stations.CreateStation(ctx, name)
	if err != nil {
		if errors.Is(err, ErrDuplicateStationName) {
			return Station{}, WrapConflictError(err, fmt.Sprintf("station %q", name))
		}
		return Station{}, WrapInternalError(err, "failed to create station")
	}
	return station, nil
}

// List returns all stations in creation order.
func (s *StationService) List(ctx context.Context) ([]Station, error) {
	stations, err := s.stations.ListStations(ctx)
	if err != nil {
		return nil, WrapInternalError(err, "failed to list stations")
	}
	if stations == nil {
		stations = []Station{}
	}
	return stations, nil
}

func (s *StationService) Get(ctx context.Context, id int64) (Station, error) {
	station, err := s.stations.ResolveStation(ctx, id)
	if err != nil {
		if errors.Is(err, ErrStationNotFound) {
			return Station{}, WrapNotFoundError(err, fmt.Sprintf("station %d", id))
		}
		return Station{}, WrapInternalError(err, "failed to get station")
	}
	return station, nil
}

// Delete removes a station that no line references.
func (s *StationService) Delete(ctx context.Context, id int64) error {
	if err := s.stations.DeleteStation(ctx, id); err != nil {
		switch {
		case errors.Is(err, ErrStationNotFound):
			return WrapNotFoundError(err, fmt.Sprintf("station %d", id))
		case errors.Is(err, ErrStationInUse):
			return WrapConflictError(err, fmt.Sprintf("station %d", id))
		}
		return WrapInternalError(err, "failed to delete station")
	}
	return nil
}
