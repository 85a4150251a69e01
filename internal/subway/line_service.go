package subway

import (
	"context"
	"errors"
	"fmt"
)

// LineService implements the line lifecycle:
//
//	nonexistent -> active (Create) -> active (Update) -> nonexistent (Delete)
//
// Station references are checked against the registry on Create and resolved
// again on every read.
type LineService struct {
	lines    LineStore
	stations StationRegistry
}

// NewLineService creates a LineService backed by the given stores.
func NewLineService(lines LineStore, stations StationRegistry) *LineService {
	return &LineService{
		lines:    lines,
		stations: stations,
	}
}

// Create validates the request, checks that both stations exist and stores the line.
func (s *LineService) Create(ctx context.Context, req NewLine) (LineView, error) {
	req, err := req.Validate()
	if err != nil {
		return LineView{}, err
	}

	upStation, err := s.resolveStation(ctx, req.UpStationID, "upStationId")
	if err != nil {
		return LineView{}, err
	}
	downStation, err := s.resolveStation(ctx, req.DownStationID, "downStationId")
	if err != nil {
		return LineView{}, err
	}

	line, err := s.lines.CreateLine(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateLineName):
			return LineView{}, WrapConflictError(err, fmt.Sprintf("line %q", req.Name))
		case errors.Is(err, ErrStationNotFound):
			// a station was removed between the lookup and the insert
			return LineView{}, WrapNotFoundError(err, "line stations")
		}
		return LineView{}, WrapInternalError(err, "failed to create line")
	}

	return LineView{Line: line, Stations: []Station{upStation, downStation}}, nil
}

// List returns every line with its resolved stations, in creation order.
// An empty catalog yields an empty, non-nil slice.
func (s *LineService) List(ctx context.Context) ([]LineView, error) {
	lines, err := s.lines.ListLines(ctx)
	if err != nil {
		return nil, WrapInternalError(err, "failed to list lines")
	}

	ids := make([]int64, 0, len(lines)*2)
	for _, line := range lines {
		ids = append(ids, line.UpStationID, line.DownStationID)
	}

	stations, err := s.stations.ResolveStations(ctx, ids)
	if err != nil {
		return nil, WrapInternalError(err, "failed to resolve line stations")
	}

	views := make([]LineView, 0, len(lines))
	for _, line := range lines {
		view, err := buildView(line, stations)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Get returns the line with the given id.
func (s *LineService) Get(ctx context.Context, id int64) (LineView, error) {
	line, err := s.getLine(ctx, id)
	if err != nil {
		return LineView{}, err
	}
	return s.view(ctx, line)
}

// Update replaces the name and color of a line, and its distance when given.
// Station references never change.
func (s *LineService) Update(ctx context.Context, id int64, update LineUpdate) (LineView, error) {
	update, err := update.Validate()
	if err != nil {
		return LineView{}, err
	}

	line, err := s.lines.UpdateLine(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, ErrLineNotFound):
			return LineView{}, WrapNotFoundError(err, fmt.Sprintf("line %d", id))
		case errors.Is(err, ErrDuplicateLineName):
			return LineView{}, WrapConflictError(err, fmt.Sprintf("line %q", update.Name))
		}
		return LineView{}, WrapInternalError(err, "failed to update line")
	}
	return s.view(ctx, line)
}

// Delete removes a line. Deleting an unknown id is a NotFound error.
func (s *LineService) Delete(ctx context.Context, id int64) error {
	if err := s.lines.DeleteLine(ctx, id); err != nil {
		if errors.Is(err, ErrLineNotFound) {
			return WrapNotFoundError(err, fmt.Sprintf("line %d", id))
		}
		return WrapInternalError(err, "failed to delete line")
	}
	return nil
}

func (s *LineService) getLine(ctx context.Context, id int64) (Line, error) {
	line, err := s.lines.GetLine(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLineNotFound) {
			return Line{}, WrapNotFoundError(err, fmt.Sprintf("line %d", id))
		}
		return Line{}, WrapInternalError(err, "failed to get line")
	}
	return line, nil
}

func (s *LineService) resolveStation(ctx context.Context, id int64, field string) (Station, error) {
	station, err := s.stations.ResolveStation(ctx, id)
	if err != nil {
		if errors.Is(err, ErrStationNotFound) {
			return Station{}, WrapNotFoundError(err, fmt.Sprintf("%s %d", field, id))
		}
		return Station{}, WrapInternalError(err, "failed to resolve station")
	}
	return station, nil
}

func (s *LineService) view(ctx context.Context, line Line) (LineView, error) {
	stations, err := s.stations.ResolveStations(ctx, []int64{line.UpStationID, line.DownStationID})
	if err != nil {
		return LineView{}, WrapInternalError(err, "failed to resolve line stations")
	}
	return buildView(line, stations)
}

// buildView orders the terminal stations up-station first.
// Stations cannot be deleted while referenced, so a missing one is a bug.
func buildView(line Line, stations map[int64]Station) (LineView, error) {
	up, ok := stations[line.UpStationID]
	if !ok {
		return LineView{}, WrapInternalError(ErrStationNotFound,
			fmt.Sprintf("line %d references unknown up station %d", line.ID, line.UpStationID))
	}
	down, ok := stations[line.DownStationID]
	if !ok {
		return LineView{}, WrapInternalError(ErrStationNotFound,
			fmt.Sprintf("line %d references unknown down station %d", line.ID, line.DownStationID))
	}
	return LineView{Line: line, Stations: []Station{up, down}}, nil
}
