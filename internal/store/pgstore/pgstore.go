// Package pgstore is the PostgreSQL implementation of subway.Store.
//
// Every operation is a single statement, so PostgreSQL provides the atomicity
// the line lifecycle needs: ids come from BIGSERIAL sequences, name uniqueness
// and station references are enforced by constraints (see sql/schema), and
// constraint violations are translated to the subway sentinel errors.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/transit-catalog/subway/internal/database"
	"github.com/transit-catalog/subway/internal/subway"
)

// postgres error codes
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// constraint names from sql/schema
const (
	lineNameConstraint    = "lines_name_key"
	stationNameConstraint = "stations_name_key"
)

type Store struct {
	pool    *pgxpool.Pool
	queries *database.Queries
}

var _ subway.Store = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:    pool,
		queries: database.New(pool),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	_, err := s.queries.IsDatabaseRunning(ctx)
	return err
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Clear truncates lines and stations and restarts the id sequences.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.queries.TruncateAll(ctx); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}

// stations

func (s *Store) CreateStation(ctx context.Context, name string) (subway.Station, error) {
	row, err := s.queries.CreateStation(ctx, name)
	if err != nil {
		if isConstraintViolation(err, uniqueViolation, stationNameConstraint) {
			return subway.Station{}, subway.ErrDuplicateStationName
		}
		return subway.Station{}, err
	}
	return stationFromRow(row), nil
}

func (s *Store) ResolveStation(ctx context.Context, id int64) (subway.Station, error) {
	row, err := s.queries.GetStationByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return subway.Station{}, subway.ErrStationNotFound
		}
		return subway.Station{}, err
	}
	return stationFromRow(row), nil
}

func (s *Store) ResolveStations(ctx context.Context, ids []int64) (map[int64]subway.Station, error) {
	found := make(map[int64]subway.Station, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	rows, err := s.queries.GetStationsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		found[row.ID] = stationFromRow(row)
	}
	return found, nil
}

func (s *Store) ListStations(ctx context.Context) ([]subway.Station, error) {
	rows, err := s.queries.ListStations(ctx)
	if err != nil {
		return nil, err
	}
	stations := make([]subway.Station, 0, len(rows))
	for _, row := range rows {
		stations = append(stations, stationFromRow(row))
	}
	return stations, nil
}

func (s *Store) DeleteStation(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteStation(ctx, id)
	if err != nil {
		if isConstraintViolation(err, foreignKeyViolation, "") {
			return subway.ErrStationInUse
		}
		return err
	}
	if n == 0 {
		return subway.ErrStationNotFound
	}
	return nil
}

// lines

func (s *Store) CreateLine(ctx context.Context, req subway.NewLine) (subway.Line, error) {
	distance, err := distanceParam(req.Distance)
	if err != nil {
		return subway.Line{}, err
	}

	row, err := s.queries.CreateLine(ctx, database.CreateLineParams{
		Name:          req.Name,
		Color:         req.Color,
		UpStationID:   req.UpStationID,
		DownStationID: req.DownStationID,
		Distance:      distance,
	})
	if err != nil {
		return subway.Line{}, mapLineError(err)
	}
	return lineFromRow(row), nil
}

func (s *Store) ListLines(ctx context.Context) ([]subway.Line, error) {
	rows, err := s.queries.ListLines(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]subway.Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, lineFromRow(row))
	}
	return lines, nil
}

func (s *Store) GetLine(ctx context.Context, id int64) (subway.Line, error) {
	row, err := s.queries.GetLineByID(ctx, id)
	if err != nil {
		return subway.Line{}, mapLineError(err)
	}
	return lineFromRow(row), nil
}

func (s *Store) UpdateLine(ctx context.Context, id int64, update subway.LineUpdate) (subway.Line, error) {
	var distance *int32
	if update.Distance != nil {
		d, err := distanceParam(*update.Distance)
		if err != nil {
			return subway.Line{}, err
		}
		distance = &d
	}

	row, err := s.queries.UpdateLine(ctx, database.UpdateLineParams{
		ID:       id,
		Name:     update.Name,
		Color:    update.Color,
		Distance: distance,
	})
	if err != nil {
		return subway.Line{}, mapLineError(err)
	}
	return lineFromRow(row), nil
}

func (s *Store) DeleteLine(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteLine(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return subway.ErrLineNotFound
	}
	return nil
}

// distanceParam converts a distance for the int4 column, refusing values that would wrap.
func distanceParam(d int) (int32, error) {
	if d <= 0 || d > subway.MaxDistance {
		return 0, fmt.Errorf("distance %d out of range for the lines table", d)
	}
	return int32(d), nil
}

// mapLineError translates driver errors from the line queries.
func mapLineError(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return subway.ErrLineNotFound
	case isConstraintViolation(err, uniqueViolation, lineNameConstraint):
		return subway.ErrDuplicateLineName
	case isConstraintViolation(err, foreignKeyViolation, ""):
		return subway.ErrStationNotFound
	}
	return err
}

// isConstraintViolation reports whether err is a postgres error with the given
// code. When constraint is not empty the constraint name must match as well.
func isConstraintViolation(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func stationFromRow(row database.Station) subway.Station {
	return subway.Station{
		ID:   row.ID,
		Name: row.Name,
	}
}

func lineFromRow(row database.Line) subway.Line {
	return subway.Line{
		ID:            row.ID,
		Name:          row.Name,
		Color:         row.Color,
		UpStationID:   row.UpStationID,
		DownStationID: row.DownStationID,
		Distance:      int(row.Distance),
	}
}
