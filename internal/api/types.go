package api

// types.go defines the request and response bodies of the subway API

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/transit-catalog/subway/internal/subway"
)

// FlexibleInt is an integer that may be sent as a JSON number or as a
// numeric string ("10"). Some clients send every field as a string.
type FlexibleInt int64

func (n *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", s)
		}
		*n = FlexibleInt(v)
		return nil
	}

	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("expected an integer, got %s", data)
	}
	*n = FlexibleInt(v)
	return nil
}

// LineRequest is the request body for POST /lines
type LineRequest struct {
	Name          string      `json:"name" example:"3호선"`
	Color         string      `json:"color" example:"주황색"`
	UpStationID   FlexibleInt `json:"upStationId" swaggertype:"integer" example:"1"`
	DownStationID FlexibleInt `json:"downStationId" swaggertype:"integer" example:"2"`
	Distance      FlexibleInt `json:"distance" swaggertype:"integer" example:"10"`
}

// ToNewLine converts the request to the domain type.
func (r LineRequest) ToNewLine() subway.NewLine {
	return subway.NewLine{
		Name:          r.Name,
		Color:         r.Color,
		UpStationID:   int64(r.UpStationID),
		DownStationID: int64(r.DownStationID),
		Distance:      int(r.Distance),
	}
}

// LineUpdateRequest is the request body for PATCH /lines/{lineID}.
// Distance is optional; stations cannot be changed.
type LineUpdateRequest struct {
	Name     string       `json:"name" example:"2호선"`
	Color    string       `json:"color" example:"주황색"`
	Distance *FlexibleInt `json:"distance,omitempty" swaggertype:"integer" example:"10"`
}

// ToLineUpdate converts the request to the domain type.
func (r LineUpdateRequest) ToLineUpdate() subway.LineUpdate {
	update := subway.LineUpdate{
		Name:  r.Name,
		Color: r.Color,
	}
	if r.Distance != nil {
		d := int(*r.Distance)
		update.Distance = &d
	}
	return update
}

// LineResponse is the read view of a line
type LineResponse struct {
	ID       int64             `json:"id" example:"1"`
	Name     string            `json:"name" example:"3호선"`
	Color    string            `json:"color" example:"주황색"`
	Distance int               `json:"distance" example:"10"`
	Stations []StationResponse `json:"stations"`
}

// StationRequest is the request body for POST /stations
type StationRequest struct {
	Name string `json:"name" example:"연신내역"`
}

type StationResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"연신내역"`
}

// LineToResponse converts a line view, keeping the up-station first.
func LineToResponse(view subway.LineView) LineResponse {
	stations := make([]StationResponse, 0, len(view.Stations))
	for _, s := range view.Stations {
		stations = append(stations, StationToResponse(s))
	}
	return LineResponse{
		ID:       view.ID,
		Name:     view.Name,
		Color:    view.Color,
		Distance: view.Distance,
		Stations: stations,
	}
}

// LinesToResponse always returns a non-nil slice so that an empty catalog encodes as [].
func LinesToResponse(views []subway.LineView) []LineResponse {
	lines := make([]LineResponse, 0, len(views))
	for _, v := range views {
		lines = append(lines, LineToResponse(v))
	}
	return lines
}

func StationToResponse(s subway.Station) StationResponse {
	return StationResponse{ID: s.ID, Name: s.Name}
}

func StationsToResponse(stations []subway.Station) []StationResponse {
	out := make([]StationResponse, 0, len(stations))
	for _, s := range stations {
		out = append(out, StationToResponse(s))
	}
	return out
}
