package subway

import (
	"fmt"
	"math"
	"strings"
)

// MaxDistance is the largest distance a line can have; the database column is an int4.
const MaxDistance = math.MaxInt32

// Line is the stored form of a line.
//
// Only the ids of the two terminal stations are kept; the station details are
// resolved when a LineView is built.
type Line struct {
	ID            int64
	Name          string
	Color         string
	UpStationID   int64
	DownStationID int64
	Distance      int
}

// LineView is the read view of a line: the stored attributes plus the
// resolved terminal stations, up-station first.
type LineView struct {
	Line
	Stations []Station
}

// NewLine holds the attributes of a line to be created.
type NewLine struct {
	Name          string
	Color         string
	UpStationID   int64
	DownStationID int64
	Distance      int
}

// Validate checks the invariants that can be verified without the registry
// and returns the normalized request.
func (n NewLine) Validate() (NewLine, error) {
	name, color, err := normalizeNameAndColor(n.Name, n.Color)
	if err != nil {
		return NewLine{}, err
	}
	n.Name, n.Color = name, color

	if n.UpStationID <= 0 {
		return NewLine{}, NewInvalidArgumentError("upStationId is required")
	}
	if n.DownStationID <= 0 {
		return NewLine{}, NewInvalidArgumentError("downStationId is required")
	}
	if n.UpStationID == n.DownStationID {
		return NewLine{}, NewInvalidArgumentError(
			fmt.Sprintf("upStationId and downStationId must differ (both %d)", n.UpStationID))
	}
	if err := validateDistance(n.Distance); err != nil {
		return NewLine{}, err
	}
	return n, nil
}

// LineUpdate holds the mutable attributes of a line.
// Distance is left unchanged when nil.
type LineUpdate struct {
	Name     string
	Color    string
	Distance *int
}

// Validate returns the normalized update or an InvalidArgument error.
func (u LineUpdate) Validate() (LineUpdate, error) {
	name, color, err := normalizeNameAndColor(u.Name, u.Color)
	if err != nil {
		return LineUpdate{}, err
	}
	u.Name, u.Color = name, color

	if u.Distance != nil {
		if err := validateDistance(*u.Distance); err != nil {
			return LineUpdate{}, err
		}
	}
	return u, nil
}

// Apply returns a copy of l with the update applied.
func (u LineUpdate) Apply(l Line) Line {
	l.Name = u.Name
	l.Color = u.Color
	if u.Distance != nil {
		l.Distance = *u.Distance
	}
	return l
}

func validateDistance(d int) error {
	if d <= 0 {
		return NewInvalidArgumentError(fmt.Sprintf("distance must be greater than 0, got %d", d))
	}
	if d > MaxDistance {
		return NewInvalidArgumentError(fmt.Sprintf("distance must be at most %d, got %d", MaxDistance, d))
	}
	return nil
}

func normalizeNameAndColor(name, color string) (string, string, error) {
	name = strings.TrimSpace(name)
	color = strings.TrimSpace(color)
	if name == "" {
		return "", "", NewInvalidArgumentError("name is required")
	}
	if color == "" {
		return "", "", NewInvalidArgumentError("color is required")
	}
	return name, color, nil
}
