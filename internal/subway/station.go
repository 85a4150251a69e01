package subway

import "strings"

// Station is a stop registered in the station registry.
// Lines refer to stations by ID only.
type Station struct {
	ID   int64
	Name string
}

// normalizeStationName trims the name and rejects blank names.
func normalizeStationName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", NewInvalidArgumentError("station name is required")
	}
	return name, nil
}
