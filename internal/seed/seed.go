// Package seed pre-populates the station registry from a YAML file:
//
//	stations:
//	  - name: 연신내역
//	  - name: 불광역
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/transit-catalog/subway/internal/subway"
	"gopkg.in/yaml.v3"
)

type File struct {
	Stations []StationEntry `yaml:"stations"`
}

type StationEntry struct {
	Name string `yaml:"name"`
}

// Load reads and validates a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed YAML. Blank and repeated names are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	seen := make(map[string]bool, len(f.Stations))
	for i, s := range f.Stations {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, fmt.Errorf("stations[%d]: name is required", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("stations[%d]: duplicate name %q", i, name)
		}
		seen[name] = true
		f.Stations[i].Name = name
	}
	return &f, nil
}

// Apply creates the stations that do not exist yet and returns how many were created.
func Apply(ctx context.Context, stations *subway.StationService, f *File, logger *slog.Logger) (int, error) {
	created := 0
	for _, entry := range f.Stations {
		station, err := stations.Create(ctx, entry.Name)
		if err != nil {
			if subway.KindOf(err) == subway.KindConflict {
				logger.Debug("station already registered", slog.String("name", entry.Name))
				continue
			}
			return created, fmt.Errorf("seed station %q: %w", entry.Name, err)
		}
		logger.Debug("station seeded",
			slog.Int64("id", station.ID),
			slog.String("name", station.Name),
		)
		created++
	}
	return created, nil
}
