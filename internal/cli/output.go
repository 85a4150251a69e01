package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/transit-catalog/subway/internal/api"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// yaml mirrors of the API responses, so yaml output uses the same keys as the JSON API
type stationYAML struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

type lineYAML struct {
	ID       int64         `yaml:"id"`
	Name     string        `yaml:"name"`
	Color    string        `yaml:"color"`
	Distance int           `yaml:"distance"`
	Stations []stationYAML `yaml:"stations"`
}

func toStationYAML(s api.StationResponse) stationYAML {
	return stationYAML{ID: s.ID, Name: s.Name}
}

func toLineYAML(l api.LineResponse) lineYAML {
	stations := make([]stationYAML, 0, len(l.Stations))
	for _, s := range l.Stations {
		stations = append(stations, toStationYAML(s))
	}
	return lineYAML{ID: l.ID, Name: l.Name, Color: l.Color, Distance: l.Distance, Stations: stations}
}

func (o *options) printStations(stations ...api.StationResponse) error {
	switch o.output {
	case outputJSON:
		return o.printJSON(stations)
	case outputYAML:
		out := make([]stationYAML, 0, len(stations))
		for _, s := range stations {
			out = append(out, toStationYAML(s))
		}
		return o.printYAML(out)
	}

	tw := tabwriter.NewWriter(o.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, s := range stations {
		fmt.Fprintf(tw, "%d\t%s\n", s.ID, s.Name)
	}
	return tw.Flush()
}

func (o *options) printLines(lines ...api.LineResponse) error {
	switch o.output {
	case outputJSON:
		return o.printJSON(lines)
	case outputYAML:
		out := make([]lineYAML, 0, len(lines))
		for _, l := range lines {
			out = append(out, toLineYAML(l))
		}
		return o.printYAML(out)
	}

	tw := tabwriter.NewWriter(o.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOLOR\tDISTANCE\tSTATIONS")
	for _, l := range lines {
		names := make([]string, 0, len(l.Stations))
		for _, s := range l.Stations {
			names = append(names, s.Name)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", l.ID, l.Name, l.Color, l.Distance, strings.Join(names, " - "))
	}
	return tw.Flush()
}

func (o *options) printJSON(v any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (o *options) printYAML(v any) error {
	enc := yaml.NewEncoder(o.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
