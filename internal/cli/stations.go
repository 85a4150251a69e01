package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStationsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stations",
		Aliases: []string{"station"},
		Short:   "Manage stations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Register a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			station, err := opts.client.CreateStation(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.printStations(station)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stations, err := opts.client.ListStations(cmd.Context())
			if err != nil {
				return err
			}
			return opts.printStations(stations...)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			station, err := opts.client.GetStation(cmd.Context(), id)
			if err != nil {
				return err
			}
			return opts.printStations(station)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a station that no line uses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.client.DeleteStation(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(opts.out, "station %d deleted\n", id)
			return nil
		},
	})

	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer, got %q", raw)
	}
	return id, nil
}
