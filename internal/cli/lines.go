package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transit-catalog/subway/internal/api"
)

func newLinesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lines",
		Aliases: []string{"line"},
		Short:   "Manage lines",
	}

	cmd.AddCommand(newLineCreateCmd(opts))
	cmd.AddCommand(newLineUpdateCmd(opts))

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := opts.client.ListLines(cmd.Context())
			if err != nil {
				return err
			}
			return opts.printLines(lines...)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a line and its stations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			line, err := opts.client.GetLine(cmd.Context(), id)
			if err != nil {
				return err
			}
			return opts.printLines(line)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.client.DeleteLine(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(opts.out, "line %d deleted\n", id)
			return nil
		},
	})

	return cmd
}

func newLineCreateCmd(opts *options) *cobra.Command {
	var req api.LineRequest
	var up, down, distance int64

	cmd := &cobra.Command{
		Use:     "create <name>",
		Short:   "Create a line between two stations",
		Example: `  subway-cli lines create 3호선 --color 주황색 --up 1 --down 2 --distance 10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Name = args[0]
			req.UpStationID = api.FlexibleInt(up)
			req.DownStationID = api.FlexibleInt(down)
			req.Distance = api.FlexibleInt(distance)

			line, err := opts.client.CreateLine(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.printLines(line)
		},
	}

	cmd.Flags().StringVar(&req.Color, "color", "", "display color")
	cmd.Flags().Int64Var(&up, "up", 0, "up-station id")
	cmd.Flags().Int64Var(&down, "down", 0, "down-station id")
	cmd.Flags().Int64Var(&distance, "distance", 0, "distance between the stations")
	_ = cmd.MarkFlagRequired("color")
	_ = cmd.MarkFlagRequired("up")
	_ = cmd.MarkFlagRequired("down")
	_ = cmd.MarkFlagRequired("distance")

	return cmd
}

func newLineUpdateCmd(opts *options) *cobra.Command {
	var name, color string
	var distance int64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename or recolor a line",
		Long:  `Sets the name and color of a line. --distance is optional; the stations of a line cannot be changed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			req := api.LineUpdateRequest{Name: name, Color: color}
			if cmd.Flags().Changed("distance") {
				d := api.FlexibleInt(distance)
				req.Distance = &d
			}

			line, err := opts.client.UpdateLine(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			return opts.printLines(line)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new line name")
	cmd.Flags().StringVar(&color, "color", "", "new display color")
	cmd.Flags().Int64Var(&distance, "distance", 0, "new distance")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("color")

	return cmd
}
