package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every line and station",
		Long:  `Clears the catalog of a server running in the dev or test environment.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset deletes all data on %s; pass --yes to confirm", opts.apiURL)
			}
			if err := opts.client.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(opts.out, "catalog reset")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
