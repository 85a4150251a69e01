// Package cli implements subway-cli, a command line client for the subway API.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/transit-catalog/subway/internal/client"
	"github.com/transit-catalog/subway/internal/config"
	"github.com/transit-catalog/subway/internal/version"
)

// options are the persistent flags shared by every command
type options struct {
	apiURL  string
	timeout time.Duration
	output  string

	client *client.Client
	out    io.Writer
}

// NewRootCmd builds the command tree. Flag defaults come from SUBWAY_API_URL and CLIENT_TIMEOUT.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	defaults := config.ClientEnvironment{APIURL: "http://localhost:8080", ClientTimeout: 10 * time.Second}
	if cfg, err := config.NewClientConfig(); err == nil {
		defaults = *cfg
	}

	cmd := &cobra.Command{
		Use:               "subway-cli",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "Subway line catalog CLI",
		Long:              `subway-cli manages the stations and lines of a subway-server`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != outputTable && opts.output != outputJSON && opts.output != outputYAML {
				return fmt.Errorf("invalid --output %q (use %s, %s or %s)", opts.output, outputTable, outputJSON, outputYAML)
			}

			c, err := client.New(opts.apiURL, opts.timeout)
			if err != nil {
				return err
			}
			opts.client = c
			opts.out = cmd.OutOrStdout()
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", defaults.APIURL, "base URL of the subway API")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaults.ClientTimeout, "HTTP request timeout")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputTable, "output format: table, json or yaml")

	cmd.AddCommand(newStationsCmd(opts))
	cmd.AddCommand(newLinesCmd(opts))
	cmd.AddCommand(newResetCmd(opts))

	return cmd
}

func Execute() {
	rootCmd := NewRootCmd()

	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
