package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/five82/patternview/internal/app"
)

// RunFunc starts the viewer. It is app.Run outside of tests.
type RunFunc func(ctx context.Context, opts app.Options) error

// NewRootCommand creates the root command.
func NewRootCommand(version, commit, date string, run RunFunc) *cobra.Command {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:   "patternview",
		Short: "Browse log-pattern reports in the terminal",
		Long: `patternview is an interactive viewer for aggregated log-pattern reports.

A report is read either from a local JSON file (--from-local) or from object
storage, addressed by namespace, application name, year and month.`,
		Example: `  patternview --from-local ./report.json
  patternview --namespace payments --name api -y 2022 -m 3 -p logs-readonly`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.LocalPath, "from-local", "f", "", "read the report from a local file")
	flags.StringVar(&opts.Namespace, "namespace", "", "namespace the application runs in")
	flags.StringVar(&opts.App, "name", "", "application name")
	flags.IntVarP(&opts.Year, "year", "y", 0, "report year")
	flags.IntVarP(&opts.Month, "month", "m", 0, "report month (1-12)")
	flags.StringVarP(&opts.Profile, "profile", "p", "", "AWS shared config profile")
	flags.StringVar(&opts.Region, "region", "", "AWS region (default from config)")
	flags.StringVar(&opts.Bucket, "bucket", "", "bucket holding the reports (default from config)")
	flags.StringVar(&opts.Endpoint, "endpoint", "", "S3-compatible endpoint URL")
	flags.StringVar(&opts.Theme, "theme", "", "color theme (Nightfox, Kanagawa, Slate)")

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug-level logging")

	rootCmd.MarkFlagsMutuallyExclusive("from-local", "namespace")
	rootCmd.MarkFlagsMutuallyExclusive("from-local", "name")
	rootCmd.MarkFlagsRequiredTogether("namespace", "name", "year", "month")

	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "patternview %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
