package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/prefs"
)

// errNoTerminal is returned when the TUI is started without a terminal.
var errNoTerminal = errors.New("stdout is not a terminal; use `marquee list` or `marquee show`")

// newRootCmd builds the command tree. Flags are bound to one Options value
// shared by every subcommand.
func newRootCmd(version string) *cobra.Command {
	opts := app.Options{Version: version}

	root := &cobra.Command{
		Use:   "marquee",
		Short: "Browse movies from a TMDB-compatible catalog in the terminal",
		Long: `marquee lists currently notable movies from a TMDB-compatible catalog
and shows the details of the one you pick.

Without a subcommand it starts the interactive browser. The list and show
subcommands print to stdout instead.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !logging.IsTerminal(os.Stdout) {
				return errNoTerminal
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default "+prefs.DefaultPath()+")")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the discover listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Stdout = cmd.OutOrStdout()
			opts.Stderr = cmd.ErrOrStderr()
			return app.List(cmd.Context(), opts)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "show ID [ID...]",
		Short: "Print the details of one or more movies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseMovieIDs(args)
			if err != nil {
				return err
			}
			opts.Stdout = cmd.OutOrStdout()
			opts.Stderr = cmd.ErrOrStderr()
			return app.Show(cmd.Context(), opts, ids)
		},
	})

	var logLines int
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Print recent entries from the log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Stdout = cmd.OutOrStdout()
			opts.Stderr = cmd.ErrOrStderr()
			return app.Logs(cmd.Context(), opts, logLines)
		},
	}
	logsCmd.Flags().IntVarP(&logLines, "lines", "n", 50, "number of entries to print (0 for all)")
	root.AddCommand(logsCmd)

	return root
}

// parseMovieIDs converts positional arguments to positive movie ids.
func parseMovieIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid movie id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
