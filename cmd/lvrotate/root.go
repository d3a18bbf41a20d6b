// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the root command under ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose   bool
		logFormat string
	)
	root := &cobra.Command{
		Use:           "lvrotate",
		Short:         "Orthogonal factor rotation (varimax, equimax, quartimax)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(verbose, logFormat)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging (per-sweep diagnostics)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format: console|json")

	root.AddCommand(rotateCmd(), pcaCmd(), compareCmd())

	return root
}

// setupLogging configures the global logger; every command logs to stderr so
// stdout carries only the report.
func setupLogging(verbose bool, format string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	switch strings.ToLower(format) {
	case "console":
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).With().Timestamp().Logger()
	case "json":
		log.Logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	default:
		return fmt.Errorf("unsupported log format: %s", format)
	}

	return nil
}

// interrupted returns the cancellation cause once SIGINT/SIGTERM cancelled the
// command context; commands check it between stages.
func interrupted(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s interrupted: %w", cmd.Name(), err)
	}

	return nil
}
