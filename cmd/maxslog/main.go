package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/maxslog/internal/logging"
)

type rootOptions struct {
	color     string
	logLevel  string
	logFormat string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "maxslog",
		Short:        "Read, convert and write MAXS kernel notification logs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch strings.ToLower(opts.color) {
			case "on":
				color.NoColor = false
			case "off":
				color.NoColor = true
			case "auto":
			default:
				return fmt.Errorf("--color must be auto, on or off, got %q", opts.color)
			}
			if opts.logLevel == "" && opts.logFormat == "" {
				logging.Initialize()
				return nil
			}
			format := logging.ParseFormat(opts.logFormat, logging.FormatConsole)
			zap.ReplaceGlobals(logging.New(cmd.ErrOrStderr(), opts.logLevel, format))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "internal log level (DEBUG|INFO|WARN|ERROR); defaults to $LOGGING_LEVEL")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "internal log format (CONSOLE|JSON|PRETTY); defaults to $LOGGING_FORMAT")

	cmd.AddCommand(newInspectCmd(), newExportCmd(), newWatchCmd(), newEmitCmd())
	return cmd
}
