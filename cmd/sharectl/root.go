package main

import (
	"os"

	"kart-compare/internal/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "sharectl",
		Short:        "Comparison share link and catalogue tool",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		encodeCmd(),
		decodeCmd(opts),
		importCmd(opts),
		pingCmd(opts),
	)
	return root
}

// logger writes human readable logs to stderr so stdout stays machine readable.
func (o *rootOptions) logger() zerolog.Logger {
	return config.NewLogger(config.LoggerConfig{Level: o.logLevel, Format: "console"}).Output(
		zerolog.ConsoleWriter{Out: os.Stderr},
	)
}
