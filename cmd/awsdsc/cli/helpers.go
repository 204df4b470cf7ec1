package cli

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/awsdsc/awsdsc/internal/config"
	"github.com/awsdsc/awsdsc/internal/history"
	"github.com/awsdsc/awsdsc/internal/render"
)

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// colorizeEnabled decides whether rendered output gets ANSI colors. The
// AWSDSC_COLORIZE environment variable overrides everything; otherwise the
// flag (or its configured default) applies, and only when stdout is a
// terminal. Table output carries its own styling and is never colorized.
func colorizeEnabled(cmd *cobra.Command, opts *rootOptions, cfg config.GlobalConfig) bool {
	if v := os.Getenv("AWSDSC_COLORIZE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	enabled := opts.colorize
	if !cmd.Flags().Changed("colorize") {
		enabled = cfg.Colorize
	}
	return enabled && term.IsTerminal(int(os.Stdout.Fd()))
}

// recordHistory appends one invocation to the local history database. The
// log is a convenience; failures are reported at debug level only.
func recordHistory(cfg config.GlobalConfig, logger zerolog.Logger, typeName, queryText string, format render.Format, itemCount int, status string) {
	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		logger.Debug().Err(err).Msg("history unavailable")
		return
	}
	defer store.Close()

	if _, err := store.Record(typeName, queryText, string(format), itemCount, status); err != nil {
		logger.Debug().Err(err).Msg("recording history failed")
	}
}
