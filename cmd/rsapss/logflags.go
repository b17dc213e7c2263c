package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	logFormatFlag = "logformat"
	logLevelFlag  = "loglevel"
	logOutputFlag = "logoutput"

	logFormatText = "text"
	logFormatJSON = "json"

	logLevelWarn  = "warn"
	logLevelDebug = "debug"
	logLevelInfo  = "info"
	logLevelError = "error"

	logOutputStderr = "stderr"
	logOutputStdout = "stdout"
)

// registerLoggingFlags adds the persistent logging flags. Logs go to stderr
// by default so they never mix with JSON results on stdout.
func registerLoggingFlags(fs *pflag.FlagSet) {
	enumVar(fs, logFormatFlag, []string{logFormatText, logFormatJSON}, "log output format")
	enumVar(fs, logLevelFlag, []string{logLevelWarn, logLevelDebug, logLevelInfo, logLevelError}, "logging level")
	enumVar(fs, logOutputFlag, []string{logOutputStderr, logOutputStdout}, "log output destination")
}

// baseLogger builds the logger selected by the command's logging flags.
func baseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := logLevel(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to get log level: %w", err)
	}
	format, err := enumGet(cmd.Flags(), logFormatFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to get the log format from the command flag: %w", err)
	}
	output, err := enumGet(cmd.Flags(), logOutputFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to get the log output from the command flag: %w", err)
	}

	var w io.Writer
	switch output {
	case logOutputStdout:
		w = cmd.OutOrStdout()
	default:
		w = cmd.ErrOrStderr()
	}

	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case logFormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case logFormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
}

func logLevel(fs *pflag.FlagSet) (slog.Level, error) {
	name, err := enumGet(fs, logLevelFlag)
	if err != nil {
		return slog.LevelWarn, err
	}
	switch name {
	case logLevelDebug:
		return slog.LevelDebug, nil
	case logLevelInfo:
		return slog.LevelInfo, nil
	case logLevelWarn:
		return slog.LevelWarn, nil
	case logLevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level: %s", name)
	}
}
