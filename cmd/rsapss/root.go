package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultsandbox/rsapss"
)

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	cfg    Config
	env    *environment
	logger *slog.Logger
}

func newRootCommand(cfg Config) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:           "rsapss",
		Short:         "Generate RSA-PSS keys, sign and verify messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envFile, err := cmd.Flags().GetString("env-file")
			if err != nil {
				return err
			}
			if a.env, err = loadEnvironment(cfg.Getenv, envFile, cmd.Flags().Changed("env-file")); err != nil {
				return err
			}
			a.logger, err = baseLogger(cmd)
			return err
		},
	}
	root.SetIn(cfg.Stdin)
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)

	root.PersistentFlags().String("env-file", defaultEnvFile, "file with RSAPSS_* defaults")
	registerLoggingFlags(root.PersistentFlags())

	root.AddCommand(
		a.keygenCommand(),
		a.signCommand(),
		a.verifyCommand(),
		a.inspectCommand(),
		a.versionCommand(),
	)
	return root
}

// writeJSON writes v to stdout as indented JSON.
func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.cfg.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readKeyFile parses an exported key document.
func readKeyFile(path string) (*rsapss.ExportedKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}
	var exported rsapss.ExportedKey
	if err := json.Unmarshal(data, &exported); err != nil {
		return nil, fmt.Errorf("parse key: %w", err)
	}
	return &exported, nil
}

// readMessage reads the message from path, or from stdin when path is empty.
func (a *app) readMessage(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read message: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(a.cfg.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
