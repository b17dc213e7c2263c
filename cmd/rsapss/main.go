// Command rsapss generates RSA-PSS keys, signs and verifies messages.
//
// Keys are stored as JSON documents; results are written to stdout as JSON.
//
//	rsapss keygen --bits 2048 --hash sha256 > key.json
//	rsapss sign --key key.json --message-file msg.txt
//	rsapss verify --key key.json --signature <base64url> < msg.txt
//
// Defaults for keygen can come from RSAPSS_HASH, RSAPSS_BITS and
// RSAPSS_EXPONENT, set in the environment or in a .env file.
package main

import (
	"fmt"
	"io"
	"os"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// Config holds the process streams and environment so tests can replace them.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// DefaultConfig returns a Config bound to the real process.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

// run executes the command line in args, where args[0] is the program name.
func run(args []string, cfg Config) error {
	if cfg.Getenv == nil {
		cfg.Getenv = func(string) string { return "" }
	}
	cmd := newRootCommand(cfg)
	if len(args) > 0 {
		args = args[1:]
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
