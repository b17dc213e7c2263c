//go:build !testcoverage

package main

import (
	"errors"
	"os"
)

func main() {
	if err := run(os.Args, DefaultConfig()); err != nil {
		if errors.Is(err, errInvalidSignature) {
			os.Exit(1)
		}
		fatal("%v", err)
	}
}
