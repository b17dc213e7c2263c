package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that supply keygen defaults.
const (
	envHash     = "RSAPSS_HASH"
	envBits     = "RSAPSS_BITS"
	envExponent = "RSAPSS_EXPONENT"
)

const defaultEnvFile = ".env"

// environment resolves settings from the process environment first and the
// .env file second. Flags set on the command line take precedence over both.
type environment struct {
	getenv func(string) string
	file   map[string]string
}

// loadEnvironment reads path with godotenv. A missing file is only an error
// when the user named it explicitly.
func loadEnvironment(getenv func(string) string, path string, explicit bool) (*environment, error) {
	file, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			file = map[string]string{}
		} else {
			return nil, fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return &environment{getenv: getenv, file: file}, nil
}

func (e *environment) lookup(key string) string {
	if v := e.getenv(key); v != "" {
		return v
	}
	return e.file[key]
}

func (e *environment) stringOr(key, fallback string) string {
	if v := e.lookup(key); v != "" {
		return v
	}
	return fallback
}

func (e *environment) intOr(key string, fallback int) (int, error) {
	v := e.lookup(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
