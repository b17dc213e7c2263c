package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// enumFlag is a string flag restricted to a fixed set of options. The first
// option is the default.
type enumFlag struct {
	value   string
	options []string
}

var _ pflag.Value = (*enumFlag)(nil)

func newEnumFlag(options ...string) *enumFlag {
	if len(options) == 0 {
		panic("enum flag needs at least one option")
	}
	return &enumFlag{value: options[0], options: options}
}

func (f *enumFlag) String() string { return f.value }

func (f *enumFlag) Set(v string) error {
	if !slices.Contains(f.options, v) {
		return fmt.Errorf("must be one of %s", strings.Join(f.options, ", "))
	}
	f.value = v
	return nil
}

func (f *enumFlag) Type() string { return "enum" }

// enumVar registers an enum flag on fs.
func enumVar(fs *pflag.FlagSet, name string, options []string, usage string) {
	fs.Var(newEnumFlag(options...), name, fmt.Sprintf("%s (one of %s)", usage, strings.Join(options, ", ")))
}

// enumGet returns the current value of the enum flag name.
func enumGet(fs *pflag.FlagSet, name string) (string, error) {
	f := fs.Lookup(name)
	if f == nil {
		return "", fmt.Errorf("flag %q not found", name)
	}
	v, ok := f.Value.(*enumFlag)
	if !ok {
		return "", fmt.Errorf("flag %q is not an enum flag", name)
	}
	return v.value, nil
}
