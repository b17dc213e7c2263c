package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultsandbox/rsapss"
)

const (
	defaultBits     = 2048
	defaultHashName = "SHA-256"

	exponentFixed  = "fixed"
	exponentRandom = "random"
)

func (a *app) keygenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a private key and print it as JSON",
		Args:  cobra.NoArgs,
		RunE:  a.runKeygen,
	}
	cmd.Flags().Int("bits", defaultBits, "modulus size in bits (env "+envBits+")")
	cmd.Flags().String("hash", defaultHashName, "hash the key is used with (env "+envHash+")")
	enumVar(cmd.Flags(), "exponent", []string{exponentFixed, exponentRandom}, "public exponent mode (env "+envExponent+")")
	return cmd
}

// keygenSettings resolves flag, environment and default values in that order.
func (a *app) keygenSettings(cmd *cobra.Command) (bits int, hash rsapss.Hash, mode rsapss.ExponentMode, err error) {
	flags := cmd.Flags()

	bits, err = a.env.intOr(envBits, defaultBits)
	if err != nil {
		return 0, nil, 0, err
	}
	if flags.Changed("bits") {
		if bits, err = flags.GetInt("bits"); err != nil {
			return 0, nil, 0, err
		}
	}

	hashName := a.env.stringOr(envHash, defaultHashName)
	if flags.Changed("hash") {
		if hashName, err = flags.GetString("hash"); err != nil {
			return 0, nil, 0, err
		}
	}
	if hash, err = rsapss.LookupHash(hashName); err != nil {
		return 0, nil, 0, err
	}

	modeName := a.env.stringOr(envExponent, exponentFixed)
	if flags.Changed("exponent") {
		if modeName, err = enumGet(flags, "exponent"); err != nil {
			return 0, nil, 0, err
		}
	}
	switch modeName {
	case exponentFixed:
		mode = rsapss.ExponentFixed
	case exponentRandom:
		mode = rsapss.ExponentRandom
	default:
		return 0, nil, 0, fmt.Errorf("%s: unknown exponent mode %q", envExponent, modeName)
	}
	return bits, hash, mode, nil
}

func (a *app) runKeygen(cmd *cobra.Command, _ []string) error {
	bits, hash, mode, err := a.keygenSettings(cmd)
	if err != nil {
		return err
	}
	if need := rsapss.MinKeyBitsFor(hash); bits < need {
		return fmt.Errorf("%w: %s needs at least %d bits", rsapss.ErrEncodingTooShort, hash.Name(), need)
	}

	a.logger.Info("generating key", "bits", bits, "hash", hash.Name(), "exponent", mode.String())
	key, err := rsapss.GenerateKey(bits, rsapss.WithExponentMode(mode), rsapss.WithLogger(a.logger))
	if err != nil {
		return err
	}
	return a.writeJSON(key.Export(hash))
}
