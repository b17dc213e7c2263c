package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultsandbox/rsapss"
	"github.com/vaultsandbox/rsapss/internal/crypto"
)

// errInvalidSignature makes the process exit with status 1 after the
// verdict has been printed.
var errInvalidSignature = errors.New("signature is not valid")

// VerifyOutput is the JSON result of the verify command.
type VerifyOutput struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func (a *app) verifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature; exits with status 1 when it is invalid",
		Args:  cobra.NoArgs,
		RunE:  a.runVerify,
	}
	cmd.Flags().String("key", "", "public or private key JSON file")
	cmd.Flags().String("signature", "", "base64url signature")
	cmd.Flags().String("message-file", "", "message file (default stdin)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}

func (a *app) runVerify(cmd *cobra.Command, _ []string) error {
	keyPath, _ := cmd.Flags().GetString("key")
	sigText, _ := cmd.Flags().GetString("signature")
	messagePath, _ := cmd.Flags().GetString("message-file")

	exported, err := readKeyFile(keyPath)
	if err != nil {
		return err
	}
	key, hash, err := rsapss.ImportPublicKey(exported)
	if err != nil {
		return err
	}
	sig, err := crypto.FromBase64URL(sigText)
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}
	message, err := a.readMessage(messagePath)
	if err != nil {
		return err
	}

	err = rsapss.Verify(key, message, sig, rsapss.WithHash(hash), rsapss.WithLogger(a.logger))
	var verr *rsapss.VerificationError
	switch {
	case err == nil:
		return a.writeJSON(VerifyOutput{Valid: true})
	case errors.As(err, &verr):
		if werr := a.writeJSON(VerifyOutput{Valid: false, Reason: verr.Stage}); werr != nil {
			return werr
		}
		return errInvalidSignature
	default:
		return err
	}
}
