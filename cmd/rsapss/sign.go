package main

import (
	"github.com/spf13/cobra"

	"github.com/vaultsandbox/rsapss"
	"github.com/vaultsandbox/rsapss/internal/crypto"
)

// SignOutput is the JSON result of the sign command.
type SignOutput struct {
	Hash      string `json:"hash"`
	Signature string `json:"signature"`
}

func (a *app) signCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a private key",
		Args:  cobra.NoArgs,
		RunE:  a.runSign,
	}
	cmd.Flags().String("key", "", "private key JSON file")
	cmd.Flags().String("message-file", "", "message file (default stdin)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func (a *app) runSign(cmd *cobra.Command, _ []string) error {
	keyPath, _ := cmd.Flags().GetString("key")
	messagePath, _ := cmd.Flags().GetString("message-file")

	exported, err := readKeyFile(keyPath)
	if err != nil {
		return err
	}
	key, hash, err := rsapss.ImportPrivateKey(exported)
	if err != nil {
		return err
	}
	message, err := a.readMessage(messagePath)
	if err != nil {
		return err
	}

	sig, err := rsapss.Sign(key, message, rsapss.WithHash(hash), rsapss.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.logger.Debug("message signed", "bytes", len(message), "hash", hash.Name())
	return a.writeJSON(SignOutput{Hash: hash.Name(), Signature: crypto.ToBase64URL(sig)})
}
