package main

import (
	"github.com/spf13/cobra"

	"github.com/vaultsandbox/rsapss"
	"github.com/vaultsandbox/rsapss/internal/crypto"
)

// InspectOutput describes a key document without revealing private material.
type InspectOutput struct {
	Bits           int    `json:"bits"`
	Hash           string `json:"hash"`
	HashSize       int    `json:"hashSize"`
	EncodedLen     int    `json:"encodedLen"`
	SignatureSize  int    `json:"signatureSize"`
	PublicExponent string `json:"publicExponent"`
	Private        bool   `json:"private"`
}

func (a *app) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Describe a key document",
		Args:  cobra.NoArgs,
		RunE:  a.runInspect,
	}
	cmd.Flags().String("key", "", "key JSON file")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, _ []string) error {
	keyPath, _ := cmd.Flags().GetString("key")
	exported, err := readKeyFile(keyPath)
	if err != nil {
		return err
	}

	var pub *rsapss.PublicKey
	var hash rsapss.Hash
	if exported.IsPrivate() {
		priv, h, err := rsapss.ImportPrivateKey(exported)
		if err != nil {
			return err
		}
		pub, hash = &priv.PublicKey, h
	} else {
		if pub, hash, err = rsapss.ImportPublicKey(exported); err != nil {
			return err
		}
	}

	return a.writeJSON(InspectOutput{
		Bits:           pub.Bits(),
		Hash:           hash.Name(),
		HashSize:       hash.Size(),
		EncodedLen:     crypto.EncodedLen(pub.Bits() - 1),
		SignatureSize:  pub.Size(),
		PublicExponent: pub.E.String(),
		Private:        exported.IsPrivate(),
	})
}
