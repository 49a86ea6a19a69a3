package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Generate admin.hash_key and admin.block_key values",
		RunE: func(cmd *cobra.Command, args []string) error {
			hash := make([]byte, 32)
			block := make([]byte, 16)
			if _, err := rand.Read(hash); err != nil {
				return err
			}
			if _, err := rand.Read(block); err != nil {
				return err
			}
			// hex от 16 байт - ровно 32 символа, подходит для AES-256
			fmt.Fprintf(cmd.OutOrStdout(), "hash_key = %q\n", hex.EncodeToString(hash))
			fmt.Fprintf(cmd.OutOrStdout(), "block_key = %q\n", hex.EncodeToString(block))
			return nil
		},
	}
}
