package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dwisetyadi/warungpos/pkg/auth"
)

// warungpos hash-password — produce a bcrypt hash for AUTH_PASSWORD_HASH.
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print the bcrypt hash of a password for AUTH_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}
