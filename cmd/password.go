package cmd

import (
	"github.com/spf13/cobra"
)

// PasswordCmd groups the commands that store and derive site passwords.
var PasswordCmd = &cobra.Command{
	Use:              "password",
	Short:            "Store password settings and derive passwords",
	Long:             `Remembers domain, username and length per vault and derives passwords from the vault secret.`,
	PersistentPreRun: initLogger,
}

func init() {
	addLoggingFlags(PasswordCmd)

	PasswordCmd.AddCommand(passwordAddCmd)
	PasswordCmd.AddCommand(passwordGetCmd)
	PasswordCmd.AddCommand(passwordDefaultCmd)
}

// addVaultFlag registers --vault, which selects a vault other than the default.
func addVaultFlag(c *cobra.Command, target *string) {
	c.Flags().StringVar(target, "vault", "", "vault to use instead of the default vault")
}
