package main

import (
	"fmt"
	"os"

	"github.com/enchanted-engineering/zpass/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zpass",
	Short: "zpass - a deterministic password manager.",
	Long: `zpass derives site passwords from a random secret kept in a vault.
The vault secret is encrypted under a key only you know; passwords are
never stored, only the domain, username and length they were made with.

Usage:
  zpass <command> [flags]

Available Commands:
  vault      Create vaults and pick the default one
  password   Store password settings and derive passwords
  log        View the audit log

Run 'zpass help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewColorFigure("zpass", "", "cyan", true).Print()
		fmt.Println()
		fmt.Println("Run 'zpass --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.VaultCmd)
	rootCmd.AddCommand(cmd.PasswordCmd)
	rootCmd.AddCommand(cmd.LogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
