package cmd

import (
	"context"

	"github.com/enchanted-engineering/zpass/internal/ui"
	"github.com/enchanted-engineering/zpass/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	passwordGetVault    string
	passwordGetDomain   string
	passwordGetUsername string
	passwordGetLength   int
	passwordGetVersion  int
)

func init() {
	passwordGetCmd.Flags().StringVarP(&passwordGetDomain, "domain", "d", "", "domain the password is for")
	passwordGetCmd.Flags().StringVarP(&passwordGetUsername, "username", "u", "", "username on the domain (default: the domain default)")
	passwordGetCmd.Flags().IntVarP(&passwordGetLength, "length", "l", 0, "override the stored length")
	passwordGetCmd.Flags().IntVar(&passwordGetVersion, "version", 0, "override the stored version")
	addVaultFlag(passwordGetCmd, &passwordGetVault)
	_ = passwordGetCmd.MarkFlagRequired("domain")
}

var passwordGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Derive a password and copy it to the clipboard",
	Long: `Asks for the vault key, derives the password for a domain and copies it
to the clipboard. The password is never printed.

Examples:
  zpass password get -d github.com
  zpass password get -d github.com -u bot --vault work`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting password get command")

		opts := workflows.GetPasswordOptions{
			Vault:    passwordGetVault,
			Domain:   passwordGetDomain,
			Username: passwordGetUsername,
			Length:   passwordGetLength,
		}

		Logger.Debugf("Resolving vault and preference for %s", passwordGetDomain)
		if _, err := workflows.GetPasswordPreCheck(context.Background(), opts); err != nil {
			return reportError(err)
		}

		key, err := readKey("Vault key: ")
		if err != nil {
			return reportError(err)
		}
		opts.Key = key

		spinner, cleanup := startSpinner("Deriving password...", verbose)
		defer cleanup()

		if cmd.Flags().Changed("version") {
			version := passwordGetVersion
			opts.Version = &version
		}

		result, err := workflows.GetPassword(context.Background(), opts)
		if err != nil {
			return finishWithError(spinner, err)
		}

		if err := copyToClipboard(result.Password); err != nil {
			return finishWithError(spinner, err)
		}
		Logger.Infof("Copied password for %s from vault %s", result.Domain, result.Vault)

		spinner.FinalMSG = ui.Succeeded("Password for " + describeAccount(result.Domain, result.Username) +
			" copied to the clipboard")
		return nil
	},
}
