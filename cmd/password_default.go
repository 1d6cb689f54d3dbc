package cmd

import (
	"context"

	"github.com/enchanted-engineering/zpass/internal/ui"
	"github.com/enchanted-engineering/zpass/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	passwordDefaultVault    string
	passwordDefaultDomain   string
	passwordDefaultUsername string
)

func init() {
	passwordDefaultCmd.Flags().StringVarP(&passwordDefaultDomain, "domain", "d", "", "domain of the password")
	passwordDefaultCmd.Flags().StringVarP(&passwordDefaultUsername, "username", "u", "", "username to use by default")
	addVaultFlag(passwordDefaultCmd, &passwordDefaultVault)
	_ = passwordDefaultCmd.MarkFlagRequired("domain")
}

var passwordDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Select the username used when none is given",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting password default command")

		spinner, cleanup := startSpinner("Updating default password...", verbose)
		defer cleanup()

		result, err := workflows.SetDefaultPassword(context.Background(), workflows.SetDefaultPasswordOptions{
			Vault:    passwordDefaultVault,
			Domain:   passwordDefaultDomain,
			Username: passwordDefaultUsername,
		})
		if err != nil {
			return finishWithError(spinner, err)
		}

		spinner.FinalMSG = ui.Succeeded(describeAccount(result.Domain, result.Username) +
			" is now the default for " + ui.Highlight.Sprint(result.Domain) +
			" in vault " + ui.Highlight.Sprint(result.Vault))
		return nil
	},
}
