package cmd

import (
	"context"

	"github.com/enchanted-engineering/zpass/internal/ui"
	"github.com/enchanted-engineering/zpass/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	passwordAddVault    string
	passwordAddDomain   string
	passwordAddUsername string
	passwordAddLength   int
)

func init() {
	passwordAddCmd.Flags().StringVarP(&passwordAddDomain, "domain", "d", "", "domain the password is for")
	passwordAddCmd.Flags().StringVarP(&passwordAddUsername, "username", "u", "", "username on the domain")
	passwordAddCmd.Flags().IntVarP(&passwordAddLength, "length", "l", 0, "password length")
	addVaultFlag(passwordAddCmd, &passwordAddVault)
	_ = passwordAddCmd.MarkFlagRequired("domain")
	_ = passwordAddCmd.MarkFlagRequired("length")
}

var passwordAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Remember the settings of a new password",
	Long: `Stores a domain, username and length in a vault. No key is needed.
The first password stored for a domain becomes its default.

Examples:
  zpass password add -d github.com -u alice -l 24
  zpass password add -d github.com -u bot -l 32 --vault work`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting password add command")

		spinner, cleanup := startSpinner("Storing password settings...", verbose)
		defer cleanup()

		result, err := workflows.AddPassword(context.Background(), workflows.AddPasswordOptions{
			Vault:    passwordAddVault,
			Domain:   passwordAddDomain,
			Username: passwordAddUsername,
			Length:   passwordAddLength,
		})
		if err != nil {
			return finishWithError(spinner, err)
		}
		Logger.Infof("Stored %s in vault %s", result.Domain, result.Vault)

		finalMessage := ui.Succeeded("Stored " + describeAccount(result.Domain, result.Username) +
			" in vault " + ui.Highlight.Sprint(result.Vault))
		if result.IsDefault {
			finalMessage += "\n" + ui.Hint("Used by default for "+ui.Highlight.Sprint(result.Domain))
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}

func describeAccount(domain, username string) string {
	if username == "" {
		return ui.Highlight.Sprint(domain)
	}
	return ui.Highlight.Sprint(username + "@" + domain)
}
