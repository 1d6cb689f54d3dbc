package cmd

import (
	"context"

	"github.com/enchanted-engineering/zpass/internal/ui"
	"github.com/enchanted-engineering/zpass/internal/workflows"

	"github.com/spf13/cobra"
)

var vaultDefaultName string

func init() {
	vaultDefaultCmd.Flags().StringVarP(&vaultDefaultName, "name", "n", "", "name of the vault to make the default")
	_ = vaultDefaultCmd.MarkFlagRequired("name")
}

var vaultDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Select the vault password commands use by default",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting vault default command")

		spinner, cleanup := startSpinner("Updating default vault...", verbose)
		defer cleanup()

		result, err := workflows.SetDefaultVault(context.Background(), workflows.SetDefaultVaultOptions{
			Name: vaultDefaultName,
		})
		if err != nil {
			return finishWithError(spinner, err)
		}

		finalMessage := ui.Succeeded(ui.Highlight.Sprint(result.Name) + " is now the default vault")
		if result.Previous != "" && result.Previous != result.Name {
			finalMessage += " " + ui.Muted.Sprint("was "+result.Previous)
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}
