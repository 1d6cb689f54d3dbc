package cmd

import (
	"context"

	"github.com/enchanted-engineering/zpass/internal/ui"
	"github.com/enchanted-engineering/zpass/internal/workflows"

	"github.com/spf13/cobra"
)

var vaultAddName string

func init() {
	vaultAddCmd.Flags().StringVarP(&vaultAddName, "name", "n", "", "name of the new vault")
	_ = vaultAddCmd.MarkFlagRequired("name")
}

var vaultAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a vault protected by a key",
	Long: `Creates a vault with a fresh random secret encrypted under a key you choose.
The key is asked for twice and never stored. The first vault becomes the default.

Examples:
  zpass vault add -n work`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting vault add command")

		key, err := readNewKey("Vault key: ", "Confirm vault key: ")
		if err != nil {
			return reportError(err)
		}

		spinner, cleanup := startSpinner("Creating vault...", verbose)
		defer cleanup()

		Logger.Debugf("Adding vault %s", vaultAddName)
		result, err := workflows.AddVault(context.Background(), workflows.AddVaultOptions{
			Name: vaultAddName,
			Key:  key,
		})
		if err != nil {
			return finishWithError(spinner, err)
		}
		Logger.Infof("Vault %s written to %s", result.Name, result.Path)

		finalMessage := ui.Succeeded("Vault "+ui.Highlight.Sprint(result.Name)+" created") + "\n" +
			"    created: " + ui.Path.Sprint(result.Path)
		if result.IsDefault {
			finalMessage += "\n" + ui.Hint("This is your default vault")
		}
		finalMessage += "\n" + ui.Hint("Add a password with "+ui.Code.Sprint("zpass password add -d <domain> -l <length>"))

		spinner.FinalMSG = finalMessage
		return nil
	},
}
