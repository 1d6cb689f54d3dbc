package cmd

import (
	"context"
	"fmt"

	"github.com/enchanted-engineering/zpass/internal/ui"
	"github.com/enchanted-engineering/zpass/internal/utils"
	"github.com/enchanted-engineering/zpass/internal/workflows"

	"github.com/spf13/cobra"
)

var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting vault list command")

		spinner, cleanup := startSpinner("Loading vaults...", verbose)
		defer cleanup()

		result, err := workflows.ListVaults(context.Background())
		if err != nil {
			return finishWithError(spinner, err)
		}
		Logger.Debugf("Found %d vaults in %s", len(result.Vaults), result.Root)

		if len(result.Vaults) == 0 {
			spinner.FinalMSG = "No vaults found in " + ui.Path.Sprint(result.Root) + "\n" +
				ui.Hint("Run "+ui.Code.Sprint("zpass vault add -n <name>")+" to create one")
			return nil
		}

		finalMessage := fmt.Sprintf("Vaults in %s:", ui.Path.Sprint(result.Root))
		for _, v := range result.Vaults {
			marker := " "
			if v.IsDefault {
				marker = ui.Success.Sprint("*")
			}
			finalMessage += fmt.Sprintf("\n  %s %s %s", marker, ui.Highlight.Sprint(v.Name),
				ui.Muted.Sprintf("%d %s", v.Preferences, utils.Plural(v.Preferences, "password")))
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}
