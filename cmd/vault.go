package cmd

import (
	logger "github.com/enchanted-engineering/zpass/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	VaultCmd = &cobra.Command{
		Use:              "vault",
		Short:            "Manage vaults",
		Long:             `Creates vaults, lists them and selects the default vault used by password commands.`,
		PersistentPreRun: initLogger,
	}
)

func init() {
	addLoggingFlags(VaultCmd)

	VaultCmd.AddCommand(vaultAddCmd)
	VaultCmd.AddCommand(vaultListCmd)
	VaultCmd.AddCommand(vaultDefaultCmd)
}

// addLoggingFlags registers the verbosity flags on a command group.
// -d is left free for --domain.
func addLoggingFlags(c *cobra.Command) {
	c.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	c.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func initLogger(cmd *cobra.Command, args []string) {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
	Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)
}
