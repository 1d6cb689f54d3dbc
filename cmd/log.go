package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/enchanted-engineering/zpass/internal/audit"
	"github.com/enchanted-engineering/zpass/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logVault     string
	logOperation string
	logSince     string
	logJSON      bool
)

func init() {
	addLoggingFlags(LogCmd)
	LogCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	LogCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	LogCmd.Flags().StringVar(&logVault, "vault", "", "filter by vault")
	LogCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation (comma-separated)")
	LogCmd.Flags().StringVar(&logSince, "since", "", "show entries on or after date (YYYY-MM-DD)")
	LogCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// LogCmd shows the audit log of the storage root.
var LogCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the operations recorded in the storage root. Entries never
contain keys or passwords.

Examples:
  zpass log                              # View full log
  zpass log -n 10                        # Last 10 entries
  zpass log --vault work --reverse       # Most recent first for one vault
  zpass log --operation password.get     # Filter by operation
  zpass log --since 2026-01-01 --json    # JSON output`,
	Args:             cobra.NoArgs,
	PersistentPreRun: initLogger,
	RunE:             runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	spinner, cleanup := startSpinner("Loading audit log...", verbose)
	defer cleanup()

	result, err := workflows.Log(context.Background(), workflows.LogOptions{
		Limit:      logLimit,
		Reverse:    logReverse,
		Vault:      logVault,
		Operations: logOperation,
		Since:      logSince,
	})
	if err != nil {
		return finishWithError(spinner, err)
	}
	Logger.Debugf("Read %d entries, %d after filtering", result.Total, len(result.Entries))

	if len(result.Entries) == 0 {
		if result.Total == 0 {
			spinner.FinalMSG = "No audit log entries found."
		} else {
			spinner.FinalMSG = "No audit log entries found matching the filters."
		}
		return nil
	}

	if logJSON {
		data, err := json.MarshalIndent(result.Entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries to JSON: %w", err)
		}
		spinner.FinalMSG = string(data)
		return nil
	}

	spinner.FinalMSG = formatEntries(result.Entries)
	return nil
}

func formatEntries(entries []audit.Entry) string {
	out := ""
	for i, e := range entries {
		if i > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("%-19s  %-12s  %-16s  %s",
			workflows.FormatDateTime(e.Timestamp), e.User, e.Operation, workflows.FormatDetails(e))
	}
	return out
}
