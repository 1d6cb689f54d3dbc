package workflows

import (
	"context"

	"github.com/enchanted-engineering/zpass/internal/audit"
	"github.com/enchanted-engineering/zpass/internal/vault"
)

// SetDefaultVaultOptions configures the default vault workflow.
type SetDefaultVaultOptions struct {
	Name string
}

// SetDefaultVaultResult contains the outcome of a default vault operation.
type SetDefaultVaultResult struct {
	Name string

	// Previous is the vault that was the default before, if any.
	Previous string
}

// SetDefaultVault makes the named vault the default for password commands.
//
// Returns ErrVaultNotFound if no vault has that name.
func SetDefaultVault(ctx context.Context, opts SetDefaultVaultOptions) (*SetDefaultVaultResult, error) {
	result := &SetDefaultVaultResult{Name: opts.Name}
	err := withVaults(ctx, func(vs *vault.Vaults) error {
		if previous, ok := vs.Default(); ok {
			result.Previous = previous.Name()
		}
		return vs.SetDefault(opts.Name)
	})
	if err != nil {
		return nil, err
	}

	entry := audit.LogWithUser(audit.OpSetDefaultVault)
	entry.Vault = opts.Name
	audit.Log(entry)

	return result, nil
}
