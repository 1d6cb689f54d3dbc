package workflows

import (
	"context"

	"github.com/enchanted-engineering/zpass/internal/audit"
	"github.com/enchanted-engineering/zpass/internal/vault"
)

// SetDefaultPasswordOptions configures the default password workflow.
type SetDefaultPasswordOptions struct {
	// Vault selects the vault. Empty means the default vault.
	Vault string

	Domain   string
	Username string
}

// SetDefaultPasswordResult contains the outcome of a default password operation.
type SetDefaultPasswordResult struct {
	Vault    string
	Domain   string
	Username string
}

// SetDefaultPassword makes the preference for domain and username the one
// used when a password is requested without a username.
//
// Returns ErrNoDefaultVault if no vault exists and none was named.
// Returns ErrVaultNotFound if the named vault does not exist.
// Returns ErrNoMatchingPreferenceFound if the preference does not exist.
func SetDefaultPassword(ctx context.Context, opts SetDefaultPasswordOptions) (*SetDefaultPasswordResult, error) {
	result := &SetDefaultPasswordResult{
		Domain:   opts.Domain,
		Username: opts.Username,
	}
	err := withVaults(ctx, func(vs *vault.Vaults) error {
		v, err := resolveVault(vs, opts.Vault)
		if err != nil {
			return err
		}
		result.Vault = v.Name()
		return v.SetDefaultPreference(opts.Domain, opts.Username)
	})
	if err != nil {
		return nil, err
	}

	entry := audit.LogWithUser(audit.OpSetDefaultPassword)
	entry.Vault = result.Vault
	entry.Domain = result.Domain
	entry.Username = result.Username
	audit.Log(entry)

	return result, nil
}
