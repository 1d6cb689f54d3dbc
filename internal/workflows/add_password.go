package workflows

import (
	"context"

	"github.com/enchanted-engineering/zpass/internal/audit"
	"github.com/enchanted-engineering/zpass/internal/vault"
)

// AddPasswordOptions configures the add password workflow.
type AddPasswordOptions struct {
	// Vault selects the vault. Empty means the default vault.
	Vault string

	Domain   string
	Username string
	Length   int
}

// AddPasswordResult contains the outcome of an add password operation.
type AddPasswordResult struct {
	Vault    string
	Domain   string
	Username string
	Length   int

	// IsDefault is true when this is the first preference for the domain.
	IsDefault bool
}

// AddPassword remembers the parameters of a new password in a vault.
// No key is needed: preferences are stored in the clear.
//
// Returns ErrNoDefaultVault if no vault exists and none was named.
// Returns ErrVaultNotFound if the named vault does not exist.
// Returns ErrInvalidDomain or ErrInvalidLength for invalid parameters.
// Returns ErrPreferenceExists if the domain and username are already stored.
func AddPassword(ctx context.Context, opts AddPasswordOptions) (*AddPasswordResult, error) {
	pref, err := vault.NewPreference(opts.Domain, opts.Username, opts.Length)
	if err != nil {
		return nil, err
	}

	result := &AddPasswordResult{
		Domain:   opts.Domain,
		Username: opts.Username,
		Length:   opts.Length,
	}
	err = withVaults(ctx, func(vs *vault.Vaults) error {
		v, err := resolveVault(vs, opts.Vault)
		if err != nil {
			return err
		}
		result.Vault = v.Name()

		if err := v.AddPreference(pref); err != nil {
			return err
		}
		stored, _ := v.Preferences().Get(opts.Domain, opts.Username)
		result.IsDefault = stored.IsDefault()
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry := audit.LogWithUser(audit.OpAddPassword)
	entry.Vault = result.Vault
	entry.Domain = result.Domain
	entry.Username = result.Username
	entry.Length = result.Length
	audit.Log(entry)

	return result, nil
}
