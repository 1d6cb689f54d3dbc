package workflows

import (
	"context"
	"fmt"

	"github.com/enchanted-engineering/zpass/internal/audit"
	kerrors "github.com/enchanted-engineering/zpass/internal/errors"
	"github.com/enchanted-engineering/zpass/internal/vault"
)

// GetPasswordOptions configures the get password workflow.
type GetPasswordOptions struct {
	// Vault selects the vault. Empty means the default vault.
	Vault string

	Domain string

	// Key unlocks the vault secret.
	Key string

	// Username selects a preference. Empty means the domain default.
	Username string

	// Length overrides the stored length when positive.
	Length int

	// Version overrides the stored version when set.
	Version *int
}

// GetPasswordResult contains a derived password.
type GetPasswordResult struct {
	Vault    string
	Domain   string
	Username string
	Password string
}

// GetPassword derives the password for a domain from a vault's secret.
//
// Returns ErrNoDefaultVault if no vault exists and none was named.
// Returns ErrVaultNotFound if the named vault does not exist.
// Returns ErrNoMatchingPreference if the vault has no matching preference.
// Returns ErrDecryptionFailed if the key is detectably wrong.
func GetPassword(ctx context.Context, opts GetPasswordOptions) (*GetPasswordResult, error) {
	if opts.Key == "" {
		return nil, kerrors.ErrKeyRequired
	}
	if opts.Length < 0 {
		return nil, kerrors.ErrInvalidLength
	}

	result := &GetPasswordResult{Domain: opts.Domain}
	err := withVaults(ctx, func(vs *vault.Vaults) error {
		v, err := resolveVault(vs, opts.Vault)
		if err != nil {
			return err
		}
		result.Vault = v.Name()

		password, err := v.GetPassword(opts.Domain, opts.Key, vault.PasswordOptions{
			Username: opts.Username,
			Length:   opts.Length,
			Version:  opts.Version,
		})
		if err != nil {
			return err
		}
		result.Password = password

		result.Username = opts.Username
		if result.Username == "" {
			pref, _ := v.Preferences().Default(opts.Domain)
			result.Username = pref.Username
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry := audit.LogWithUser(audit.OpGetPassword)
	entry.Vault = result.Vault
	entry.Domain = result.Domain
	entry.Username = result.Username
	audit.Log(entry)

	return result, nil
}

// GetPasswordPreCheckResult names what GetPassword would use, found without a key.
type GetPasswordPreCheckResult struct {
	Vault    string
	Username string
}

// GetPasswordPreCheck resolves the vault and preference a GetPassword call
// with the same options would use. It needs no key, so the CLI can fail
// before prompting for one. opts.Key is ignored.
//
// Returns ErrNoDefaultVault if no vault exists and none was named.
// Returns ErrVaultNotFound if the named vault does not exist.
// Returns ErrNoMatchingPreference if the vault has no matching preference.
func GetPasswordPreCheck(ctx context.Context, opts GetPasswordOptions) (*GetPasswordPreCheckResult, error) {
	if opts.Length < 0 {
		return nil, kerrors.ErrInvalidLength
	}

	result := &GetPasswordPreCheckResult{}
	err := withVaults(ctx, func(vs *vault.Vaults) error {
		v, err := resolveVault(vs, opts.Vault)
		if err != nil {
			return err
		}
		result.Vault = v.Name()

		var (
			pref  vault.Preference
			found bool
		)
		if opts.Username != "" {
			pref, found = v.Preferences().Get(opts.Domain, opts.Username)
		} else {
			pref, found = v.Preferences().Default(opts.Domain)
		}
		if !found {
			return fmt.Errorf("domain %s: %w", opts.Domain, kerrors.ErrNoMatchingPreference)
		}
		result.Username = pref.Username
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
