package workflows

import (
	"context"
	"fmt"

	"github.com/enchanted-engineering/zpass/internal/audit"
	"github.com/enchanted-engineering/zpass/internal/configs"
	kerrors "github.com/enchanted-engineering/zpass/internal/errors"
	"github.com/enchanted-engineering/zpass/internal/secrets"
	"github.com/enchanted-engineering/zpass/internal/vault"
)

// AddVaultOptions configures the add vault workflow.
type AddVaultOptions struct {
	// Name is the vault name. It also seeds the secret's IV.
	Name string

	// Key encrypts the vault secret. It is never stored.
	Key string
}

// AddVaultResult contains the outcome of an add vault operation.
type AddVaultResult struct {
	Name string

	// Path is the vault file written for the new vault.
	Path string

	// IsDefault is true when this is the first vault and became the default.
	IsDefault bool
}

// AddVault creates a vault with a fresh random secret encrypted under opts.Key.
//
// Returns ErrInvalidVaultName if the name cannot be used as a file name.
// Returns ErrKeyRequired if the key is empty.
// Returns ErrVaultAlreadyExists if a vault with the same name exists.
func AddVault(ctx context.Context, opts AddVaultOptions) (*AddVaultResult, error) {
	if err := vault.ValidateName(opts.Name); err != nil {
		return nil, err
	}
	if opts.Key == "" {
		return nil, kerrors.ErrKeyRequired
	}

	secret, err := secrets.NewSecret(opts.Key, opts.Name, configs.ZpassSettings.SecretLength)
	if err != nil {
		return nil, fmt.Errorf("creating vault secret: %w", err)
	}

	result := &AddVaultResult{Name: opts.Name}
	err = withVaults(ctx, func(vs *vault.Vaults) error {
		if err := vs.Add(opts.Name, secret); err != nil {
			return err
		}
		v, _ := vs.Get(opts.Name)
		result.IsDefault = v.IsDefault()
		result.Path = vault.Path(vs.Root(), opts.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry := audit.LogWithUser(audit.OpAddVault)
	entry.Vault = opts.Name
	audit.Log(entry)

	return result, nil
}
