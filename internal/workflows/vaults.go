package workflows

import (
	"context"
	"fmt"

	"github.com/enchanted-engineering/zpass/internal/configs"
	kerrors "github.com/enchanted-engineering/zpass/internal/errors"
	"github.com/enchanted-engineering/zpass/internal/vault"
)

// withVaults runs fn against the vaults in the storage root. The collection
// is written back when fn returns, including when it fails.
func withVaults(ctx context.Context, fn func(*vault.Vaults) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return vault.With(configs.ZpassSettings.StorageRoot, fn)
}

// resolveVault returns the vault called name, or the default vault when name is empty.
func resolveVault(vs *vault.Vaults, name string) (*vault.Vault, error) {
	if name == "" {
		v, ok := vs.Default()
		if !ok {
			return nil, kerrors.ErrNoDefaultVault
		}
		return v, nil
	}

	v, ok := vs.Get(name)
	if !ok {
		return nil, fmt.Errorf("vault %s: %w", name, kerrors.ErrVaultNotFound)
	}
	return v, nil
}
