package workflows

import (
	"context"

	"github.com/enchanted-engineering/zpass/internal/vault"
)

// VaultSummary describes one vault without touching its secret.
type VaultSummary struct {
	Name        string
	IsDefault   bool
	Preferences int
	Path        string
}

// ListVaultsResult contains the vaults found in the storage root.
type ListVaultsResult struct {
	// Root is the storage root that was read.
	Root   string
	Vaults []VaultSummary
}

// ListVaults summarizes every vault in the storage root.
func ListVaults(ctx context.Context) (*ListVaultsResult, error) {
	result := &ListVaultsResult{}
	err := withVaults(ctx, func(vs *vault.Vaults) error {
		result.Root = vs.Root()
		for _, v := range vs.All() {
			result.Vaults = append(result.Vaults, VaultSummary{
				Name:        v.Name(),
				IsDefault:   v.IsDefault(),
				Preferences: v.Preferences().Len(),
				Path:        vault.Path(vs.Root(), v.Name()),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
