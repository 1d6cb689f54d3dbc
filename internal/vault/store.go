package vault

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/enchanted-engineering/zpass/internal/configs"
	kerrors "github.com/enchanted-engineering/zpass/internal/errors"
	"github.com/enchanted-engineering/zpass/internal/secrets"
)

// vaultFile is the on-disk form of a Vault.
type vaultFile struct {
	Name        string           `toml:"name"`
	Default     bool             `toml:"default"`
	Secret      secretFile       `toml:"secret"`
	Preferences []preferenceFile `toml:"preferences"`
}

type secretFile struct {
	// EncryptedSecret is the base64 encoded ciphertext.
	EncryptedSecret string `toml:"encrypted_secret"`
	IV              string `toml:"iv"`
}

type preferenceFile struct {
	Domain   string `toml:"domain"`
	Username string `toml:"username"`
	Length   int    `toml:"length"`
	Version  int    `toml:"version"`
	Default  bool   `toml:"default"`
}

// Path returns the file a vault called name is stored in under root.
func Path(root, name string) string {
	return filepath.Join(root, name+configs.VaultFileExtension)
}

// Load reads every vault file under root. A missing root is an empty
// collection. Any file that cannot be read or decoded fails the whole load.
func Load(root string) (*Vaults, error) {
	vs := &Vaults{root: root}

	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return vs, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %w", kerrors.ErrPersistenceFailed, root, err)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != configs.VaultFileExtension {
			continue
		}

		path := filepath.Join(root, entry.Name())
		v, err := loadFile(path)
		if err != nil {
			return nil, err
		}

		expected := strings.TrimSuffix(entry.Name(), configs.VaultFileExtension)
		if v.name != expected {
			return nil, fmt.Errorf("%w: %s holds vault %q", kerrors.ErrPersistenceFailed, path, v.name)
		}

		v.owner = vs
		vs.items = append(vs.items, v)
	}

	vs.keepFirstDefault()
	return vs, nil
}

// keepFirstDefault clears the default flag on every vault after the first
// one that has it. Two processes adding the first vault of an empty root
// each store it as default; ReadDir order makes the survivor deterministic
// and the next Close writes the repair.
func (vs *Vaults) keepFirstDefault() {
	seen := false
	for _, v := range vs.items {
		if v.isDefault && seen {
			v.isDefault = false
		}
		seen = seen || v.isDefault
	}
}

func loadFile(path string) (*Vault, error) {
	var file vaultFile
	if err := configs.LoadTOML(path, &file); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", kerrors.ErrPersistenceFailed, path, err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(file.Secret.EncryptedSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding secret in %s: %w", kerrors.ErrPersistenceFailed, path, err)
	}

	v := &Vault{
		name:      file.Name,
		secret:    secrets.RestoreSecret(ciphertext, file.Secret.IV),
		isDefault: file.Default,
	}
	for _, p := range file.Preferences {
		v.preferences.items = append(v.preferences.items, Preference{
			Domain:    p.Domain,
			Username:  p.Username,
			Length:    p.Length,
			Version:   p.Version,
			isDefault: p.Default,
		})
	}
	return v, nil
}

// store writes v to its file under root, creating root if needed.
func store(root string, v *Vault) error {
	file := vaultFile{
		Name:    v.name,
		Default: v.isDefault,
		Secret: secretFile{
			EncryptedSecret: base64.StdEncoding.EncodeToString(v.secret.Ciphertext()),
			IV:              v.secret.IV(),
		},
	}
	for _, p := range v.preferences.items {
		file.Preferences = append(file.Preferences, preferenceFile{
			Domain:   p.Domain,
			Username: p.Username,
			Length:   p.Length,
			Version:  p.Version,
			Default:  p.isDefault,
		})
	}

	path := Path(root, v.name)
	if err := configs.SaveTOML(path, file); err != nil {
		return fmt.Errorf("%w: writing %s: %w", kerrors.ErrPersistenceFailed, path, err)
	}
	return nil
}
