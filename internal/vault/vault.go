package vault

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	kerrors "github.com/enchanted-engineering/zpass/internal/errors"
	"github.com/enchanted-engineering/zpass/internal/secrets"
)

// Vault binds one encrypted secret to the preferences used against it.
type Vault struct {
	name        string
	secret      *secrets.Secret
	preferences Preferences
	isDefault   bool

	owner *Vaults
}

// Name returns the vault name, which is also its file name.
func (v *Vault) Name() string {
	return v.name
}

// IsDefault reports whether password commands use this vault when none is named.
func (v *Vault) IsDefault() bool {
	return v.isDefault
}

// Secret returns the vault's encrypted secret.
func (v *Vault) Secret() *secrets.Secret {
	return v.secret
}

// Preferences returns the vault's preferences for reading. Use AddPreference
// and SetDefaultPreference to change them.
func (v *Vault) Preferences() *Preferences {
	return &v.preferences
}

// AddPreference adds p to the vault's preferences.
func (v *Vault) AddPreference(p Preference) error {
	if v.owner != nil && v.owner.closed {
		return kerrors.ErrVaultsClosed
	}
	if err := v.preferences.Add(p); err != nil {
		return fmt.Errorf("vault %s: %w", v.name, err)
	}
	return nil
}

// SetDefaultPreference makes username the default for domain within the vault.
func (v *Vault) SetDefaultPreference(domain, username string) error {
	if v.owner != nil && v.owner.closed {
		return kerrors.ErrVaultsClosed
	}
	if err := v.preferences.SetDefault(domain, username); err != nil {
		return fmt.Errorf("vault %s: %w", v.name, err)
	}
	return nil
}

// Equal reports whether v and other hold the same name, secret, preferences
// and default flag.
func (v *Vault) Equal(other *Vault) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.name != other.name || v.isDefault != other.isDefault {
		return false
	}
	if v.secret.IV() != other.secret.IV() || !bytes.Equal(v.secret.Ciphertext(), other.secret.Ciphertext()) {
		return false
	}
	if v.preferences.Len() != other.preferences.Len() {
		return false
	}
	for i, p := range v.preferences.items {
		if p != other.preferences.items[i] {
			return false
		}
	}
	return true
}

// PasswordOptions override the resolved preference. Zero values mean "use the
// preference": an empty Username selects the domain default, a zero Length the
// stored length and a nil Version the stored version.
type PasswordOptions struct {
	Username string
	Length   int
	Version  *int
}

// GetPassword resolves the preference for domain and derives its password with key.
func (v *Vault) GetPassword(domain, key string, opts PasswordOptions) (string, error) {
	return derivePassword(v.secret, &v.preferences, domain, key, opts)
}

func derivePassword(gen secrets.PasswordGenerator, prefs *Preferences, domain, key string, opts PasswordOptions) (string, error) {
	var (
		pref  Preference
		found bool
	)
	if opts.Username != "" {
		pref, found = prefs.Get(domain, opts.Username)
	} else {
		pref, found = prefs.Default(domain)
	}
	if !found {
		return "", fmt.Errorf("domain %s: %w", domain, kerrors.ErrNoMatchingPreference)
	}

	params := secrets.PasswordParams{
		Domain:   domain,
		Username: pref.Username,
		Length:   pref.Length,
		Version:  pref.Version,
	}
	if opts.Length != 0 {
		params.Length = opts.Length
	}
	if opts.Version != nil {
		params.Version = *opts.Version
	}

	return gen.DerivePassword(key, params)
}

// Vaults is every vault under a storage root, loaded in full. Close writes
// each vault back to its own file and must run on every exit path; With
// arranges that.
type Vaults struct {
	root   string
	items  []*Vault
	closed bool
}

// Add creates a vault named name around secret. The first vault of the
// collection becomes the default.
func (vs *Vaults) Add(name string, secret *secrets.Secret) error {
	if vs.closed {
		return kerrors.ErrVaultsClosed
	}
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, ok := vs.Get(name); ok {
		return fmt.Errorf("vault %s: %w", name, kerrors.ErrVaultAlreadyExists)
	}

	vs.items = append(vs.items, &Vault{
		name:      name,
		secret:    secret,
		isDefault: len(vs.items) == 0,
		owner:     vs,
	})
	return nil
}

// Get returns the vault called name.
func (vs *Vaults) Get(name string) (*Vault, bool) {
	for _, v := range vs.items {
		if v.name == name {
			return v, true
		}
	}
	return nil, false
}

// Default returns the default vault.
func (vs *Vaults) Default() (*Vault, bool) {
	for _, v := range vs.items {
		if v.isDefault {
			return v, true
		}
	}
	return nil, false
}

// SetDefault makes the vault called name the only default vault.
func (vs *Vaults) SetDefault(name string) error {
	if vs.closed {
		return kerrors.ErrVaultsClosed
	}
	if _, ok := vs.Get(name); !ok {
		return fmt.Errorf("vault %s: %w", name, kerrors.ErrVaultNotFound)
	}

	for _, v := range vs.items {
		v.isDefault = v.name == name
	}
	return nil
}

// All returns the vaults in load order followed by the ones added since.
func (vs *Vaults) All() []*Vault {
	out := make([]*Vault, len(vs.items))
	copy(out, vs.items)
	return out
}

// Len returns the number of vaults.
func (vs *Vaults) Len() int {
	return len(vs.items)
}

// Root returns the storage root the collection was loaded from.
func (vs *Vaults) Root() string {
	return vs.root
}

// Close writes every vault to the storage root. It is safe to call more than
// once; only the first call writes.
func (vs *Vaults) Close() error {
	if vs.closed {
		return nil
	}
	vs.closed = true

	var errs []error
	for _, v := range vs.items {
		if err := store(vs.root, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// With loads the vaults under root, calls fn and closes the collection
// whether or not fn succeeds. Errors from fn and from Close are joined.
func With(root string, fn func(*Vaults) error) (err error) {
	vs, err := Load(root)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, vs.Close())
	}()

	return fn(vs)
}

// ValidateName reports whether name can be used as a vault file name.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%q: %w", name, kerrors.ErrInvalidVaultName)
	case strings.ContainsAny(name, `/\`) || name != filepath.Base(name):
		return fmt.Errorf("%q contains a path separator: %w", name, kerrors.ErrInvalidVaultName)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%q contains a NUL byte: %w", name, kerrors.ErrInvalidVaultName)
	}
	return nil
}
