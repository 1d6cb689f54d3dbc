package vault

import (
	"fmt"

	kerrors "github.com/enchanted-engineering/zpass/internal/errors"
)

// Preference holds the password parameters remembered for a domain and username.
type Preference struct {
	Domain   string
	Username string
	Length   int
	// Version is bumped when the password is rotated.
	Version int

	isDefault bool
}

// NewPreference returns a version 0 preference. Whether it becomes the
// domain default is decided when it is added to a Preferences collection.
func NewPreference(domain, username string, length int) (Preference, error) {
	if domain == "" {
		return Preference{}, kerrors.ErrInvalidDomain
	}
	if length <= 0 {
		return Preference{}, fmt.Errorf("length %d: %w", length, kerrors.ErrInvalidLength)
	}
	return Preference{Domain: domain, Username: username, Length: length}, nil
}

// IsDefault reports whether this is the preference used when no username is given.
func (p Preference) IsDefault() bool {
	return p.isDefault
}

func (p Preference) matches(domain, username string) bool {
	return p.Domain == domain && p.Username == username
}

// Preferences is the set of preferences of one vault. At most one preference
// per domain is the default; Add and SetDefault are the only places that
// change default flags.
type Preferences struct {
	items []Preference
}

// Add inserts p. The first preference added for a domain becomes its default,
// later ones never do.
func (ps *Preferences) Add(p Preference) error {
	if ps.index(p.Domain, p.Username) >= 0 {
		return fmt.Errorf("%s for %s: %w", describeUser(p.Username), p.Domain, kerrors.ErrPreferenceExists)
	}

	_, hasDefault := ps.Default(p.Domain)
	p.isDefault = !hasDefault
	ps.items = append(ps.items, p)
	return nil
}

// SetDefault makes the preference for domain and username the domain
// default and clears the flag on every other preference of that domain.
func (ps *Preferences) SetDefault(domain, username string) error {
	if ps.index(domain, username) < 0 {
		return fmt.Errorf("%s for %s: %w", describeUser(username), domain, kerrors.ErrNoMatchingPreferenceFound)
	}

	for i := range ps.items {
		if ps.items[i].Domain == domain {
			ps.items[i].isDefault = ps.items[i].Username == username
		}
	}
	return nil
}

// Get returns the preference for an explicit domain and username.
func (ps *Preferences) Get(domain, username string) (Preference, bool) {
	i := ps.index(domain, username)
	if i < 0 {
		return Preference{}, false
	}
	return ps.items[i], true
}

// Default returns the default preference of domain.
func (ps *Preferences) Default(domain string) (Preference, bool) {
	for _, p := range ps.items {
		if p.Domain == domain && p.isDefault {
			return p, true
		}
	}
	return Preference{}, false
}

// Len returns the number of preferences.
func (ps *Preferences) Len() int {
	return len(ps.items)
}

// All returns a copy of the preferences in insertion order.
func (ps *Preferences) All() []Preference {
	out := make([]Preference, len(ps.items))
	copy(out, ps.items)
	return out
}

func (ps *Preferences) index(domain, username string) int {
	for i, p := range ps.items {
		if p.matches(domain, username) {
			return i
		}
	}
	return -1
}

func describeUser(username string) string {
	if username == "" {
		return "empty username"
	}
	return "username " + username
}
