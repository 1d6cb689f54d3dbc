// Package vault owns the vault data model and its persistence.
//
// # Model
//
// A Vault binds one secrets.Secret to a Preferences collection. Vaults is
// the full set of vaults under the storage root, keyed by name.
//
// Two invariants are kept at single mutation points:
//   - per domain at most one Preference is the default (Preferences.Add,
//     Preferences.SetDefault); the first one added for a domain becomes it
//   - at most one Vault is the default (Vaults.Add, Vaults.SetDefault);
//     the first vault ever added becomes it
//
// # Persistence
//
// Each vault is stored as TOML in <root>/<name>.toml. The directory listing
// is the index. Load reads every vault file and fails as a whole if any of
// them is unreadable. Close writes every vault back; With wraps a unit of
// work so that Close runs on every exit path, including errors and panics.
//
// There is no locking. Two processes working on the same storage root race
// and the last one to close wins. When such a race leaves several vault
// files marked default, Load keeps the first in file name order.
package vault
