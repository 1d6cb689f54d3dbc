// Package workflows provides the user-facing zpass operations.
//
// Each workflow loads every vault under the storage root, performs one
// mutation or read, records an audit entry and writes the vaults back
// before returning. The write-back also happens when the operation fails.
// The cmd package is a thin layer that parses flags, prompts for keys,
// calls a workflow and formats its result.
//
// # Available Workflows
//
//   - AddVault: creates a vault with a fresh secret encrypted under a key
//   - ListVaults: summarizes the vaults in the storage root
//   - SetDefaultVault: selects the vault password commands use by default
//   - AddPassword: remembers a domain, username and length in a vault
//   - SetDefaultPassword: selects the preference used without a username
//   - GetPassword: derives the password for a domain
//   - GetPasswordPreCheck: resolves vault and preference before a key is asked for
//   - Log: reads and filters the audit log
//
// # Error Handling
//
// Workflows return sentinel errors from the internal/errors package,
// wrapped with context. Use errors.Is to check for them:
//
//	result, err := workflows.GetPassword(ctx, opts)
//	if errors.Is(err, kerrors.ErrNoMatchingPreference) {
//	    // Suggest zpass password add
//	}
//
// # Concurrency
//
// Vault files are not locked. Two zpass processes working on the same
// storage root race, and the last one to write a vault file wins.
package workflows
