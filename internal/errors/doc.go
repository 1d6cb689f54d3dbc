// Package errors provides typed error values for zpass.
//
// Sentinel errors let callers handle specific conditions with errors.Is()
// rather than string matching.
//
// # Error Categories
//
//   - Crypto errors: ErrDecryptionFailed, ErrInvalidKeyMaterial
//   - Preference errors: ErrPreferenceExists, ErrNoMatchingPreferenceFound,
//     ErrInvalidLength, ErrInvalidDomain
//   - Vault errors: ErrVaultAlreadyExists, ErrNoMatchingPreference, ErrVaultNotFound,
//     ErrNoDefaultVault, ErrInvalidVaultName, ErrVaultsClosed
//   - Storage errors: ErrPersistenceFailed
//   - Input errors: ErrInvalidDateFormat, ErrKeyRequired
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("loading vault %s: %w", name, errors.ErrPersistenceFailed)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrDecryptionFailed) {
//	    // Show "wrong key?" hint
//	}
package errors
