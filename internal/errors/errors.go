package errors

import "errors"

// Crypto errors indicate failures while protecting or unlocking a vault secret.
var (
	// ErrDecryptionFailed indicates the ciphertext could not be decrypted.
	// A wrong key is reported this way whenever the padding check catches it.
	ErrDecryptionFailed = errors.New("failed to decrypt secret")

	// ErrInvalidKeyMaterial indicates the expanded key or IV has the wrong length for the cipher.
	ErrInvalidKeyMaterial = errors.New("invalid key or IV length")
)

// Preference errors indicate precondition violations on a vault's preferences.
var (
	// ErrPreferenceExists indicates a preference for the domain and username already exists.
	ErrPreferenceExists = errors.New("preference already exists")

	// ErrNoMatchingPreferenceFound indicates no preference matches the domain and username.
	ErrNoMatchingPreferenceFound = errors.New("failed to find a matching preference")

	// ErrInvalidLength indicates a password length that is not positive.
	ErrInvalidLength = errors.New("password length must be positive")

	// ErrInvalidDomain indicates an empty domain.
	ErrInvalidDomain = errors.New("domain must not be empty")
)

// Vault errors indicate issues with the vault collection.
var (
	// ErrVaultAlreadyExists indicates a vault with the same name already exists.
	ErrVaultAlreadyExists = errors.New("vault already exists")

	// ErrNoMatchingPreference indicates the vault has no matching or default preference for a domain.
	ErrNoMatchingPreference = errors.New("no matching preference found")

	// ErrVaultNotFound indicates no vault has the requested name.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrNoDefaultVault indicates no vault has been created yet.
	ErrNoDefaultVault = errors.New("no default vault")

	// ErrInvalidVaultName indicates a vault name that cannot be used as a file name.
	ErrInvalidVaultName = errors.New("invalid vault name")

	// ErrVaultsClosed indicates the collection was already written back and released.
	ErrVaultsClosed = errors.New("vaults already closed")
)

// Storage errors indicate issues reading or writing the storage root.
var (
	// ErrPersistenceFailed indicates a vault file could not be read, written or (de)serialized.
	ErrPersistenceFailed = errors.New("vault persistence failed")
)

// Input errors indicate invalid command input.
var (
	// ErrInvalidDateFormat indicates a date filter that is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrKeyRequired indicates an empty vault key.
	ErrKeyRequired = errors.New("a vault key is required")
)
