package configs

const (
	// DefaultStorageRoot is where vault files live, relative to the working directory.
	DefaultStorageRoot = "./.zpass"

	// DefaultSecretLength is the number of random bytes generated for a new vault secret.
	DefaultSecretLength = 256

	// VaultFileExtension is appended to a vault name to form its file name.
	VaultFileExtension = ".toml"

	// AuditLogName is the audit log's file name inside the storage root.
	AuditLogName = "audit.jsonl"
)

type Settings struct {
	StorageRoot  string
	SecretLength int
}

// ZpassSettings holds the process-wide settings. They are fixed at startup.
var ZpassSettings *Settings

func init() {
	ZpassSettings = DefaultSettings()
}

// DefaultSettings returns the settings built from the package constants.
func DefaultSettings() *Settings {
	return &Settings{
		StorageRoot:  DefaultStorageRoot,
		SecretLength: DefaultSecretLength,
	}
}
