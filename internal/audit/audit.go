package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/enchanted-engineering/zpass/internal/configs"
	"github.com/enchanted-engineering/zpass/internal/utils"

	"github.com/google/uuid"
)

// Operation names recorded in the audit log.
const (
	OpAddVault           = "vault.add"
	OpSetDefaultVault    = "vault.default"
	OpAddPassword        = "password.add"
	OpGetPassword        = "password.get"
	OpSetDefaultPassword = "password.default"
)

// Entry represents a single audit log entry. It never carries keys,
// secret material or passwords.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // OS user running zpass.
	Operation string `json:"op"`

	Vault    string `json:"vault,omitempty"`
	Domain   string `json:"domain,omitempty"`
	Username string `json:"username,omitempty"`
	Length   int    `json:"length,omitempty"`
}

// Log appends an entry to the audit log in the storage root.
// Failures are ignored: an operation never fails because of its audit entry.
// Nothing is written if the storage root does not exist yet.
func Log(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	root := configs.ZpassSettings.StorageRoot
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return
	}

	f, err := os.OpenFile(LogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogWithUser returns an entry for op with the current OS user filled in.
func LogWithUser(op string) Entry {
	entry := Entry{Operation: op}
	if username, err := utils.GetUsername(); err == nil {
		entry.User = username
	}
	return entry
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	return filepath.Join(configs.ZpassSettings.StorageRoot, configs.AuditLogName)
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
