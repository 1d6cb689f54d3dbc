package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/enchanted-engineering/zpass/internal/utils"
	"github.com/enchanted-engineering/zpass/internal/vault"
)

// TestVaultCommands contains integration tests for the `zpass vault` commands.
func TestVaultCommands(t *testing.T) {
	t.Run("AddFirstVault", testAddFirstVault)
	t.Run("AddDuplicateVault", testAddDuplicateVault)
	t.Run("AddInvalidVaultName", testAddInvalidVaultName)
	t.Run("AddRequiresName", testAddRequiresName)
	t.Run("AddKeyMismatch", testAddKeyMismatch)
	t.Run("AddKeyReadFailure", testAddKeyReadFailure)
	t.Run("ListEmpty", testListEmpty)
	t.Run("ListVaults", testListVaults)
	t.Run("SetDefaultVault", testSetDefaultVault)
	t.Run("SetDefaultMissingVault", testSetDefaultMissingVault)
}

func testAddFirstVault(t *testing.T) {
	env := setupTestEnvironment(t)

	output := mustRunCLI(t, "vault", "add", "-n", "work")

	if !strings.Contains(output, "✓ Vault 'work' created") {
		t.Errorf("Expected success message, got: %s", output)
	}
	if !strings.Contains(output, "This is your default vault") {
		t.Errorf("Expected first vault to be announced as default, got: %s", output)
	}
	if env.prompts != 1 {
		t.Errorf("Expected one key prompt, got %d", env.prompts)
	}

	path := filepath.Join(env.root, "work.toml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected vault file at %s: %v", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read vault file: %v", err)
	}
	if strings.Contains(string(data), env.key) {
		t.Error("Vault file must not contain the key")
	}
}

func testAddDuplicateVault(t *testing.T) {
	setupTestEnvironment(t)
	mustRunCLI(t, "vault", "add", "-n", "work")

	output := mustRunCLI(t, "vault", "add", "-n", "work")
	if !strings.Contains(output, "✗ A vault with that name already exists") {
		t.Errorf("Expected duplicate vault error, got: %s", output)
	}
}

func testAddInvalidVaultName(t *testing.T) {
	env := setupTestEnvironment(t)

	output := mustRunCLI(t, "vault", "add", "-n", "../escape")
	if !strings.Contains(output, "✗ Invalid vault name") {
		t.Errorf("Expected invalid name error, got: %s", output)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(env.root), "escape.toml")); !os.IsNotExist(err) {
		t.Error("Expected no file outside the storage root")
	}
}

func testAddRequiresName(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI(t, "vault", "add")
	if err == nil || !strings.Contains(err.Error(), `required flag(s) "name" not set`) {
		t.Errorf("Expected missing name error, got %v", err)
	}
}

func testAddKeyMismatch(t *testing.T) {
	env := setupTestEnvironment(t)
	readNewKey = func(prompt, confirmPrompt string) (string, error) {
		return "", utils.ErrKeyMismatch
	}

	output := mustRunCLI(t, "vault", "add", "-n", "work")
	if !strings.Contains(output, "✗ Keys do not match") {
		t.Errorf("Expected key mismatch error, got: %s", output)
	}
	if _, err := os.Stat(env.root); !os.IsNotExist(err) {
		t.Error("Expected nothing to be written after a key mismatch")
	}
}

func testListEmpty(t *testing.T) {
	setupTestEnvironment(t)

	output := mustRunCLI(t, "vault", "list")
	if !strings.Contains(output, "No vaults found") {
		t.Errorf("Expected empty list message, got: %s", output)
	}
}

func testListVaults(t *testing.T) {
	setupTestEnvironment(t)
	mustRunCLI(t, "vault", "add", "-n", "work")
	mustRunCLI(t, "vault", "add", "-n", "personal")
	mustRunCLI(t, "password", "add", "-d", "github.com", "-u", "alice", "-l", "20")

	output := mustRunCLI(t, "vault", "list")
	if !strings.Contains(output, "* 'work' (1 password)") {
		t.Errorf("Expected work marked as default with one password, got: %s", output)
	}
	if !strings.Contains(output, "  'personal' (0 passwords)") {
		t.Errorf("Expected personal without passwords, got: %s", output)
	}
}

func testSetDefaultVault(t *testing.T) {
	env := setupTestEnvironment(t)
	mustRunCLI(t, "vault", "add", "-n", "work")
	mustRunCLI(t, "vault", "add", "-n", "personal")

	output := mustRunCLI(t, "vault", "default", "-n", "personal")
	if !strings.Contains(output, "✓ 'personal' is now the default vault (was work)") {
		t.Errorf("Expected default vault message, got: %s", output)
	}

	vs, err := vault.Load(env.root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def, ok := vs.Default()
	if !ok || def.Name() != "personal" {
		t.Errorf("Expected personal to be the default vault on disk")
	}
}

func testSetDefaultMissingVault(t *testing.T) {
	setupTestEnvironment(t)
	mustRunCLI(t, "vault", "add", "-n", "work")

	output := mustRunCLI(t, "vault", "default", "-n", "missing")
	if !strings.Contains(output, "✗ Vault not found") {
		t.Errorf("Expected vault not found error, got: %s", output)
	}
}

func testAddKeyReadFailure(t *testing.T) {
	env := setupTestEnvironment(t)
	readNewKey = func(prompt, confirmPrompt string) (string, error) {
		return "", errors.New("cannot read key: stdin is not a terminal")
	}

	output, err := runCLI(t, "vault", "add", "-n", "work")
	if err == nil {
		t.Fatal("Expected a key read failure to fail the command")
	}
	if !strings.Contains(output, "stdin is not a terminal") {
		t.Errorf("Expected the read error in the output, got: %s", output)
	}
	if _, err := os.Stat(env.root); !os.IsNotExist(err) {
		t.Error("Expected nothing to be written after a key read failure")
	}
}
