package configs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

type tomlRecord struct {
	Name    string `toml:"name"`
	Length  int    `toml:"length"`
	Default bool   `toml:"default"`
}

func TestSaveAndLoadTOML(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "work.toml")

	original := tomlRecord{Name: "work", Length: 16, Default: true}
	if err := SaveTOML(testFile, original); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	var loaded tomlRecord
	if err := LoadTOML(testFile, &loaded); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if loaded != original {
		t.Errorf("Expected %+v, got %+v", original, loaded)
	}
}

func TestLoadTOMLNonExistent(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "nonexistent.toml")

	var data tomlRecord
	err := LoadTOML(testFile, &data)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got: %v", err)
	}
}

func TestSaveTOMLCreatesDirectory(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), ".zpass", "work.toml")

	if err := SaveTOML(testFile, tomlRecord{Name: "work"}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("File was not created: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("Expected permissions 0600, got %o", info.Mode().Perm())
	}
}

func TestSaveTOMLOverwrites(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "work.toml")

	if err := SaveTOML(testFile, tomlRecord{Name: "a-much-longer-name-than-the-next-one", Length: 40}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}
	if err := SaveTOML(testFile, tomlRecord{Name: "work", Length: 16}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	var loaded tomlRecord
	if err := LoadTOML(testFile, &loaded); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if loaded.Name != "work" || loaded.Length != 16 {
		t.Errorf("Expected truncated rewrite, got %+v", loaded)
	}
}

func TestLoadTOMLUnknownKeys(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "work.toml")
	content := "name = \"work\"\nsurprise = 1\n"
	if err := os.WriteFile(testFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	var loaded tomlRecord
	err := LoadTOML(testFile, &loaded)

	var unknown *UnknownKeysError
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected UnknownKeysError, got: %v", err)
	}
	if len(unknown.Keys) != 1 || unknown.Keys[0].String() != "surprise" {
		t.Errorf("Expected key 'surprise', got %v", unknown.Keys)
	}
}

func TestLoadTOMLMalformed(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "work.toml")
	if err := os.WriteFile(testFile, []byte("name = \n"), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	var loaded tomlRecord
	if err := LoadTOML(testFile, &loaded); err == nil {
		t.Fatal("Expected error for malformed file, got nil")
	}
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings.StorageRoot != DefaultStorageRoot {
		t.Errorf("Expected storage root %q, got %q", DefaultStorageRoot, settings.StorageRoot)
	}
	if settings.SecretLength != 256 {
		t.Errorf("Expected secret length 256, got %d", settings.SecretLength)
	}
	if ZpassSettings == nil {
		t.Fatal("Expected ZpassSettings to be initialized")
	}
}
