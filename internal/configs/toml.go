package configs

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SaveTOML saves a struct to a TOML file readable only by the owner.
func SaveTOML(filePath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(file).Encode(data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// LoadTOML loads a TOML file into a struct. Keys in the file the struct does
// not know about are reported as an error.
func LoadTOML(filePath string, data interface{}) error {
	meta, err := toml.DecodeFile(filePath, data)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return &UnknownKeysError{Path: filePath, Keys: undecoded}
	}
	return nil
}

// UnknownKeysError reports keys present in a TOML file but absent from the target struct.
type UnknownKeysError struct {
	Path string
	Keys []toml.Key
}

func (e *UnknownKeysError) Error() string {
	msg := "unknown keys in " + e.Path + ":"
	for _, k := range e.Keys {
		msg += " " + k.String()
	}
	return msg
}
