package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/awnumar/memguard"
	"golang.org/x/term"
)

// ErrKeyMismatch is returned when the confirmation of a new key differs.
var ErrKeyMismatch = errors.New("keys do not match")

// ReadPassphrase prompts the user for a passphrase without echoing input.
// Returns an error if stdin is not a terminal.
func ReadPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read key: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}

	return passphrase, nil
}

// ReadKey prompts for a vault key.
func ReadKey(prompt string) (string, error) {
	key, err := ReadPassphrase(prompt)
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(key)
	return string(key), nil
}

// ReadNewKey prompts for a key twice and fails if the entries differ.
func ReadNewKey(prompt, confirmPrompt string) (string, error) {
	key, err := ReadKey(prompt)
	if err != nil {
		return "", err
	}
	confirm, err := ReadKey(confirmPrompt)
	if err != nil {
		return "", err
	}
	if key != confirm {
		return "", ErrKeyMismatch
	}
	return key, nil
}
