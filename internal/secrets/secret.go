package secrets

import (
	"bytes"
	"crypto/rand"
	"fmt"

	kerrors "github.com/enchanted-engineering/zpass/internal/errors"

	"github.com/awnumar/memguard"
)

const (
	// firstPrintable is '!', the first non-space printable ASCII character.
	firstPrintable = 33

	// printableRange is the number of characters digest bytes are mapped onto.
	printableRange = 92
)

// PasswordParams are the per-preference inputs of a derivation.
type PasswordParams struct {
	Domain   string
	Username string
	Length   int
	Version  int
}

// PasswordGenerator derives passwords deterministically from a key.
type PasswordGenerator interface {
	DerivePassword(key string, params PasswordParams) (string, error)
}

// Secret is random byte material encrypted under a user key. The IV string
// seeds the cipher IV and is the vault name the secret was created for.
type Secret struct {
	ciphertext []byte
	iv         string
}

var _ PasswordGenerator = (*Secret)(nil)

// NewSecret generates length random bytes and encrypts them under key and ivSeed.
func NewSecret(key, ivSeed string, length int) (*Secret, error) {
	if length <= 0 {
		return nil, fmt.Errorf("secret length %d: %w", length, kerrors.ErrInvalidLength)
	}

	c, err := NewCipher(key, ivSeed)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, length)
	defer memguard.WipeBytes(raw)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate random secret: %w", err)
	}

	return &Secret{
		ciphertext: c.Encrypt(raw),
		iv:         ivSeed,
	}, nil
}

// RestoreSecret rebuilds a Secret from its persisted form.
func RestoreSecret(ciphertext []byte, iv string) *Secret {
	return &Secret{ciphertext: bytes.Clone(ciphertext), iv: iv}
}

// Ciphertext returns a copy of the encrypted secret.
func (s *Secret) Ciphertext() []byte {
	return bytes.Clone(s.ciphertext)
}

// IV returns the seed the cipher IV is expanded from.
func (s *Secret) IV() string {
	return s.iv
}

// DerivePassword decrypts the secret, hashes it and maps the digest onto the
// printable range. The result is params.Length characters long.
//
// Only the decrypted secret feeds the hash: domain, username and version do
// not change the output, so every preference of a vault derives the same
// password for a given length.
func (s *Secret) DerivePassword(key string, params PasswordParams) (string, error) {
	if params.Length <= 0 {
		return "", fmt.Errorf("password length %d: %w", params.Length, kerrors.ErrInvalidLength)
	}

	c, err := NewCipher(key, s.iv)
	if err != nil {
		return "", err
	}

	plaintext, err := c.Decrypt(s.ciphertext)
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(plaintext)

	stream := digestStream(plaintext, params.Length)
	defer memguard.WipeBytes(stream)

	return toPrintable(stream), nil
}

// digestStream returns n bytes: Hash(data), then Hash of the previous block,
// repeated until n bytes are available.
func digestStream(data []byte, n int) []byte {
	out := make([]byte, 0, n+DigestSize)
	block := Hash(data)
	for len(out) < n {
		out = append(out, block...)
		next := Hash(block)
		memguard.WipeBytes(block)
		block = next
	}
	memguard.WipeBytes(block)
	memguard.WipeBytes(out[n:])
	return out[:n]
}

func toPrintable(data []byte) string {
	chars := make([]byte, len(data))
	for i, b := range data {
		chars[i] = firstPrintable + b%printableRange
	}
	return string(chars)
}
