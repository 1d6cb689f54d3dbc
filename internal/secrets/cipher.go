package secrets

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	kerrors "github.com/enchanted-engineering/zpass/internal/errors"

	"github.com/awnumar/memguard"
)

const (
	// keyLength is the AES-256 key length in bytes.
	keyLength = 32

	// ivLength is the CBC initialization vector length in bytes.
	ivLength = aes.BlockSize
)

// Cipher is AES-256-CBC with PKCS#7 padding under a fixed key and IV.
type Cipher struct {
	block cipher.Block
	iv    []byte
}

// NewCipher expands rawKey and rawIV through Hash. The IV digest is truncated
// to the AES block size.
func NewCipher(rawKey, rawIV string) (*Cipher, error) {
	key := HashString(rawKey)
	defer memguard.WipeBytes(key)

	iv := HashString(rawIV)
	return newCipher(key, iv[:ivLength])
}

func newCipher(key, iv []byte) (*Cipher, error) {
	if len(key) != keyLength || len(iv) != ivLength {
		return nil, fmt.Errorf("%w: got %d byte key and %d byte IV, expected %d and %d",
			kerrors.ErrInvalidKeyMaterial, len(key), len(iv), keyLength, ivLength)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrInvalidKeyMaterial, err)
	}

	return &Cipher{block: block, iv: bytes.Clone(iv)}, nil
}

// Encrypt pads and encrypts plaintext. The input is left untouched.
func (c *Cipher) Encrypt(plaintext []byte) []byte {
	padded := pad(plaintext, aes.BlockSize)
	defer memguard.WipeBytes(padded)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(ciphertext, padded)
	return ciphertext
}

// Decrypt decrypts ciphertext and strips its padding. Ciphertext that is not a
// whole number of blocks, or whose padding is malformed, yields ErrDecryptionFailed.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a positive multiple of %d",
			kerrors.ErrDecryptionFailed, len(ciphertext), aes.BlockSize)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(plaintext, ciphertext)

	unpadded, ok := unpad(plaintext, aes.BlockSize)
	if !ok {
		memguard.WipeBytes(plaintext)
		return nil, fmt.Errorf("%w: invalid padding", kerrors.ErrDecryptionFailed)
	}
	return unpadded, nil
}

// pad appends PKCS#7 padding. A full block is added when data is already aligned.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
