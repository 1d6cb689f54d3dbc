// Package secrets implements the vault secret and the password derivation
// built on it.
//
// # Building Blocks
//
//   - Hash: SHA3-256, used to expand keys and IVs and as the password preimage
//   - Cipher: AES-256-CBC with PKCS#7 padding; key = Hash(key), IV = Hash(iv)[:16]
//
// # Secret
//
// A Secret is created once per vault from a user key and the vault name:
// 256 random bytes are encrypted and only the ciphertext and the IV string
// are kept. DerivePassword decrypts the ciphertext, hashes the plaintext
// and maps each digest byte b to the character 33 + b%92. The plaintext
// and intermediate digests are wiped before returning.
//
// A wrong key is detected by the padding check in Cipher.Decrypt. The check
// is probabilistic: roughly one wrong key in 256 decrypts to valid padding
// and yields a different, wrong password instead of ErrDecryptionFailed.
package secrets
