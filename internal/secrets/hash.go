package secrets

import "golang.org/x/crypto/sha3"

// DigestSize is the length in bytes of every Hash output.
const DigestSize = 32

// Hash reduces data to a SHA3-256 digest.
func Hash(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

// HashString is Hash over the UTF-8 bytes of s.
func HashString(s string) []byte {
	return Hash([]byte(s))
}
