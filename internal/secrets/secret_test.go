package secrets

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	kerrors "github.com/enchanted-engineering/zpass/internal/errors"
)

func assertPrintable(t *testing.T, password string) {
	t.Helper()
	for i := 0; i < len(password); i++ {
		c := password[i]
		if c < '!' || c > '~' {
			t.Fatalf("Character %q at %d is outside '!'..'~'", c, i)
		}
		if c > '!'+91 {
			t.Fatalf("Character %q at %d is outside the 92 character range", c, i)
		}
	}
}

func newTestSecret(t *testing.T) *Secret {
	t.Helper()
	secret, err := NewSecret("K1", "work", 256)
	if err != nil {
		t.Fatalf("NewSecret failed: %v", err)
	}
	return secret
}

func TestNewSecret(t *testing.T) {
	secret := newTestSecret(t)

	if secret.IV() != "work" {
		t.Errorf("Expected IV 'work', got %q", secret.IV())
	}
	// 256 bytes are block aligned, so PKCS#7 adds a full block.
	if len(secret.Ciphertext()) != 272 {
		t.Errorf("Expected 272 byte ciphertext, got %d", len(secret.Ciphertext()))
	}

	other := newTestSecret(t)
	if bytes.Equal(secret.Ciphertext(), other.Ciphertext()) {
		t.Error("Expected two secrets to hold different random bytes")
	}
}

func TestNewSecretInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		if _, err := NewSecret("K1", "work", length); !errors.Is(err, kerrors.ErrInvalidLength) {
			t.Errorf("Expected ErrInvalidLength for length %d, got: %v", length, err)
		}
	}
}

func TestCiphertextReturnsCopy(t *testing.T) {
	secret := newTestSecret(t)
	ciphertext := secret.Ciphertext()
	ciphertext[0] ^= 0xff

	if bytes.Equal(ciphertext, secret.Ciphertext()) {
		t.Error("Mutating the returned ciphertext changed the secret")
	}
}

func TestDerivePasswordDeterministic(t *testing.T) {
	secret := newTestSecret(t)
	params := PasswordParams{Domain: "example.com", Username: "alice", Length: 16}

	first, err := secret.DerivePassword("K1", params)
	if err != nil {
		t.Fatalf("DerivePassword failed: %v", err)
	}
	second, err := secret.DerivePassword("K1", params)
	if err != nil {
		t.Fatalf("DerivePassword failed: %v", err)
	}

	if first != second {
		t.Errorf("Expected identical passwords, got %q and %q", first, second)
	}
	if len(first) != 16 {
		t.Errorf("Expected 16 characters, got %d", len(first))
	}
	assertPrintable(t, first)
}

func TestDerivePasswordAfterRestore(t *testing.T) {
	secret := newTestSecret(t)
	params := PasswordParams{Domain: "example.com", Username: "alice", Length: 20}

	want, err := secret.DerivePassword("K1", params)
	if err != nil {
		t.Fatalf("DerivePassword failed: %v", err)
	}

	restored := RestoreSecret(secret.Ciphertext(), secret.IV())
	got, err := restored.DerivePassword("K1", params)
	if err != nil {
		t.Fatalf("DerivePassword on restored secret failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %q after restore, got %q", want, got)
	}
}

func TestDerivePasswordWrongKey(t *testing.T) {
	secret := newTestSecret(t)
	params := PasswordParams{Domain: "example.com", Username: "alice", Length: 16}

	want, err := secret.DerivePassword("K1", params)
	if err != nil {
		t.Fatalf("DerivePassword failed: %v", err)
	}

	for _, key := range []string{"K2", "k1", "", "K1K1"} {
		got, err := secret.DerivePassword(key, params)
		if err != nil {
			if !errors.Is(err, kerrors.ErrDecryptionFailed) {
				t.Errorf("Expected ErrDecryptionFailed for key %q, got: %v", key, err)
			}
			continue
		}
		if got == want {
			t.Errorf("Key %q derived the correct password", key)
		}
	}
}

// Domain, username and version are not folded into the preimage yet, so they
// must not change the result. This pins the current behavior.
func TestDerivePasswordIgnoresDomainUsernameAndVersion(t *testing.T) {
	secret := newTestSecret(t)

	a, err := secret.DerivePassword("K1", PasswordParams{Domain: "example.com", Username: "alice", Length: 24})
	if err != nil {
		t.Fatalf("DerivePassword failed: %v", err)
	}
	b, err := secret.DerivePassword("K1", PasswordParams{Domain: "other.org", Username: "bob", Length: 24, Version: 3})
	if err != nil {
		t.Fatalf("DerivePassword failed: %v", err)
	}

	if a != b {
		t.Errorf("Expected identical passwords across preferences, got %q and %q", a, b)
	}
}

func TestDerivePasswordLengths(t *testing.T) {
	secret := newTestSecret(t)

	derive := func(length int) string {
		t.Helper()
		password, err := secret.DerivePassword("K1", PasswordParams{Length: length})
		if err != nil {
			t.Fatalf("DerivePassword(%d) failed: %v", length, err)
		}
		if len(password) != length {
			t.Fatalf("Expected %d characters, got %d", length, len(password))
		}
		assertPrintable(t, password)
		return password
	}

	short := derive(1)
	digest := derive(DigestSize)
	long := derive(100)

	if !strings.HasPrefix(digest, short) {
		t.Errorf("Expected %q to start with %q", digest, short)
	}
	if !strings.HasPrefix(long, digest) {
		t.Errorf("Expected %q to start with %q", long, digest)
	}
}

func TestDerivePasswordInvalidLength(t *testing.T) {
	secret := newTestSecret(t)

	if _, err := secret.DerivePassword("K1", PasswordParams{Length: 0}); !errors.Is(err, kerrors.ErrInvalidLength) {
		t.Errorf("Expected ErrInvalidLength, got: %v", err)
	}
}

func TestDerivePasswordCorruptedCiphertext(t *testing.T) {
	secret := RestoreSecret([]byte("not a block multiple"), "work")

	if _, err := secret.DerivePassword("K1", PasswordParams{Length: 16}); !errors.Is(err, kerrors.ErrDecryptionFailed) {
		t.Errorf("Expected ErrDecryptionFailed, got: %v", err)
	}
}

func TestToPrintable(t *testing.T) {
	got := toPrintable([]byte{0, 1, 91, 92, 183, 184, 255})
	want := "!\"|!|!h"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
