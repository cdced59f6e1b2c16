package auth

import (
	"testing"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ, both were %q", h1)
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !VerifyPassword("pw123456", hash) {
		t.Fatalf("expected correct password to verify")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword("pw123456", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must never verify")
	}
}
