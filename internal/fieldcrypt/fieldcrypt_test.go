package fieldcrypt

import (
	"errors"
	"strings"
	"testing"
)

func newCipher(t *testing.T) (*Cipher, string) {
	t.Helper()
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	c, err := New(key)
	if err != nil {
		t.Fatalf("Failed to build cipher: %v", err)
	}
	return c, key
}

func TestCipher_RoundTrip(t *testing.T) {
	c, _ := newCipher(t)

	token, err := c.Encrypt("1098765432")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if token == "1098765432" {
		t.Fatal("Expected ciphertext to differ from plaintext")
	}
	if !strings.HasPrefix(token, tokenPrefix) {
		t.Errorf("Expected token to start with %q, got %q", tokenPrefix, token)
	}

	plain, err := c.Decrypt(token)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if plain != "1098765432" {
		t.Errorf("Expected '1098765432', got '%s'", plain)
	}
}

func TestCipher_Passthrough(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("Expected no error for empty key, got %v", err)
	}
	if c.Enabled() {
		t.Error("Expected cipher with empty key to be disabled")
	}

	got, _ := c.Encrypt("3001234567")
	if got != "3001234567" {
		t.Errorf("Expected plaintext passthrough, got '%s'", got)
	}
}

func TestCipher_DecryptPlaintextRow(t *testing.T) {
	c, _ := newCipher(t)

	got, err := c.Decrypt("3001234567")
	if err != nil {
		t.Fatalf("Expected legacy plaintext to read back, got %v", err)
	}
	if got != "3001234567" {
		t.Errorf("Expected '3001234567', got '%s'", got)
	}
}

func TestCipher_DecryptPlaintextWithTokenPrefix(t *testing.T) {
	c, _ := newCipher(t)

	for _, plain := range []string{"gAbriela-1098", "gA", "gAAAAAAA"} {
		got, err := c.Decrypt(plain)
		if err != nil {
			t.Errorf("%q: expected plaintext to read back, got %v", plain, err)
			continue
		}
		if got != plain {
			t.Errorf("Expected '%s', got '%s'", plain, got)
		}
	}
}

func TestIsToken(t *testing.T) {
	c, _ := newCipher(t)
	token, err := c.Encrypt("1098765432")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if !isToken(token) {
		t.Errorf("Expected %q to be recognised as a token", token)
	}
	if isToken("gAbriela-1098") {
		t.Error("Expected plaintext with token prefix not to be a token")
	}
	if isToken(token[:len(token)-4]) {
		t.Error("Expected truncated token not to be a token")
	}
}

func TestCipher_EmptyValue(t *testing.T) {
	c, _ := newCipher(t)

	got, err := c.Encrypt("")
	if err != nil || got != "" {
		t.Errorf("Expected empty value to stay empty, got '%s' (%v)", got, err)
	}
}

func TestCipher_KeyRotation(t *testing.T) {
	old, oldKey := newCipher(t)
	token, err := old.Encrypt("secret")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	newKey, err := GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	rotated, err := New(newKey + ", " + oldKey)
	if err != nil {
		t.Fatalf("Failed to build rotated cipher: %v", err)
	}

	got, err := rotated.Decrypt(token)
	if err != nil {
		t.Fatalf("Expected rotated cipher to decrypt old token, got %v", err)
	}
	if got != "secret" {
		t.Errorf("Expected 'secret', got '%s'", got)
	}
}

func TestCipher_WrongKey(t *testing.T) {
	a, _ := newCipher(t)
	b, _ := newCipher(t)

	token, _ := a.Encrypt("secret")
	if _, err := b.Decrypt(token); err == nil {
		t.Error("Expected error decrypting with the wrong key")
	}
}

func TestNew_InvalidKey(t *testing.T) {
	_, err := New("not-a-key")
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Expected ErrInvalidKey, got %v", err)
	}
}
