// Package fieldcrypt encrypts personal fields (identificacion, telefono)
// before they are written to the database.
//
// Values are stored as Fernet tokens. A Cipher built from an empty key is a
// passthrough so that existing plaintext databases keep working.
package fieldcrypt

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/fernet/fernet-go"
)

// tokenPrefix marks a stored value as a Fernet token. Fernet tokens always
// start with the version byte 0x80, which encodes to "gA" in base64url.
const tokenPrefix = "gA"

// Fernet token layout: version(1) timestamp(8) iv(16) ciphertext(n*16) hmac(32).
const (
	tokenOverhead = 1 + 8 + 16 + 32
	blockSize     = 16
)

// ErrInvalidKey is returned when the configured key cannot be decoded.
var ErrInvalidKey = errors.New("invalid field encryption key")

// Cipher encrypts and decrypts single string fields.
type Cipher struct {
	keys []*fernet.Key
}

// New builds a Cipher from a comma-separated list of base64 Fernet keys.
// The first key encrypts; every key is tried on decrypt, which allows key
// rotation. An empty string returns a passthrough Cipher.
func New(encodedKeys string) (*Cipher, error) {
	if strings.TrimSpace(encodedKeys) == "" {
		return &Cipher{}, nil
	}

	parts := strings.Split(encodedKeys, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	keys, err := fernet.DecodeKeys(parts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return &Cipher{keys: keys}, nil
}

// GenerateKey returns a new random key in the encoding New expects.
func GenerateKey() (string, error) {
	var k fernet.Key
	if err := k.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return k.Encode(), nil
}

// Enabled reports whether the Cipher actually encrypts.
func (c *Cipher) Enabled() bool {
	return c != nil && len(c.keys) > 0
}

// Encrypt returns the token for plaintext. Empty values stay empty.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if !c.Enabled() || plaintext == "" {
		return plaintext, nil
	}
	tok, err := fernet.EncryptAndSign([]byte(plaintext), c.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to encrypt field: %w", err)
	}
	return string(tok), nil
}

// Decrypt reverses Encrypt. Values that are not Fernet tokens are returned
// unchanged, so rows written before encryption was enabled still read back.
// A well-formed token that no configured key can open is an error.
func (c *Cipher) Decrypt(stored string) (string, error) {
	if !c.Enabled() || !isToken(stored) {
		return stored, nil
	}
	// A negative TTL disables expiry; stored fields never expire.
	msg := fernet.VerifyAndDecrypt([]byte(stored), -1, c.keys)
	if msg == nil {
		return "", errors.New("failed to decrypt field: token not valid for any configured key")
	}
	return string(msg), nil
}

// isToken reports whether s has the shape of a Fernet token: padded
// base64url of a version 0x80 payload with a whole number of cipher blocks.
func isToken(s string) bool {
	if !strings.HasPrefix(s, tokenPrefix) {
		return false
	}
	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return false
	}
	n := len(raw) - tokenOverhead
	return raw[0] == 0x80 && n >= blockSize && n%blockSize == 0
}
