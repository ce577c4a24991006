// Package handle converts internal account numbers to and from the opaque
// tokens handed to clients. Tokens are sealed with XChaCha20-Poly1305, so a
// client can neither read the account number out of a handle nor construct a
// handle for an account it was never issued. Decoding a handle proves only
// that this server minted it; ownership must still be checked at the point
// of use.
package handle

import (
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/bank-mobile-api/internal/domain"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// SecretSize is the minimum key material length accepted by NewCodec.
const SecretSize = 32

// Codec seals and opens account handles with keys derived from a single
// process-wide secret.
type Codec struct {
	aead     cipher.AEAD
	nonceKey []byte
}

// NewCodec derives the AEAD key and the nonce-derivation key from secret via
// HKDF-SHA256. The secret must be at least SecretSize bytes.
func NewCodec(secret []byte) (*Codec, error) {
	if len(secret) < SecretSize {
		return nil, fmt.Errorf("handle secret must be at least %d bytes, got %d", SecretSize, len(secret))
	}
	kdf := hkdf.New(sha256.New, secret, nil, []byte("account-handle-v1"))
	aeadKey := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(kdf, aeadKey); err != nil {
		return nil, fmt.Errorf("derive aead key: %w", err)
	}
	nonceKey := make([]byte, sha256.Size)
	if _, err := io.ReadFull(kdf, nonceKey); err != nil {
		return nil, fmt.Errorf("derive nonce key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(aeadKey)
	if err != nil {
		return nil, err
	}
	return &Codec{aead: aead, nonceKey: nonceKey}, nil
}

// Encode seals an account number into an opaque handle. Encoding is
// deterministic: the nonce is an HMAC of the plaintext, so the same account
// number always yields the same handle under the same secret.
func (c *Codec) Encode(accountNumber string) string {
	nonce := c.nonceFor(accountNumber)
	buf := make([]byte, 0, len(nonce)+len(accountNumber)+chacha20poly1305.Overhead)
	buf = append(buf, nonce...)
	buf = c.aead.Seal(buf, nonce, []byte(accountNumber), nil)
	return base64.RawURLEncoding.EncodeToString(buf)
}

// Decode opens a handle back into the account number it was issued for.
// Every failure mode — bad encoding, truncation, failed auth tag — reports
// the same domain.ErrMalformedHandle so callers can't be used as an oracle.
func (c *Codec) Decode(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", malformed()
	}
	if len(raw) < chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return "", malformed()
	}
	nonce, ct := raw[:chacha20poly1305.NonceSizeX], raw[chacha20poly1305.NonceSizeX:]
	pt, err := c.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", malformed()
	}
	// A token with a spliced nonce fails here even if its seal is intact.
	if !hmac.Equal(nonce, c.nonceFor(string(pt))) {
		return "", malformed()
	}
	return string(pt), nil
}

func (c *Codec) nonceFor(plaintext string) []byte {
	mac := hmac.New(sha256.New, c.nonceKey)
	mac.Write([]byte(plaintext))
	return mac.Sum(nil)[:chacha20poly1305.NonceSizeX]
}

func malformed() error {
	return fmt.Errorf("decode account handle: %w", domain.ErrMalformedHandle)
}
