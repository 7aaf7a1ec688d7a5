// Package aead wraps the "plain AEAD" collaborator: AES-GCM taken directly
// from the standard library. The caller always supplies the final key —
// this package never derives or stretches it, so it is safe to hand it a
// key that was already produced by a KDF upstream.
package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// NonceSize is the IV length this package expects and produces.
const NonceSize = 12

// TagSize is the authentication tag length for every key size this package
// accepts. Standard-overhead GCM always produces a 16-byte tag regardless of
// key length, so this is a compile-time constant rather than something
// Overhead() needs to be queried per call.
const TagSize = 16

// Seal encrypts plaintext under key and iv, binding associatedData without
// encrypting it. The returned ciphertext is exactly len(plaintext) bytes;
// the authentication tag is returned separately so callers can place it in
// its own token field instead of appending it to the ciphertext.
func Seal(key, iv, plaintext, associatedData []byte) (ciphertext, tag []byte, err error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	if len(iv) != gcm.NonceSize() {
		return nil, nil, fmt.Errorf("aead: iv length %d, want %d", len(iv), gcm.NonceSize())
	}

	sealed := gcm.Seal(nil, iv, plaintext, associatedData)
	split := len(sealed) - gcm.Overhead()
	ciphertext = sealed[:split]
	tag = sealed[split:]
	return ciphertext, tag, nil
}

// Open decrypts ciphertext under key and iv, verifying tag and
// associatedData. It fails closed: any authentication failure returns an
// error and a nil plaintext, never a partial result.
func Open(key, iv, ciphertext, tag, associatedData []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != gcm.NonceSize() {
		return nil, fmt.Errorf("aead: iv length %d, want %d", len(iv), gcm.NonceSize())
	}
	if len(tag) != gcm.Overhead() {
		return nil, fmt.Errorf("aead: tag length %d, want %d", len(tag), gcm.Overhead())
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, associatedData)
	if err != nil {
		return nil, fmt.Errorf("aead: authentication failed: %w", err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("aead: key length %d not one of 16/24/32", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aead: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("aead: %w", err)
	}
	return gcm, nil
}
