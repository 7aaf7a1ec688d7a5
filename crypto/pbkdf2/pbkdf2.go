// Package pbkdf2 wraps the PBKDF2-HMAC-SHA256 KDF collaborator.
//
// The hash function is fixed at SHA-256: the algorithm identifier's KDF
// selector names "PBKDF2" without a choice of digest, so there is nothing to
// parameterize here beyond iteration count, salt, and output length.
package pbkdf2

import (
	"crypto/sha256"

	xpbkdf2 "golang.org/x/crypto/pbkdf2"
)

// Derive runs PBKDF2-HMAC-SHA256 over passphrase and salt for iterations
// rounds, producing a key of keyLen bytes. It must be called exactly once
// per encrypt or decrypt operation; callers must never invoke it twice for
// the same key and must never let a downstream AEAD re-derive it.
func Derive(passphrase, salt []byte, iterations uint32, keyLen int) []byte {
	return xpbkdf2.Key(passphrase, salt, int(iterations), keyLen, sha256.New)
}
