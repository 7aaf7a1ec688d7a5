// Package securecell implements passphrase-based authenticated symmetric
// encryption: a single passphrase is stretched into a key with PBKDF2 and
// used to seal a message under AES-GCM, producing a self-describing token
// plus a ciphertext the caller stores or transmits however it likes.
//
// The package follows the teacher's orchestration shape (x3dh.go's
// single-file pipeline, server.go's package-level logger) while replacing
// the Double Ratchet/X3DH domain with Secure Cell's encrypt/decrypt pair.
package securecell

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"securecell/config"
	"securecell/crypto/aead"
	"securecell/crypto/pbkdf2"
	"securecell/crypto/random"
	"securecell/crypto/wipe"
	"securecell/token"
)

var log = logrus.WithField("component", "securecell")

// RequiredEncryptSize returns the token and ciphertext buffer sizes Encrypt
// needs for a message of messageLen bytes, under the current default
// algorithm and configuration. It spends no randomness and can be called
// any number of times with identical inputs for the same answer — callers
// can use it to size buffers before calling Encrypt at all, instead of
// relying on Encrypt's own buffer-too-small probe.
func RequiredEncryptSize(messageLen int) (tokenSize, ciphertextSize int) {
	headerSize := token.HeaderSize(aead.NonceSize, aead.TagSize, config.SaltLength)
	return headerSize, messageLen
}

// Encrypt seals message under a key derived from passphrase, writing the
// resulting token to tokenOut and the ciphertext to ciphertextOut.
//
// context is optional associated data (pass nil for none); if non-nil it
// must be non-empty. If either output buffer is smaller than required, the
// operation is not performed: Encrypt returns the required sizes alongside
// ErrBufferTooSmall so the caller can reallocate and call again.
func Encrypt(passphrase, message, context, tokenOut, ciphertextOut []byte) (tokenLen, ciphertextLen int, err error) {
	if len(passphrase) == 0 || len(message) == 0 {
		return 0, 0, ErrInvalidParameter
	}
	if uint64(len(message)) > math.MaxUint32 {
		return 0, 0, ErrInvalidParameter
	}
	if context != nil && len(context) == 0 {
		return 0, 0, ErrInvalidParameter
	}

	requiredTokenSize, requiredCiphertextSize := RequiredEncryptSize(len(message))
	if len(tokenOut) < requiredTokenSize || len(ciphertextOut) < requiredCiphertextSize {
		return requiredTokenSize, requiredCiphertextSize, ErrBufferTooSmall
	}

	alg := config.DefaultAlgorithm

	salt, err := random.Bytes(config.SaltLength)
	if err != nil {
		return 0, 0, fmt.Errorf("securecell: draw salt: %w", ErrGenericFailure)
	}
	defer wipe.Bytes(salt)

	key := pbkdf2.Derive(passphrase, salt, config.PBKDF2Iterations, alg.KeyLengthBytes())
	defer wipe.Bytes(key)

	iv, err := random.Bytes(aead.NonceSize)
	if err != nil {
		return 0, 0, fmt.Errorf("securecell: draw iv: %w", ErrGenericFailure)
	}
	defer wipe.Bytes(iv)

	// aeadAlg carries KDF=NOKDF: the value a "plain AEAD" collaborator
	// would be handed so it never re-derives a key this pipeline already
	// derived. Our aead package takes the key directly and has no
	// re-derivation path of its own, so aeadAlg has no parameter to flow
	// into here; it exists to keep that invariant visible at the call
	// site and in the log line below.
	aeadAlg := alg.StripKDF()

	ciphertext, tag, err := aead.Seal(key, iv, message, context)
	if err != nil {
		return 0, 0, fmt.Errorf("securecell: seal: %w", ErrGenericFailure)
	}
	defer wipe.Bytes(tag)

	if len(ciphertext) != len(message) {
		return 0, 0, fmt.Errorf("securecell: sealed length mismatch: %w", ErrGenericFailure)
	}

	hdr := token.Header{
		Algorithm:     alg,
		IV:            iv,
		Tag:           tag,
		MessageLength: uint32(len(message)),
		KDF: token.KDFContext{
			Iterations: config.PBKDF2Iterations,
			Salt:       salt,
		},
	}
	if hdr.Size() != requiredTokenSize {
		panic("securecell: header size drifted from RequiredEncryptSize")
	}
	if err := hdr.Write(tokenOut); err != nil {
		panic(fmt.Sprintf("securecell: header write failed after size check: %v", err))
	}
	copy(ciphertextOut, ciphertext)

	log.WithFields(logrus.Fields{
		"message_len": len(message),
		"token_len":   requiredTokenSize,
		"kdf_alg":     aeadAlg.KDFSelector(),
		"mode_alg":    alg.ModeSelector(),
		"key_bits":    alg.KeyLengthBits(),
	}).Debug("encrypt complete")

	return requiredTokenSize, len(ciphertext), nil
}

// Decrypt opens a token produced by Encrypt, writing the recovered message
// to messageOut.
//
// tok is required and must be non-empty. ciphertext may be omitted (nil)
// only when messageOut is also omitted — a pure sizing probe. Decrypt
// performs a shallow parse of tok first and, if messageOut is smaller than
// the declared message length, returns that length alongside
// ErrBufferTooSmall without validating the rest of the token; callers use
// this to size messageOut before supplying ciphertext at all.
func Decrypt(passphrase, context, tok, ciphertext, messageOut []byte) (messageLen int, err error) {
	if len(passphrase) == 0 || len(tok) == 0 {
		return 0, ErrInvalidParameter
	}
	if context != nil && len(context) == 0 {
		return 0, ErrInvalidParameter
	}
	if messageOut != nil && len(ciphertext) == 0 {
		return 0, ErrInvalidParameter
	}

	declaredLen, err := token.MessageSize(tok)
	if err != nil {
		return 0, fmt.Errorf("securecell: %w", ErrCorruptedToken)
	}
	if uint64(len(messageOut)) < uint64(declaredLen) {
		return int(declaredLen), ErrBufferTooSmall
	}

	hdr, err := token.ReadHeader(tok)
	if err != nil {
		return 0, fmt.Errorf("securecell: %w", ErrCorruptedToken)
	}
	if !hdr.Algorithm.ReservedBitsValid() {
		return 0, fmt.Errorf("securecell: reserved bits set: %w", ErrCorruptedToken)
	}
	if hdr.Algorithm.KDFSelector() != token.KDFPBKDF2 {
		return 0, fmt.Errorf("securecell: unsupported kdf selector: %w", ErrCorruptedToken)
	}
	if !hdr.Algorithm.KeyLengthValid() {
		return 0, fmt.Errorf("securecell: unsupported key length: %w", ErrCorruptedToken)
	}
	if uint32(len(ciphertext)) != hdr.MessageLength {
		return 0, fmt.Errorf("securecell: ciphertext length disagrees with header: %w", ErrCorruptedToken)
	}

	// Sized for the largest key this algorithm field can ever name (256
	// bits); only the algorithm-declared prefix is used. Keeps the
	// secret-carrying allocation a fixed shape regardless of which of the
	// three valid key lengths the token declares.
	var keyStorage [32]byte
	derived := pbkdf2.Derive(passphrase, hdr.KDF.Salt, hdr.KDF.Iterations, hdr.Algorithm.KeyLengthBytes())
	copy(keyStorage[:], derived)
	wipe.Bytes(derived)
	defer wipe.Bytes(keyStorage[:])
	key := keyStorage[:hdr.Algorithm.KeyLengthBytes()]

	aeadAlg := hdr.Algorithm.StripKDF()

	plaintext, err := aead.Open(key, hdr.IV, ciphertext, hdr.Tag, context)
	if err != nil {
		log.WithFields(logrus.Fields{
			"kdf_alg":  aeadAlg.KDFSelector(),
			"mode_alg": hdr.Algorithm.ModeSelector(),
		}).Debug("decrypt authentication failed")
		return 0, fmt.Errorf("securecell: %w", ErrGenericFailure)
	}
	if len(plaintext) != len(ciphertext) {
		return 0, fmt.Errorf("securecell: opened length mismatch: %w", ErrGenericFailure)
	}

	copy(messageOut, plaintext)

	log.WithFields(logrus.Fields{
		"message_len": len(plaintext),
		"key_bits":    hdr.Algorithm.KeyLengthBits(),
	}).Debug("decrypt complete")

	return len(plaintext), nil
}

// EncryptToken is an allocating convenience wrapper around Encrypt: it
// sizes its own buffers via RequiredEncryptSize and returns them trimmed to
// the lengths actually used.
func EncryptToken(passphrase, message, context []byte) (tok, ciphertext []byte, err error) {
	tokenSize, ciphertextSize := RequiredEncryptSize(len(message))
	tokenBuf := make([]byte, tokenSize)
	ciphertextBuf := make([]byte, ciphertextSize)

	tokenLen, ciphertextLen, err := Encrypt(passphrase, message, context, tokenBuf, ciphertextBuf)
	if err != nil {
		return nil, nil, err
	}
	return tokenBuf[:tokenLen], ciphertextBuf[:ciphertextLen], nil
}

// DecryptMessage is an allocating convenience wrapper around Decrypt: it
// probes for the required message size, allocates exactly that much, then
// performs the real decrypt.
func DecryptMessage(passphrase, context, tok, ciphertext []byte) ([]byte, error) {
	declaredLen, err := Decrypt(passphrase, context, tok, nil, nil)
	if err != nil && !errors.Is(err, ErrBufferTooSmall) {
		return nil, err
	}

	messageOut := make([]byte, declaredLen)
	n, err := Decrypt(passphrase, context, tok, ciphertext, messageOut)
	if err != nil {
		return nil, err
	}
	return messageOut[:n], nil
}
