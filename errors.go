package securecell

import "errors"

// Status codes (spec.md section 6/7). All satisfy errors.Is against these
// sentinels even when wrapped with additional context.
var (
	// ErrInvalidParameter reports a precondition violated at the API edge:
	// an empty passphrase, an empty message, or a non-nil zero-length
	// context. Never returned after the first collaborator call.
	ErrInvalidParameter = errors.New("securecell: invalid parameter")

	// ErrBufferTooSmall reports an output buffer insufficient for the
	// operation. It is a recoverable signal, not an error: the required
	// size is always returned alongside it so the caller can reallocate
	// and retry.
	ErrBufferTooSmall = errors.New("securecell: buffer too small")

	// ErrCorruptedToken reports a token that failed structural parsing,
	// declared reserved bits that are nonzero, named an unsupported KDF,
	// used a key length outside {128,192,256}, or whose declared message
	// length disagreed with the supplied ciphertext length.
	ErrCorruptedToken = errors.New("securecell: corrupted token")

	// ErrGenericFailure reports a downstream primitive failure (CSPRNG,
	// KDF, AEAD) or an authentication failure. Decrypt deliberately does
	// not distinguish "the tag didn't verify" from "some other primitive
	// failed" in the error it returns, to avoid handing callers an oracle.
	ErrGenericFailure = errors.New("securecell: generic failure")
)
