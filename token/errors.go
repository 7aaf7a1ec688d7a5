package token

import "errors"

// ErrCorruptedToken reports a token that failed structural parsing: short
// framing or a length field that disagrees with the bytes actually present.
// The algorithm identifier is not validated by this package's readers.
var ErrCorruptedToken = errors.New("token: corrupted token")

// ErrBufferTooSmall reports an output buffer smaller than Header.Size().
var ErrBufferTooSmall = errors.New("token: buffer too small")
