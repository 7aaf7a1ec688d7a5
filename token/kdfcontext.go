package token

import "encoding/binary"

// kdfContextFixedSize is the length of the iteration-count and salt-length
// fields that precede the salt bytes themselves.
const kdfContextFixedSize = 4 + 4

// KDFContext is the PBKDF2 parameter block embedded in a token (spec.md
// section 6's "KDF context layout"): iteration count, then a length-
// prefixed salt.
type KDFContext struct {
	Iterations uint32
	Salt       []byte
}

// Size returns the exact serialized size of c.
func (c KDFContext) Size() int {
	return kdfContextFixedSize + len(c.Salt)
}

// Write serializes c into dst, which must be at least c.Size() bytes. The
// caller (token.Header.Write) is responsible for sizing dst; a short dst
// here is a fatal internal error, not a recoverable one, since header
// sizing already accounted for it.
func (c KDFContext) Write(dst []byte) {
	binary.LittleEndian.PutUint32(dst[0:4], c.Iterations)
	binary.LittleEndian.PutUint32(dst[4:8], uint32(len(c.Salt)))
	copy(dst[kdfContextFixedSize:], c.Salt)
}

// ReadKDFContext parses a KDF context from the front of buf. The returned
// Salt aliases buf; it is not copied. It fails ErrCorruptedToken when the
// declared salt length exceeds the bytes actually available; bytes after
// the salt are not examined.
func ReadKDFContext(buf []byte) (KDFContext, error) {
	if len(buf) < kdfContextFixedSize {
		return KDFContext{}, ErrCorruptedToken
	}

	iterations := binary.LittleEndian.Uint32(buf[0:4])
	saltLen := binary.LittleEndian.Uint32(buf[4:8])

	rest := buf[kdfContextFixedSize:]
	if uint64(saltLen) > uint64(len(rest)) {
		return KDFContext{}, ErrCorruptedToken
	}

	return KDFContext{
		Iterations: iterations,
		Salt:       rest[:saltLen],
	}, nil
}
