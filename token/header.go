package token

import "encoding/binary"

// envelopeSize is the fixed portion of the wire format (spec.md section 6):
// algorithm id, iv length, tag length, message length, kdf-context length,
// four bytes each.
const envelopeSize = 4 + 4 + 4 + 4 + 4

// Header is the passphrase auth-token envelope (spec.md section 3/6):
// algorithm id, IV, authentication tag, declared message length, and an
// embedded KDF context, in that order.
type Header struct {
	Algorithm     Algorithm
	IV            []byte
	Tag           []byte
	MessageLength uint32
	KDF           KDFContext
}

// HeaderSize returns the serialized size of a header with the given IV,
// tag, and salt lengths, without constructing one. Callers use this to size
// buffers ahead of time from fixed algorithm/configuration parameters.
func HeaderSize(ivLen, tagLen, saltLen int) int {
	return envelopeSize + ivLen + tagLen + kdfContextFixedSize + saltLen
}

// Size returns the exact serialized size of h. The caller trusts this
// equality exactly; any drift between Size and what Write actually emits is
// a fatal internal bug, not a recoverable error.
func (h Header) Size() int {
	return envelopeSize + len(h.IV) + len(h.Tag) + h.KDF.Size()
}

// Write serializes h into dst. It writes the fixed envelope first — with
// the KDF-context size field already filled in — then the IV and tag, then
// the KDF context itself into the slot the envelope reserved for it. This
// two-pass order exists because the envelope must declare the KDF
// context's length before the context bytes are available to write.
func (h Header) Write(dst []byte) error {
	need := h.Size()
	if len(dst) < need {
		return ErrBufferTooSmall
	}

	binary.LittleEndian.PutUint32(dst[0:4], uint32(h.Algorithm))
	binary.LittleEndian.PutUint32(dst[4:8], uint32(len(h.IV)))
	binary.LittleEndian.PutUint32(dst[8:12], uint32(len(h.Tag)))
	binary.LittleEndian.PutUint32(dst[12:16], h.MessageLength)
	binary.LittleEndian.PutUint32(dst[16:20], uint32(h.KDF.Size()))

	offset := envelopeSize
	offset += copy(dst[offset:], h.IV)
	offset += copy(dst[offset:], h.Tag)
	h.KDF.Write(dst[offset : offset+h.KDF.Size()])

	return nil
}

// ReadHeader performs a full parse of a token: it validates framing and
// returns a Header whose IV, Tag, and KDF.Salt fields alias buf rather than
// copy it. It fails ErrCorruptedToken on any malformed length.
func ReadHeader(buf []byte) (Header, error) {
	if len(buf) < envelopeSize {
		return Header{}, ErrCorruptedToken
	}

	alg := Algorithm(binary.LittleEndian.Uint32(buf[0:4]))
	ivLen := binary.LittleEndian.Uint32(buf[4:8])
	tagLen := binary.LittleEndian.Uint32(buf[8:12])
	msgLen := binary.LittleEndian.Uint32(buf[12:16])
	kdfLen := binary.LittleEndian.Uint32(buf[16:20])

	rest := buf[envelopeSize:]
	total := uint64(ivLen) + uint64(tagLen) + uint64(kdfLen)
	if total > uint64(len(rest)) {
		return Header{}, ErrCorruptedToken
	}

	iv := rest[:ivLen]
	rest = rest[ivLen:]
	tag := rest[:tagLen]
	rest = rest[tagLen:]
	kdfBytes := rest[:kdfLen]

	kdf, err := ReadKDFContext(kdfBytes)
	if err != nil {
		return Header{}, err
	}

	return Header{
		Algorithm:     alg,
		IV:            iv,
		Tag:           tag,
		MessageLength: msgLen,
		KDF:           kdf,
	}, nil
}

// MessageSize performs a shallow parse, returning only the declared message
// length from a token's fixed envelope. It does not validate the rest of
// the framing; it exists solely to answer C6 sizing probes cheaply.
func MessageSize(buf []byte) (uint32, error) {
	if len(buf) < envelopeSize {
		return 0, ErrCorruptedToken
	}
	return binary.LittleEndian.Uint32(buf[12:16]), nil
}
