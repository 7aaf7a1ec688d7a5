package token

// Algorithm is the 32-bit algorithm identifier (spec.md section 3). It packs
// four disjoint bit-fields; every bit outside their union is reserved and
// must read as zero on decrypt. See SPEC_FULL.md section 3.1 for the exact
// layout, chosen here since original_source/ kept no files to resolve the
// abstract four-field description against.
type Algorithm uint32

const (
	kdfSelectorMask = 0x0000000F
	paddingMask     = 0x000000F0
	modeMask        = 0x00000F00
	keyLenMask      = 0x0FFF_F000
	keyLenShift     = 12
	reservedMask    = 0xF000_0000
)

// KDF selector values. KDFNone ("NOKDF") instructs the AEAD collaborator to
// use the supplied key directly; it is reserved for the key-mode Secure
// Cell variant and must never appear on a passphrase token being decrypted.
const (
	KDFNone   uint32 = 0
	KDFPBKDF2 uint32 = 1
)

// Padding selector values.
const (
	PaddingNone uint32 = 0
)

// Symmetric algorithm/mode selector values.
const (
	ModeAESGCM uint32 = 1
)

// NewAlgorithm packs the four fields into an Algorithm. keyLenBits must be
// one of 128/192/256 for the result to pass KeyLengthValid.
func NewAlgorithm(kdf, padding, mode, keyLenBits uint32) Algorithm {
	return Algorithm(
		(kdf & 0xF) |
			((padding & 0xF) << 4) |
			((mode & 0xF) << 8) |
			((keyLenBits << keyLenShift) & keyLenMask),
	)
}

// DefaultAlgorithm is the compile-time default for new passphrase tokens:
// AES-256-GCM, KDF=PBKDF2, padding=none. Upgrading this default in a future
// version must not remove decrypt support for this value.
var DefaultAlgorithm = NewAlgorithm(KDFPBKDF2, PaddingNone, ModeAESGCM, 256)

// KDFSelector extracts the KDF-selector field.
func (a Algorithm) KDFSelector() uint32 { return uint32(a) & kdfSelectorMask }

// PaddingSelector extracts the padding-selector field.
func (a Algorithm) PaddingSelector() uint32 { return (uint32(a) & paddingMask) >> 4 }

// ModeSelector extracts the symmetric algorithm/mode-selector field.
func (a Algorithm) ModeSelector() uint32 { return (uint32(a) & modeMask) >> 8 }

// KeyLengthBits extracts the key-length field.
func (a Algorithm) KeyLengthBits() uint32 { return (uint32(a) & keyLenMask) >> keyLenShift }

// KeyLengthBytes returns the key-length field divided by 8.
func (a Algorithm) KeyLengthBytes() int { return int(a.KeyLengthBits() / 8) }

// KeyLengthValid reports whether the key-length field is one of the three
// allowed values.
func (a Algorithm) KeyLengthValid() bool {
	switch a.KeyLengthBits() {
	case 128, 192, 256:
		return true
	default:
		return false
	}
}

// ReservedBitsValid reports whether a has no bits set outside the union of
// the four recognized fields. Old decoders use this as a forward-
// compatibility trap: refuse what they don't understand rather than
// silently ignore it.
func (a Algorithm) ReservedBitsValid() bool {
	return uint32(a)&reservedMask == 0
}

// StripKDF clears the KDF-selector field and sets it to KDFNone, instructing
// the AEAD collaborator that the caller has already derived the final key
// and must not re-derive it.
func (a Algorithm) StripKDF() Algorithm {
	return Algorithm((uint32(a) &^ kdfSelectorMask) | KDFNone)
}
