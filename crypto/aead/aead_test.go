package aead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func key(n int) []byte {
	k := make([]byte, n)
	for i := range k {
		k[i] = byte(i + 1)
	}
	return k
}

func iv() []byte {
	return []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
}

func TestSealOpenRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		keyLen  int
		aad     []byte
		message []byte
	}{
		{"128-bit key, no aad", 16, nil, []byte("hello")},
		{"192-bit key, with aad", 24, []byte("context"), []byte("a longer message body")},
		{"256-bit key, empty message not applicable, nonempty", 32, []byte("ctx"), []byte("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := key(tt.keyLen)

			ciphertext, tag, err := Seal(k, iv(), tt.message, tt.aad)
			assert.NoError(t, err)
			assert.Len(t, ciphertext, len(tt.message))
			assert.Len(t, tag, TagSize)

			plaintext, err := Open(k, iv(), ciphertext, tag, tt.aad)
			assert.NoError(t, err)
			assert.Equal(t, tt.message, plaintext)
		})
	}
}

func TestOpenFailsOnTamperedCiphertext(t *testing.T) {
	k := key(32)
	ciphertext, tag, err := Seal(k, iv(), []byte("hello"), []byte("ctx"))
	assert.NoError(t, err)

	tampered := append([]byte(nil), ciphertext...)
	tampered[0] ^= 0xFF

	_, err = Open(k, iv(), tampered, tag, []byte("ctx"))
	assert.Error(t, err)
}

func TestOpenFailsOnWrongAssociatedData(t *testing.T) {
	k := key(32)
	ciphertext, tag, err := Seal(k, iv(), []byte("hello"), []byte("ctx-a"))
	assert.NoError(t, err)

	_, err = Open(k, iv(), ciphertext, tag, []byte("ctx-b"))
	assert.Error(t, err)
}

func TestOpenFailsOnWrongKey(t *testing.T) {
	ciphertext, tag, err := Seal(key(32), iv(), []byte("hello"), nil)
	assert.NoError(t, err)

	_, err = Open(key(16), iv(), ciphertext, tag, nil)
	assert.Error(t, err)
}

func TestSealRejectsInvalidKeyLength(t *testing.T) {
	_, _, err := Seal(key(20), iv(), []byte("hello"), nil)
	assert.Error(t, err)
}

func TestSealRejectsInvalidIVLength(t *testing.T) {
	_, _, err := Seal(key(32), []byte{1, 2, 3}, []byte("hello"), nil)
	assert.Error(t, err)
}
