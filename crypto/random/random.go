// Package random wraps the CSPRNG collaborator used for fresh salts and IVs.
package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Bytes returns n freshly drawn random bytes.
func Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("random: %w", err)
	}
	return buf, nil
}
