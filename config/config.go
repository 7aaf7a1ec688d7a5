// Package config holds the Secure Cell library's fixed parameters. It is
// adapted from the teacher's configs/configs.go, which held server
// addresses and Redis key templates as package-level vars; here the same
// "plain package of exported settings" shape carries the KDF and algorithm
// constants instead.
package config

import "securecell/token"

var (
	// PBKDF2Iterations is the iteration count used for every newly created
	// token. Decrypt accepts whatever iteration count a token declares;
	// this constant only governs encrypt.
	PBKDF2Iterations uint32 = 600_000

	// SaltLength is the salt length, in bytes, drawn for every encrypt
	// call. Decrypt accepts any salt length that parses.
	SaltLength = 16

	// DefaultAlgorithm is the algorithm identifier stamped on newly
	// created tokens. See token.DefaultAlgorithm for the concrete value.
	DefaultAlgorithm = token.DefaultAlgorithm
)
