package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadTestOverrides loads a ".env.test" file (if present) and, when it sets
// SECURECELL_PBKDF2_ITERATIONS, lowers PBKDF2Iterations for the duration of
// the test run. Production callers never call this; it exists so the test
// suite doesn't spend real PBKDF2 iteration counts' worth of wall-clock time
// on every round-trip test. Grounded on the teacher's cmd/client/main.go,
// which loads a per-user .env file via godotenv before running.
func LoadTestOverrides() {
	_ = godotenv.Load(".env.test") // absence is not an error; defaults stand

	if raw, ok := os.LookupEnv("SECURECELL_PBKDF2_ITERATIONS"); ok {
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil && n > 0 {
			PBKDF2Iterations = uint32(n)
		}
	}
}
