package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	pinSaltLength   = 16
	pinKeyLength    = 32
	pinTimeCost     = 3
	pinMemoryCost   = 64 * 1024
	pinParallelism  = 2
	pinHashVariant  = "argon2id"
)

// HashPin derives an argon2id hash of the unlock PIN, encoded as
// $argon2id$v=19$m=65536,t=3,p=2$salt$hash.
func HashPin(pin string) (string, error) {
	salt := make([]byte, pinSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(pin), salt, pinTimeCost, pinMemoryCost, pinParallelism, pinKeyLength)

	return fmt.Sprintf("$%s$v=19$m=%d,t=%d,p=%d$%s$%s",
		pinHashVariant, pinMemoryCost, pinTimeCost, pinParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPin re-derives the hash with the stored salt and compares in
// constant time.
func VerifyPin(pin, hashed string) (bool, error) {
	parts := strings.Split(hashed, "$")
	if len(parts) != 6 || parts[1] != pinHashVariant {
		return false, fmt.Errorf("unsupported pin hash format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, err
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(pin), salt, pinTimeCost, pinMemoryCost, pinParallelism, pinKeyLength)
	return subtle.ConstantTimeCompare(computed, hash) == 1, nil
}
