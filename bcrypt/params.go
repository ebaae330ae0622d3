package bcrypt

import (
	"bytes"
	"fmt"
)

const (
	// MinCost is the lowest accepted work factor.
	MinCost = 4
	// MaxCost is the highest accepted work factor.
	MaxCost = 31
	// DefaultCost is the recommended work factor: roughly 250 ms per hash on
	// a modern server CPU. Raise it as hardware improves.
	DefaultCost = 12

	// SaltLen is the raw salt length in bytes.
	SaltLen = 16
	// DigestLen is the number of digest bytes kept in the encoded hash.
	DigestLen = 23
	// MaxPasswordLen is the longest password, in bytes, that bcrypt can use.
	MaxPasswordLen = 72

	// EncodedLen is the length of every encoded hash:
	// "$" version "$" cost "$" salt(22) digest(31).
	EncodedLen = 1 + 2 + 1 + 2 + 1 + encodedSaltLen + encodedDigestLen

	encodedSaltLen   = 22
	encodedDigestLen = 31
)

// Version is the two-character algorithm tag at the start of a hash.
type Version string

const (
	// Version2A is the tag used by most historical implementations.
	Version2A Version = "2a"
	// Version2B is OpenBSD's current tag and the default for new hashes.
	Version2B Version = "2b"
	// Version2Y is crypt_blowfish's tag for its corrected algorithm.
	Version2Y Version = "2y"

	// DefaultVersion is written into hashes made by the package-level functions.
	DefaultVersion = Version2B
)

// ParseVersion returns the Version named by s, or [ErrUnsupportedVersion].
func ParseVersion(s string) (Version, error) {
	v := Version(s)
	if !v.valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedVersion, s)
	}
	return v, nil
}

func (v Version) valid() bool {
	switch v {
	case Version2A, Version2B, Version2Y:
		return true
	}
	return false
}

func checkCost(cost int) error {
	if cost < MinCost || cost > MaxCost {
		return fmt.Errorf("%w: %d is not in [%d, %d]", ErrInvalidCost, cost, MinCost, MaxCost)
	}
	return nil
}

func checkPassword(password []byte) error {
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("%w: got %d bytes", ErrPasswordTooLong, len(password))
	}
	if i := bytes.IndexByte(password, 0); i >= 0 {
		return fmt.Errorf("%w: at offset %d", ErrPasswordContainsNUL, i)
	}
	return nil
}
