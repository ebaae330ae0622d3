package bcrypt

import (
	"encoding/hex"
	"fmt"
)

// ParseSalt accepts a salt written as exactly 16 raw bytes or as 32
// hexadecimal digits, and returns the 16 salt bytes.
func ParseSalt(s string) ([]byte, error) {
	switch len(s) {
	case SaltLen:
		return []byte(s), nil
	case 2 * SaltLen:
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSaltLength, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q is neither 16 bytes nor 32 hex digits", ErrInvalidSaltLength, s)
	}
}
