package bcrypt

import "errors"

// Sentinel errors returned by bcrypt operations.
//
// Use [errors.Is] for comparisons. Decode failures always match
// [ErrMalformedHash] and, where one applies, the more specific cause:
//
//	_, err := bcrypt.Decode("$2b$99$...")
//	errors.Is(err, bcrypt.ErrMalformedHash) // true
//	errors.Is(err, bcrypt.ErrInvalidCost)   // true
var (
	// ErrInvalidCost is returned when a cost lies outside [MinCost, MaxCost].
	ErrInvalidCost = errors.New("bcrypt: cost outside allowed range")

	// ErrInvalidSaltLength is returned when an explicit salt is not exactly
	// SaltLen bytes.
	ErrInvalidSaltLength = errors.New("bcrypt: salt must be exactly 16 bytes")

	// ErrMalformedHash is returned when an encoded hash cannot be decoded:
	// wrong length, misplaced separators, invalid characters, unsupported
	// version or out-of-range cost.
	ErrMalformedHash = errors.New("bcrypt: malformed hash")

	// ErrPasswordTooLong is returned when a password exceeds MaxPasswordLen
	// bytes.
	ErrPasswordTooLong = errors.New("bcrypt: password length exceeds 72 bytes")

	// ErrPasswordContainsNUL is returned when a password contains a zero
	// byte. The key schedule terminates the password with NUL and cycles it,
	// so "" and "\x00" (or p and p+"\x00"+p) would otherwise share a hash.
	ErrPasswordContainsNUL = errors.New("bcrypt: password contains a NUL byte")

	// ErrUnsupportedVersion is returned for version tags other than 2a, 2b
	// and 2y.
	ErrUnsupportedVersion = errors.New("bcrypt: unsupported hash version")

	// ErrMismatchedHashAndPassword is returned by Compare when the password
	// does not produce the stored digest.
	ErrMismatchedHashAndPassword = errors.New("bcrypt: hashed password is not the hash of the given password")
)
