package hashing

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
)

// DefaultBcryptCost is the recommended work factor for bcrypt.
// At cost 12, hashing takes approximately 250 ms on a modern server CPU,
// which satisfies OWASP ASVS Level 1 (≥ 10) and Level 2 (≥ 12).
//
// Increase this value as hardware improves; aim to keep hashing time
// between 100 ms and 500 ms for your deployment environment.
const DefaultBcryptCost = bcrypt.DefaultCost

// BcryptOptions configures a [BcryptHasher].
type BcryptOptions struct {
	// Cost is the bcrypt work factor (logarithmic).
	// Valid range: [bcrypt.MinCost (4), bcrypt.MaxCost (31)].
	Cost int

	// Version is the tag written into new hashes. Empty means 2b.
	Version bcrypt.Version
}

// DefaultBcryptOptions returns BcryptOptions with [DefaultBcryptCost] and
// the 2b version tag.
func DefaultBcryptOptions() BcryptOptions {
	return BcryptOptions{Cost: DefaultBcryptCost, Version: bcrypt.DefaultVersion}
}

// BcryptHasher hashes passwords using bcrypt.
//
// Every hash carries its own 128-bit random salt, so callers never manage
// salts explicitly.
//
// BcryptHasher is immutable after construction and safe for concurrent use.
type BcryptHasher struct {
	cost   int
	engine *bcrypt.Engine
}

// NewBcryptHasher constructs a BcryptHasher with the provided options.
// Returns [ErrInvalidOption] if Cost is outside [bcrypt.MinCost,
// bcrypt.MaxCost] or Version is not a supported tag.
func NewBcryptHasher(opts BcryptOptions) (*BcryptHasher, error) {
	if opts.Cost < bcrypt.MinCost || opts.Cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, opts.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	engine, err := bcrypt.NewEngine(bcrypt.Options{Version: opts.Version})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	return &BcryptHasher{cost: opts.Cost, engine: engine}, nil
}

// Driver returns [DriverBcrypt].
func (h *BcryptHasher) Driver() DriverName { return DriverBcrypt }

// Cost returns the configured bcrypt work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Version returns the tag written into new hashes.
func (h *BcryptHasher) Version() bcrypt.Version { return h.engine.Version() }

// Make hashes password with bcrypt and returns the Modular Crypt Format string
// (e.g., "$2b$12$..."). A fresh 128-bit random salt is generated internally.
//
// Passwords longer than 72 bytes are rejected with [bcrypt.ErrPasswordTooLong]
// and passwords containing a NUL byte with [bcrypt.ErrPasswordContainsNUL].
// Pre-hash such inputs with SHA-256 if they must be supported.
func (h *BcryptHasher) Make(password string) (string, error) {
	hash, err := h.engine.Hash([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: failed to hash password: %w", err)
	}
	return hash, nil
}

// Check verifies that password matches the bcrypt-encoded hash.
// Returns (false, nil) on mismatch and for passwords bcrypt could never have
// hashed (over 72 bytes, or containing a NUL byte).
func (h *BcryptHasher) Check(password, hash string) (bool, error) {
	if !h.looksLikeBcrypt(hash) {
		return false, fmt.Errorf("%w: hash does not appear to be bcrypt", ErrAlgorithmMismatch)
	}
	err := bcrypt.Compare([]byte(password), hash)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword),
		errors.Is(err, bcrypt.ErrPasswordTooLong),
		errors.Is(err, bcrypt.ErrPasswordContainsNUL):
		return false, nil
	case errors.Is(err, bcrypt.ErrMalformedHash):
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	default:
		return false, fmt.Errorf("hashing: bcrypt: %w", err)
	}
}

// NeedsRehash returns true if the cost or version tag encoded in hash
// differs from the hasher's configuration. A lower stored cost means the
// hash is less secure than the current configuration; a higher stored cost
// means the configuration was intentionally dialled back (rare but handled).
func (h *BcryptHasher) NeedsRehash(hash string) (bool, error) {
	parsed, err := h.decode(hash)
	if err != nil {
		return false, err
	}
	return parsed.Cost != h.cost || parsed.Version != h.engine.Version(), nil
}

// Info extracts the work factor and version tag from a bcrypt hash string.
//
// Returned [HashInfo].Params:
//   - "cost"    → int
//   - "version" → string
func (h *BcryptHasher) Info(hash string) (HashInfo, error) {
	parsed, err := h.decode(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Driver: DriverBcrypt,
		Params: map[string]any{
			"cost":    parsed.Cost,
			"version": string(parsed.Version),
		},
	}, nil
}

func (h *BcryptHasher) decode(hash string) (*bcrypt.Hashed, error) {
	if !h.looksLikeBcrypt(hash) {
		return nil, fmt.Errorf("%w: hash does not appear to be bcrypt", ErrAlgorithmMismatch)
	}
	parsed, err := bcrypt.Decode(hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return parsed, nil
}

// looksLikeBcrypt returns true if hash has a recognised bcrypt prefix.
func (h *BcryptHasher) looksLikeBcrypt(hash string) bool {
	d, ok := DetectDriver(hash)
	return ok && d == DriverBcrypt
}
