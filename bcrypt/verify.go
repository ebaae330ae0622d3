package bcrypt

import "crypto/subtle"

// Compare reports whether password produces the digest stored in encoded.
// It returns nil on a match, [ErrMismatchedHashAndPassword] on a mismatch,
// and a decode or password-length error otherwise.
//
// The digests are compared in constant time.
func Compare(password []byte, encoded string) error {
	target, err := Decode(encoded)
	if err != nil {
		return err
	}
	c := resume(target)
	if err := c.scheduleKey(password); err != nil {
		return err
	}
	c.computeDigest()
	if subtle.ConstantTimeCompare(c.digest[:], target.Digest[:]) != 1 {
		return ErrMismatchedHashAndPassword
	}
	return nil
}

// Verify reports whether password matches encoded. It fails closed: a
// malformed hash, an unsupported version or a password longer than
// MaxPasswordLen all yield false. A nil password is the empty password.
func Verify(password []byte, encoded string) bool {
	return Compare(password, encoded) == nil
}
