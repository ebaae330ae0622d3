// Package bcrypt implements the bcrypt adaptive password-hashing function on
// top of this module's Blowfish core.
//
// # Architecture
//
// A hash call walks a fixed sequence of stages, each owned by the call and
// never shared:
//
//	unconfigured → salt-generated → key-scheduled → digest-computed → encoded
//
// The key schedule is EksBlowfishSetup: a salted Blowfish expansion followed
// by 2^cost rounds of alternating password and salt expansions. The digest is
// "OrpheanBeholderScryDoubt" encrypted 64 times in ECB mode, truncated to 23
// bytes. Verification decodes the stored hash, re-runs the schedule with the
// stored salt and cost, and compares digests in constant time.
//
// # Quick start
//
//	hash, err := bcrypt.Hash([]byte("my-secret-password"), bcrypt.DefaultCost)
//	if err != nil { return err }
//
//	ok := bcrypt.Verify([]byte("my-secret-password"), hash) // true
//
// # Hash format
//
//	$2b$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW
//	 \/ \/ \____________________/\_____________________________/
//	 |  |          salt                      digest
//	 |  cost
//	 version
//
// Salt and digest use bcrypt's base-64 alphabet (./A-Za-z0-9) without
// padding. Decoding is strict: every hash has exactly one valid spelling.
//
// # Password policy
//
// Passwords longer than [MaxPasswordLen] (72) bytes are rejected with
// [ErrPasswordTooLong] rather than silently truncated. Passwords containing a
// NUL byte are rejected with [ErrPasswordContainsNUL]: the key is the password
// plus a terminating NUL, repeated to 72 bytes, so "" and "\x00" would
// otherwise produce the same hash. [Verify] reports false for both. A nil
// password is the empty password.
//
// # Versions
//
// New hashes carry version "2b" unless configured otherwise through
// [NewEngine]. Hashes tagged "2a", "2b" and "2y" all verify; the tag does not
// change the computation for passwords within the length limit.
//
// # Cancellation
//
// The cost loop cannot be interrupted: stopping early would yield a weaker
// hash. [Engine.HashContext] runs the computation on a worker and abandons
// the result when the context ends first.
package bcrypt
