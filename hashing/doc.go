// Package hashing is the caller-facing password hashing layer built on this
// module's [bcrypt] engine.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface. Application code should
// accept a Hasher rather than a concrete type so a different driver can be
// injected in tests or swapped in later. [BcryptHasher] is the built-in
// driver; it adds the bookkeeping a login flow needs on top of the raw
// engine: configured cost and version, rehash detection and hash metadata.
//
// # Quick start
//
//	h, err := hashing.NewBcryptHasher(hashing.DefaultBcryptOptions())
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := h.Make("my-secret-password")
//	ok, _   := h.Check("my-secret-password", hash) // true
//
// [Manager] keeps several named drivers side by side, typically bcrypt as the
// default next to a wrapper for a legacy scheme, and dispatches Make to the
// default and CheckWithDetect to whichever driver produced a hash.
//
// # Rehashing
//
// Call [Hasher.NeedsRehash] on every successful login. It returns true when
// the stored hash was produced with a different cost or version tag than
// the hasher's current configuration. Re-hash and persist immediately:
//
//	ok, _ := h.Check(password, storedHash)
//	if ok {
//	    if needs, _ := h.NeedsRehash(storedHash); needs {
//	        newHash, _ := h.Make(password)
//	        persist(userID, newHash)
//	    }
//	}
//
// # Security defaults
//
//   - bcrypt: cost 12 (≈ 250 ms on modern hardware; exceeds OWASP minimum of 10),
//     version tag 2b.
//   - Passwords over 72 bytes or containing a NUL byte are rejected by Make,
//     never truncated.
package hashing
