// Package blowfish adapts golang.org/x/crypto/blowfish to the shape bcrypt
// needs.
//
// # Architecture
//
// A [Cipher] wraps an x/crypto Blowfish state: an 18-word P-array and four
// 256-word S-boxes, all seeded from the hexadecimal digits of π. The state is
// mutated only by key expansion ([NewCipher], [NewSaltedCipher],
// [Cipher.ExpandKey]); block encryption never writes to it.
//
// Two schedules are provided:
//
//   - [NewCipher]: the standard Blowfish schedule for a 1..56 byte key.
//   - [NewSaltedCipher] plus [Cipher.ExpandKey]: the salted expansion that
//     bcrypt's EksBlowfishSetup is built from.
//
// [Cipher.EncryptBlock] exposes the 16-round Feistel network on a pair of
// 32-bit words, the form in which bcrypt holds its magic text
// ("OrpheanBeholderScryDoubt").
//
// # Thread safety
//
// A Cipher is not safe for concurrent key expansion. Once the schedule is
// complete, concurrent EncryptBlock / Encrypt calls are safe because they only
// read the state.
//
// Blowfish has a 64-bit block and is not recommended for new general-purpose
// encryption. This package exists to serve password hashing.
package blowfish
