package blowfish

import "golang.org/x/crypto/blowfish"

// ExpandKey performs one unsalted key expansion over the current state: key
// is XORed cyclically into the P-array, then the running block, starting
// from zero, is re-encrypted and written through the P-array and each
// S-box in turn. bcrypt calls this 2·2^cost times.
//
// ExpandKey panics if key is empty.
func (c *Cipher) ExpandKey(key []byte) {
	if len(key) == 0 {
		panic("blowfish: ExpandKey called with an empty key")
	}
	blowfish.ExpandKey(key, c.c)
}
