package bcrypt

import (
	"encoding/binary"

	"github.com/hasbyte1/go-bcrypt/blowfish"
)

// magicText is the 192-bit plaintext encrypted to form the digest.
const magicText = "OrpheanBeholderScryDoubt"

// magicWords is magicText as three big-endian (l, r) word pairs.
var magicWords = func() (w [6]uint32) {
	for i := range w {
		w[i] = binary.BigEndian.Uint32([]byte(magicText[4*i:]))
	}
	return w
}()

// expensiveKeySetup is EksBlowfishSetup. The key is the password followed by
// a NUL byte; the salted expansion seeds the state, then 2^cost rounds each
// expand the key and then the salt. The loop runs in full on every call.
func expensiveKeySetup(password, salt []byte, cost int) *blowfish.Cipher {
	key := make([]byte, len(password)+1)
	copy(key, password)

	// key is never empty, so NewSaltedCipher cannot fail.
	c, _ := blowfish.NewSaltedCipher(key, salt)

	rounds := uint64(1) << uint(cost)
	for i := uint64(0); i < rounds; i++ {
		c.ExpandKey(key)
		c.ExpandKey(salt)
	}

	clear(key)
	return c
}

// encryptMagic encrypts the magic plaintext 64 times in ECB mode, each block
// chained into itself, and returns the first DigestLen bytes.
func encryptMagic(c *blowfish.Cipher) [DigestLen]byte {
	w := magicWords
	for n := 0; n < 64; n++ {
		for i := 0; i < len(w); i += 2 {
			w[i], w[i+1] = c.EncryptBlock(w[i], w[i+1])
		}
	}

	var out [4 * len(w)]byte
	for i, v := range w {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
	var digest [DigestLen]byte
	copy(digest[:], out[:])
	return digest
}
