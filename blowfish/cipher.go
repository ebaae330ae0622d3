package blowfish

import (
	"crypto/cipher"
	"encoding/binary"

	"golang.org/x/crypto/blowfish"
)

const (
	// BlockSize is the Blowfish block size in bytes.
	BlockSize = blowfish.BlockSize

	// MaxKeySize is the longest key accepted by the standard schedule
	// ([NewCipher]). The salted schedule accepts longer keys; only the first
	// 72 bytes influence the P-array.
	MaxKeySize = 56
)

// Cipher is a Blowfish instance keyed with a particular key. The schedule
// and the Feistel network are those of golang.org/x/crypto/blowfish; Cipher
// adds the word-level block interface bcrypt runs its magic text through.
type Cipher struct {
	c *blowfish.Cipher
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher returns a Cipher keyed with the standard Blowfish schedule.
// The key must be between 1 and [MaxKeySize] bytes.
func NewCipher(key []byte) (*Cipher, error) {
	if k := len(key); k < 1 || k > MaxKeySize {
		return nil, KeySizeError(k)
	}
	c, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{c: c}, nil
}

// NewSaltedCipher returns a Cipher whose initial schedule mixes salt into
// every P-array and S-box word, the first step of bcrypt's expensive key
// setup. An empty salt degrades to the standard schedule. The key must not
// be empty; keys longer than 72 bytes are cycled over the first 72 bytes only.
func NewSaltedCipher(key, salt []byte) (*Cipher, error) {
	if len(key) < 1 {
		return nil, KeySizeError(0)
	}
	if len(salt) == 0 {
		return NewCipher(key)
	}
	c, err := blowfish.NewSaltedCipher(key, salt)
	if err != nil {
		return nil, err
	}
	return &Cipher{c: c}, nil
}

// BlockSize returns the Blowfish block size, 8 bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// EncryptBlock runs the 16-round Feistel network over the 64-bit block
// (l, r) and returns the encrypted halves. It does not modify c.
func (c *Cipher) EncryptBlock(l, r uint32) (uint32, uint32) {
	var b [BlockSize]byte
	binary.BigEndian.PutUint32(b[0:4], l)
	binary.BigEndian.PutUint32(b[4:8], r)
	c.c.Encrypt(b[:], b[:])
	return binary.BigEndian.Uint32(b[0:4]), binary.BigEndian.Uint32(b[4:8])
}

// DecryptBlock is the inverse of [Cipher.EncryptBlock].
func (c *Cipher) DecryptBlock(l, r uint32) (uint32, uint32) {
	var b [BlockSize]byte
	binary.BigEndian.PutUint32(b[0:4], l)
	binary.BigEndian.PutUint32(b[4:8], r)
	c.c.Decrypt(b[:], b[:])
	return binary.BigEndian.Uint32(b[0:4]), binary.BigEndian.Uint32(b[4:8])
}

// Encrypt encrypts the 8-byte big-endian block in src into dst.
// dst and src may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) { c.c.Encrypt(dst, src) }

// Decrypt decrypts the 8-byte big-endian block in src into dst.
// dst and src may overlap entirely.
func (c *Cipher) Decrypt(dst, src []byte) { c.c.Decrypt(dst, src) }
