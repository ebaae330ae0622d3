package blowfish_test

import (
	"testing"

	"github.com/hasbyte1/go-bcrypt/blowfish"
)

func BenchmarkEncryptBlock(b *testing.B) {
	c, _ := blowfish.NewCipher([]byte("bench-key"))
	var l, r uint32
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l, r = c.EncryptBlock(l, r)
	}
}

// BenchmarkExpandKey measures one round of the bcrypt cost loop (two
// expansions), the unit that doubles with every cost increment.
func BenchmarkExpandKey(b *testing.B) {
	key := []byte("bench-password\x00")
	salt := []byte("0123456789abcdef")
	c, _ := blowfish.NewSaltedCipher(key, salt)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ExpandKey(key)
		c.ExpandKey(salt)
	}
}
