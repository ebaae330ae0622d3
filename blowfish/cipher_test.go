package blowfish_test

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"testing"

	xblowfish "golang.org/x/crypto/blowfish"

	"github.com/hasbyte1/go-bcrypt/blowfish"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// ──────────────────────────────────────────────────────────────────────────────
// Known-answer vectors (Eric Young's reference set)
// ──────────────────────────────────────────────────────────────────────────────

var ecbVectors = []struct {
	key, plain, cipher string
}{
	{"0000000000000000", "0000000000000000", "4ef997456198dd78"},
	{"ffffffffffffffff", "ffffffffffffffff", "51866fd5b85ecb8a"},
	{"3000000000000000", "1000000000000001", "7d856f9a613063f2"},
	{"0123456789abcdef", "1111111111111111", "61f9c3802281b096"},
	{"fedcba9876543210", "0123456789abcdef", "0aceab0fc6a0a28d"},
}

func TestCipher_KnownAnswer(t *testing.T) {
	for _, v := range ecbVectors {
		t.Run(v.key, func(t *testing.T) {
			c, err := blowfish.NewCipher(mustHex(t, v.key))
			if err != nil {
				t.Fatalf("NewCipher: %v", err)
			}
			plain, want := mustHex(t, v.plain), mustHex(t, v.cipher)

			got := make([]byte, blowfish.BlockSize)
			c.Encrypt(got, plain)
			if !bytes.Equal(got, want) {
				t.Fatalf("Encrypt = %x, want %x", got, want)
			}

			c.Decrypt(got, got)
			if !bytes.Equal(got, plain) {
				t.Fatalf("Decrypt = %x, want %x", got, plain)
			}
		})
	}
}

func TestCipher_EncryptBlockMatchesEncrypt(t *testing.T) {
	c, _ := blowfish.NewCipher([]byte("word-level"))
	src := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x23, 0x45, 0x67}

	l, r := c.EncryptBlock(0xdeadbeef, 0x01234567)
	dst := make([]byte, 8)
	c.Encrypt(dst, src)

	want := []byte{byte(l >> 24), byte(l >> 16), byte(l >> 8), byte(l), byte(r >> 24), byte(r >> 16), byte(r >> 8), byte(r)}
	if !bytes.Equal(dst, want) {
		t.Fatalf("Encrypt = %x, EncryptBlock = %x", dst, want)
	}
}

func TestCipher_DecryptBlockInvertsEncryptBlock(t *testing.T) {
	c, _ := blowfish.NewSaltedCipher([]byte("password\x00"), []byte("0123456789abcdef"))
	for _, in := range [][2]uint32{{0, 0}, {1, 2}, {0xffffffff, 0}, {0x4f727068, 0x65616e42}} {
		l, r := c.EncryptBlock(in[0], in[1])
		l, r = c.DecryptBlock(l, r)
		if l != in[0] || r != in[1] {
			t.Errorf("round trip of %08x%08x gave %08x%08x", in[0], in[1], l, r)
		}
	}
}

func TestCipher_EncryptDoesNotMutateState(t *testing.T) {
	c, _ := blowfish.NewCipher([]byte("stable"))
	l1, r1 := c.EncryptBlock(7, 9)
	for i := 0; i < 100; i++ {
		c.EncryptBlock(uint32(i), uint32(i*3))
	}
	l2, r2 := c.EncryptBlock(7, 9)
	if l1 != l2 || r1 != r2 {
		t.Fatal("EncryptBlock changed the cipher state")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Key sizes
// ──────────────────────────────────────────────────────────────────────────────

func TestNewCipher_KeySize(t *testing.T) {
	for _, n := range []int{0, blowfish.MaxKeySize + 1, 100} {
		_, err := blowfish.NewCipher(make([]byte, n))
		var kse blowfish.KeySizeError
		if !errors.As(err, &kse) || int(kse) != n {
			t.Errorf("len %d: expected KeySizeError(%d), got %v", n, n, err)
		}
	}
	for _, n := range []int{1, 8, blowfish.MaxKeySize} {
		if _, err := blowfish.NewCipher(make([]byte, n)); err != nil {
			t.Errorf("len %d: unexpected error %v", n, err)
		}
	}
}

func TestNewSaltedCipher_EmptyKey(t *testing.T) {
	_, err := blowfish.NewSaltedCipher(nil, []byte("salt"))
	var kse blowfish.KeySizeError
	if !errors.As(err, &kse) {
		t.Fatalf("expected KeySizeError, got %v", err)
	}
}

func TestExpandKey_EmptyKeyPanics(t *testing.T) {
	c, _ := blowfish.NewCipher([]byte("k"))
	defer func() {
		if recover() == nil {
			t.Fatal("ExpandKey(nil) did not panic")
		}
	}()
	c.ExpandKey(nil)
}

func TestCipher_BlockSize(t *testing.T) {
	c, _ := blowfish.NewCipher([]byte("k"))
	if c.BlockSize() != 8 {
		t.Fatalf("BlockSize = %d", c.BlockSize())
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Equivalence with golang.org/x/crypto/blowfish
// ──────────────────────────────────────────────────────────────────────────────

type blockEncrypter interface {
	Encrypt(dst, src []byte)
}

func assertSameBlocks(t *testing.T, ours, ref blockEncrypter) {
	t.Helper()
	src := []byte("OrpheanBeholderScryDoubt")
	a, b := make([]byte, len(src)), make([]byte, len(src))
	for i := 0; i < len(src); i += 8 {
		ours.Encrypt(a[i:], src[i:])
		ref.Encrypt(b[i:], src[i:])
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("ciphertext differs from x/crypto/blowfish:\n ours %x\n ref  %x", a, b)
	}
}

func TestNewCipher_MatchesReference(t *testing.T) {
	for _, key := range []string{"k", "Ala ma kota", "0123456789abcdef0123456789abcdef0123456789abcdef01234567"} {
		ours, err := blowfish.NewCipher([]byte(key))
		if err != nil {
			t.Fatalf("NewCipher(%q): %v", key, err)
		}
		ref, err := xblowfish.NewCipher([]byte(key))
		if err != nil {
			t.Fatalf("reference NewCipher(%q): %v", key, err)
		}
		assertSameBlocks(t, ours, ref)
	}
}

func TestSaltedSchedule_MatchesReference(t *testing.T) {
	cases := []struct {
		name      string
		key, salt []byte
	}{
		{"short", []byte("pw\x00"), []byte("0123456789abcdef")},
		{"nul only", []byte{0}, bytes.Repeat([]byte{0xff}, 16)},
		{"73 bytes", append(bytes.Repeat([]byte("a"), 72), 0), []byte("saltsaltsaltsalt")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ours, err := blowfish.NewSaltedCipher(tc.key, tc.salt)
			if err != nil {
				t.Fatalf("NewSaltedCipher: %v", err)
			}
			ref, err := xblowfish.NewSaltedCipher(tc.key, tc.salt)
			if err != nil {
				t.Fatalf("reference NewSaltedCipher: %v", err)
			}
			assertSameBlocks(t, ours, ref)

			for i := 0; i < 8; i++ {
				ours.ExpandKey(tc.key)
				xblowfish.ExpandKey(tc.key, ref)
				ours.ExpandKey(tc.salt)
				xblowfish.ExpandKey(tc.salt, ref)
			}
			assertSameBlocks(t, ours, ref)
		})
	}
}

func TestNewSaltedCipher_EmptySaltIsStandardSchedule(t *testing.T) {
	key := []byte("plain schedule")
	a, _ := blowfish.NewSaltedCipher(key, nil)
	b, _ := blowfish.NewCipher(key)
	assertSameBlocks(t, a, b)
}

func TestEncryptBlock_MatchesReferenceWords(t *testing.T) {
	key, salt := []byte("word pairs\x00"), []byte("saltsaltsaltsalt")
	ours, _ := blowfish.NewSaltedCipher(key, salt)
	ref, _ := xblowfish.NewSaltedCipher(key, salt)
	ours.ExpandKey(key)
	xblowfish.ExpandKey(key, ref)

	for _, in := range [][2]uint32{{0x4f727068, 0x65616e42}, {0, 0}, {0xffffffff, 0x80000001}} {
		l, r := ours.EncryptBlock(in[0], in[1])

		var b [8]byte
		binary.BigEndian.PutUint32(b[0:4], in[0])
		binary.BigEndian.PutUint32(b[4:8], in[1])
		ref.Encrypt(b[:], b[:])
		wl, wr := binary.BigEndian.Uint32(b[0:4]), binary.BigEndian.Uint32(b[4:8])

		if l != wl || r != wr {
			t.Errorf("EncryptBlock(%08x, %08x) = %08x %08x, want %08x %08x", in[0], in[1], l, r, wl, wr)
		}
	}
}
