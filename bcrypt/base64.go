package bcrypt

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// alphabet is bcrypt's base-64 alphabet. It differs from RFC 4648 in order
// and in using '.' and '/' as the first two symbols.
const alphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// encoding is strict so that unused trailing bits must be zero: each byte
// string has exactly one encoding, and any changed character either changes
// the decoded bytes or fails to decode.
var encoding = base64.NewEncoding(alphabet).WithPadding(base64.NoPadding).Strict()

// decodeField decodes a fixed-width salt or digest field holding n bytes.
func decodeField(name, s string, n int) ([]byte, error) {
	if want := encoding.EncodedLen(n); len(s) != want {
		return nil, fmt.Errorf("%w: %s field is %d characters, want %d", ErrMalformedHash, name, len(s), want)
	}
	// The standard decoder skips '\r' and '\n'; reject anything outside
	// the alphabet up front instead.
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return nil, fmt.Errorf("%w: invalid character %q in %s", ErrMalformedHash, s[i], name)
		}
	}
	b, err := encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedHash, name, err)
	}
	if len(b) != n {
		return nil, fmt.Errorf("%w: %s decodes to %d bytes, want %d", ErrMalformedHash, name, len(b), n)
	}
	return b, nil
}
