package bcrypt

import "fmt"

// Hashed is a decoded bcrypt hash. It is the "decoded" stage of a
// verification: everything needed to recompute the digest except the
// password.
type Hashed struct {
	Version Version
	Cost    int
	Salt    [SaltLen]byte
	Digest  [DigestLen]byte
}

// Decode parses an encoded hash. All structural checks run before any
// cryptographic work; every failure matches [ErrMalformedHash].
func Decode(encoded string) (*Hashed, error) {
	if len(encoded) != EncodedLen {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrMalformedHash, len(encoded), EncodedLen)
	}
	if encoded[0] != '$' || encoded[3] != '$' || encoded[6] != '$' {
		return nil, fmt.Errorf("%w: missing '$' separator", ErrMalformedHash)
	}

	h := new(Hashed)
	v, err := ParseVersion(encoded[1:3])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	h.Version = v

	d1, d2 := encoded[4], encoded[5]
	if d1 < '0' || d1 > '9' || d2 < '0' || d2 > '9' {
		return nil, fmt.Errorf("%w: cost %q is not two decimal digits", ErrMalformedHash, encoded[4:6])
	}
	h.Cost = int(d1-'0')*10 + int(d2-'0')
	if err := checkCost(h.Cost); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	rest := encoded[7:]
	salt, err := decodeField("salt", rest[:encodedSaltLen], SaltLen)
	if err != nil {
		return nil, err
	}
	digest, err := decodeField("digest", rest[encodedSaltLen:], DigestLen)
	if err != nil {
		return nil, err
	}
	copy(h.Salt[:], salt)
	copy(h.Digest[:], digest)
	return h, nil
}

// Encode renders h in the standard 60-character layout. It is the exact
// inverse of [Decode]. Encode panics if h.Version is not a supported tag or
// h.Cost lies outside [MinCost, MaxCost]; such a Hashed has no valid
// encoding.
func (h *Hashed) Encode() string {
	if !h.Version.valid() || checkCost(h.Cost) != nil {
		panic(fmt.Sprintf("bcrypt: cannot encode version %q with cost %d", string(h.Version), h.Cost))
	}
	b := make([]byte, 0, EncodedLen)
	b = append(b, '$')
	b = append(b, string(h.Version)...)
	b = append(b, '$', '0'+byte(h.Cost/10), '0'+byte(h.Cost%10), '$')
	b = encoding.AppendEncode(b, h.Salt[:])
	b = encoding.AppendEncode(b, h.Digest[:])
	return string(b)
}

func (h *Hashed) String() string { return h.Encode() }

// Cost returns the work factor recorded in an encoded hash.
func Cost(encoded string) (int, error) {
	h, err := Decode(encoded)
	if err != nil {
		return 0, err
	}
	return h.Cost, nil
}
