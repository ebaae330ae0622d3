package bcrypt

import (
	"fmt"
	"io"

	"github.com/hasbyte1/go-bcrypt/blowfish"
)

// stage is a point in the life of a single hash or verify call.
type stage uint8

const (
	stageUnconfigured stage = iota
	stageSaltGenerated
	stageKeyScheduled
	stageDigestComputed
	stageEncoded
	// stageDecoded is where verification starts: salt, cost and version
	// come from a stored hash instead of from the caller.
	stageDecoded
)

var stageNames = [...]string{
	stageUnconfigured:   "unconfigured",
	stageSaltGenerated:  "salt-generated",
	stageKeyScheduled:   "key-scheduled",
	stageDigestComputed: "digest-computed",
	stageEncoded:        "encoded",
	stageDecoded:        "decoded",
}

func (s stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// computation carries one invocation through its stages. It is never shared
// between calls, so it needs no locking.
type computation struct {
	stage   stage
	version Version
	cost    int
	salt    [SaltLen]byte
	cipher  *blowfish.Cipher
	digest  [DigestLen]byte
}

// newComputation validates cost before anything else happens.
func newComputation(v Version, cost int) (*computation, error) {
	if err := checkCost(cost); err != nil {
		return nil, err
	}
	return &computation{stage: stageUnconfigured, version: v, cost: cost}, nil
}

// resume starts a verification from a decoded hash.
func resume(h *Hashed) *computation {
	return &computation{stage: stageDecoded, version: h.Version, cost: h.Cost, salt: h.Salt}
}

// expect panics unless c is in one of the given stages. Steps run out of
// order are a bug in this package, not a caller error.
func (c *computation) expect(step string, from ...stage) {
	for _, s := range from {
		if c.stage == s {
			return
		}
	}
	panic(fmt.Sprintf("bcrypt: %s called in %s stage", step, c.stage))
}

func (c *computation) generateSalt(r io.Reader) error {
	c.expect("generateSalt", stageUnconfigured)
	if _, err := io.ReadFull(r, c.salt[:]); err != nil {
		return fmt.Errorf("bcrypt: generate salt: %w", err)
	}
	c.stage = stageSaltGenerated
	return nil
}

func (c *computation) useSalt(salt []byte) error {
	c.expect("useSalt", stageUnconfigured)
	if len(salt) != SaltLen {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidSaltLength, len(salt))
	}
	copy(c.salt[:], salt)
	c.stage = stageSaltGenerated
	return nil
}

func (c *computation) scheduleKey(password []byte) error {
	c.expect("scheduleKey", stageSaltGenerated, stageDecoded)
	if err := checkPassword(password); err != nil {
		return err
	}
	c.cipher = expensiveKeySetup(password, c.salt[:], c.cost)
	c.stage = stageKeyScheduled
	return nil
}

func (c *computation) computeDigest() {
	c.expect("computeDigest", stageKeyScheduled)
	c.digest = encryptMagic(c.cipher)
	c.cipher = nil
	c.stage = stageDigestComputed
}

func (c *computation) encode() string {
	c.expect("encode", stageDigestComputed)
	h := Hashed{Version: c.version, Cost: c.cost, Salt: c.salt, Digest: c.digest}
	c.stage = stageEncoded
	return h.Encode()
}
