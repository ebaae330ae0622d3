package blowfish

import "strconv"

// KeySizeError is returned when a key is empty or longer than the schedule
// accepts. Its value is the offending key length in bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "blowfish: invalid key size " + strconv.Itoa(int(k))
}
