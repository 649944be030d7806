package utils

import (
	"crypto/rand"
	"math/big"
)

// Alphabet for session codes; ambiguous characters (0/O, 1/I) are left out
// so codes survive being read aloud.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const SessionCodeLength = 6

// NewSessionCode generates a random join code. Uniqueness is not guaranteed
// here; the registry re-checks before insert.
func NewSessionCode() string {
	buf := make([]byte, SessionCodeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf)
}
