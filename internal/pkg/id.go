package pkg

import (
	"crypto/rand"
	"math/big"
)

// GenerateGameID - generates an identifier used to tell games of one session apart in logs.
func GenerateGameID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(99999999))
	if err != nil {
		return ""
	}
	return n.String()
}
