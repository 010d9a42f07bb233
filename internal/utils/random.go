package utils

import (
	"crypto/rand"
	"math/big"
)

const alphabetics = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const alphanumerics = alphabetics + "0123456789"
const digits = "0123456789"

// RandomAlphanumeric returns a random alphanumeric string of length n.
// Sample entities get randomly suffixed names so repeated concept runs
// don't collide on QBO's name-uniqueness constraints.
func RandomAlphanumeric(n int) string {
	return randomFrom(alphanumerics, n)
}

// RandomAlphabetic returns a random letters-only string of length n.
func RandomAlphabetic(n int) string {
	return randomFrom(alphabetics, n)
}

// RandomNumeric returns a random digit string of length n.
func RandomNumeric(n int) string {
	return randomFrom(digits, n)
}

func randomFrom(charset string, n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(charset)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken;
			// sample-name suffixes don't warrant surfacing that.
			b[i] = charset[0]
			continue
		}
		b[i] = charset[idx.Int64()]
	}
	return string(b)
}
