package pkg

import (
	"math/rand"
	"strings"
)

// referral codes skip ambiguous characters (0/O, 1/I/L)
const referralAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

func RandReferralCode(n int) string {
	var builder strings.Builder
	builder.Grow(n)

	for range n {
		letter := referralAlphabet[rand.Intn(len(referralAlphabet))] //nolint:gosec
		builder.WriteByte(letter)
	}

	return builder.String()
}
