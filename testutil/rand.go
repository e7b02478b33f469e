package testutil

import (
	"crypto/rand"
	"errors"
)

const alphaNumCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomAlphaNum returns a random alphanumeric string of the given length.
// The slight modulo bias is irrelevant for test fixtures.
func RandomAlphaNum(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("length must be greater than 0")
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = alphaNumCharset[int(b)%len(alphaNumCharset)]
	}

	return string(buf), nil
}
