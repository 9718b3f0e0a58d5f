package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateCode returns a random numeric code of the given length, used for
// email verification and password resets.
func GenerateCode(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}
