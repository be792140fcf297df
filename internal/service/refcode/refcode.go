// Package refcode generates referral codes affiliates are identified by.
package refcode

import (
	"crypto/rand"
	"fmt"
)

const Length = 8

// charset skips 0/O and 1/I so codes stay readable when dictated.
const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Generate returns a random referral code of Length characters. Uniqueness is
// the caller's concern.
func Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating referral code: %s", err.Error())
	}
	for i, b := range buf {
		buf[i] = charset[int(b)%len(charset)]
	}
	return string(buf), nil
}
