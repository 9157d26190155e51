package service

import (
	"crypto/rand"
	"fmt"
)

const (
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceLength   = 12
)

// newReferenceCode generates a 12-character uppercase alphanumeric booking
// reference. Collisions are possible and handled by the unique _id index plus
// regenerate-and-retry at commit time.
func newReferenceCode() (string, error) {
	buf := make([]byte, referenceLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reference code: %w", err)
	}

	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}

	return string(buf), nil
}
