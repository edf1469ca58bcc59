// Package secret generates random credentials.
//
// The staging OS is only ever reached over SSH with a root password that is
// generated here, used for one provisioning run, and discarded with the
// staging disk.
package secret

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Password returns a random password of length n drawn from a 62-character
// alphanumeric alphabet.
func Password(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", n)
	}

	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read randomness: %w", err)
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}
