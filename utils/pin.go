package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GeneratePin returns a uniformly random 6-digit PIN in [100000, 999999].
func GeneratePin() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate PIN: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
