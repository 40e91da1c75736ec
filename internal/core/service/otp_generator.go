package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

// GenerateCode returns a fixed-width numeric login code drawn from
// crypto/rand. The width is domain.CodeLength; leading zeros are preserved.
func GenerateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < domain.CodeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", domain.CodeLength, n), nil
}
