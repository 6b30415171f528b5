package auth

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"

	"accounts/internal/domain/service"
	"accounts/internal/errors"
)

// resetTokenBytes is the entropy of a reset token before hex encoding.
const resetTokenBytes = 20

var ten = big.NewInt(10)

type randomSecrets struct{}

// NewSecretGenerator returns a SecretGenerator backed by crypto/rand.
func NewSecretGenerator() service.SecretGenerator {
	return randomSecrets{}
}

// RandomToken returns 20 random bytes as 40 hex characters.
func (randomSecrets) RandomToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

// RandomDigits returns n uniformly distributed decimal digits; leading zeros are kept.
func (randomSecrets) RandomDigits(n int) (string, error) {
	if n <= 0 {
		return "", errors.Errorf("invalid digit count %d", n)
	}

	var sb strings.Builder
	sb.Grow(n)
	for range n {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "read random digit")
		}
		sb.WriteByte(byte('0' + d.Int64()))
	}

	return sb.String(), nil
}
