package randomgenerator

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"

	"github.com/natnael-haile/hireflow/internal/domain/contract"
)

type RandomGenerator struct{}

func NewRandomGenerator() contract.IRandomGenerator {
	return &RandomGenerator{}
}

var _ (contract.IRandomGenerator) = (*RandomGenerator)(nil)

func (rg *RandomGenerator) GenerateRandomToken(n int) (string, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)

	if err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	token := base64.RawURLEncoding.EncodeToString(b)

	return token, nil
}

// codeAlphabet omits 0/O and 1/I so codes read unambiguously.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateCode produces a human-readable code like PRJ-7XK2MQ.
func (rg *RandomGenerator) GenerateCode(prefix string, n int) (string, error) {
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}
		out[i] = codeAlphabet[idx.Int64()]
	}
	return prefix + string(out), nil
}
