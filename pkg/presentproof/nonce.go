package presentproof

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

const (
	minNonceLength = 28
	maxNonceLength = 36
)

//go:generate mockery -name=NonceOracle
type NonceOracle interface {
	Nonce() (string, error)
}

// NumericOracle produces decimal nonces of minNonceLength to maxNonceLength-1 digits.
type NumericOracle struct {
	rand io.Reader
}

func NewNumericOracle() *NumericOracle {
	return &NumericOracle{rand: rand.Reader}
}

func (r *NumericOracle) Nonce() (string, error) {
	span, err := rand.Int(r.rand, big.NewInt(maxNonceLength-minNonceLength))
	if err != nil {
		return "", errors.Wrap(err, "unable to pick nonce length")
	}
	length := minNonceLength + span.Int64()

	ten := big.NewInt(10)
	low := new(big.Int).Exp(ten, big.NewInt(length-1), nil)
	high := new(big.Int).Exp(ten, big.NewInt(length), nil)

	n, err := rand.Int(r.rand, new(big.Int).Sub(high, low))
	if err != nil {
		return "", errors.Wrap(err, "unable to generate nonce")
	}

	return n.Add(n, low).String(), nil
}
