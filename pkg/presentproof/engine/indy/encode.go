package indy

import (
	"crypto/sha256"
	"math"
	"math/big"
	"strconv"
)

// EncodeValue computes the integer encoding credential issuers use for a raw attribute value.
// Values that fit in an int32 are kept, everything else is the decimal form of its sha256 digest.
func EncodeValue(raw string) string {
	i, err := strconv.Atoi(raw)
	if err == nil && (i <= math.MaxInt32 && i >= math.MinInt32) {
		return raw
	}

	return toEncodedNumber(raw)
}

func toEncodedNumber(raw string) string {
	hasher := sha256.New()
	_, _ = hasher.Write([]byte(raw))

	i := new(big.Int)
	i.SetBytes(hasher.Sum(nil))

	return i.String()
}
