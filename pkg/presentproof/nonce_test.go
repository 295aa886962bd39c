package presentproof

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericOracle_Nonce(t *testing.T) {
	t.Run("length and digits", func(t *testing.T) {
		oracle := NewNumericOracle()
		seen := map[string]bool{}
		for i := 0; i < 200; i++ {
			nonce, err := oracle.Nonce()
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(nonce), 28)
			require.Less(t, len(nonce), 36)
			require.NotEqual(t, byte('0'), nonce[0])
			for _, c := range nonce {
				require.True(t, c >= '0' && c <= '9', nonce)
			}
			require.False(t, seen[nonce])
			seen[nonce] = true
		}
	})

	t.Run("entropy failure", func(t *testing.T) {
		oracle := &NumericOracle{rand: bytes.NewReader(nil)}
		_, err := oracle.Nonce()
		require.Error(t, err)
	})
}
