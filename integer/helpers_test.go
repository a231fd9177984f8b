package integer

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// randDigits returns a random numeral of 1 to n digits with a random sign.
// Leading zeros are allowed.
func randDigits(r *rand.Rand, n int) string {
	sb := &strings.Builder{}

	if r.Intn(2) == 0 {
		sb.WriteByte('-')
	}

	l := r.Intn(n) + 1
	for i := 0; i < l; i++ {
		sb.WriteByte(byte('0' + r.Intn(10)))
	}

	return sb.String()
}

// randPair returns the same random value as an Int and a big.Int.
func randPair(t testing.TB, r *rand.Rand, n int) (*Int, *big.Int) {
	text := randDigits(r, n)

	x, err := Parse(text)
	require.NoError(t, err, text)

	b, ok := new(big.Int).SetString(text, 10)
	require.True(t, ok, text)

	return x, b
}

// requireBig fails unless x renders the same as want and is canonical.
func requireBig(t testing.TB, want *big.Int, x *Int, msgAndArgs ...interface{}) {
	t.Helper()

	require.Equal(t, want.String(), x.String(), msgAndArgs...)
	requireCanonical(t, x)
}

// requireCanonical fails if x has leading zeros, an out of range digit or a
// negative zero.
func requireCanonical(t testing.TB, x *Int) {
	t.Helper()

	a := x.mag()
	require.NotEmpty(t, a, spew.Sdump(x))

	for _, d := range a {
		require.LessOrEqual(t, d, byte(9), spew.Sdump(x))
	}

	if len(a) > 1 {
		require.NotEqual(t, byte(0), a[len(a)-1], spew.Sdump(x))
	}

	if a.isZero() {
		require.False(t, x.neg, spew.Sdump(x))
	}
}
