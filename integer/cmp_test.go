package integer

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCmp(t *testing.T) {
	type TC struct {
		x, y string
		cmp  int
		abs  int
	}

	tcs := []TC{
		{x: "7654321", y: "7891234", cmp: -1, abs: -1},
		{x: "7891234", y: "7654321", cmp: 1, abs: 1},
		{x: "0", y: "0", cmp: 0, abs: 0},
		{x: "0", y: "-1", cmp: 1, abs: -1},
		{x: "-1", y: "0", cmp: -1, abs: 1},
		{x: "-5", y: "-5", cmp: 0, abs: 0},
		{x: "-5", y: "-6", cmp: 1, abs: -1},
		{x: "-6", y: "-5", cmp: -1, abs: 1},
		{x: "-100", y: "99", cmp: -1, abs: 1},
		{x: "100", y: "-99", cmp: 1, abs: 1},
		{x: "12345678901234567890", y: "12345678901234567891", cmp: -1, abs: -1},
		{x: "-12345678901234567890", y: "12345678901234567890", cmp: -1, abs: 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s<=>%s", i, tc.x, tc.y), func(t *testing.T) {
			x, y := MustParse(tc.x), MustParse(tc.y)

			require.Equal(t, tc.cmp, x.Cmp(y))
			require.Equal(t, tc.abs, x.CmpAbs(y))

			require.Equal(t, tc.cmp == 0, x.Equal(y))
			require.Equal(t, tc.cmp < 0, x.Less(y))
			require.Equal(t, tc.cmp <= 0, x.LessEqual(y))
			require.Equal(t, tc.cmp > 0, x.Greater(y))
			require.Equal(t, tc.cmp >= 0, x.GreaterEqual(y))
		})
	}

	t.Run("oracle", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))

		for i := 0; i < 1000; i++ {
			x, bx := randPair(t, r, 4)
			y, by := randPair(t, r, 4)

			require.Equal(t, bx.Cmp(by), x.Cmp(y), "%s <=> %s", bx, by)
			require.Equal(t, bx.CmpAbs(by), x.CmpAbs(y), "|%s| <=> |%s|", bx, by)
		}
	})
}
