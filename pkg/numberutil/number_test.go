package numberutil

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumBig(t *testing.T) {
	one, _ := ParseUnits("1.0", 18)
	oneHalf, _ := ParseUnits("1.5", 18)
	half, _ := ParseUnits("0.5", 18)

	total := SumBig([]*big.Int{one, oneHalf, half})
	three, _ := ParseUnits("3", 18)
	require.Equal(t, 0, total.Cmp(three))

	// Order independence.
	total2 := SumBig([]*big.Int{half, one, oneHalf})
	require.Equal(t, 0, total.Cmp(total2))
}

func TestBasisPoints(t *testing.T) {
	three, _ := ParseUnits("3", 18)
	fee := BasisPoints(three, 300)
	expected, _ := ParseUnits("0.09", 18)
	require.Equal(t, 0, fee.Cmp(expected))

	// Non-exact division must floor, not round. 33*300/10000 = 0.99 -> 0.
	require.Equal(t, int64(0), BasisPoints(big.NewInt(33), 300).Int64())

	// 1 wei total also floors to zero fee.
	require.Equal(t, int64(0), BasisPoints(big.NewInt(1), 300).Int64())

	// 34*300/10000 = 1.02 -> 1.
	require.Equal(t, int64(1), BasisPoints(big.NewInt(34), 300).Int64())
}

func TestFormatUnits(t *testing.T) {
	amount, _ := new(big.Int).SetString("1500000000000000000", 10)
	require.Equal(t, "1.5", FormatUnits(amount, 18))
	require.Equal(t, "0", FormatUnits(big.NewInt(0), 18))
	require.Equal(t, "0.000000000000000001", FormatUnits(big.NewInt(1), 18))
	require.Equal(t, "2", FormatUnits(big.NewInt(2_000_000), 6))
}

func TestParseUnits(t *testing.T) {
	amount, err := ParseUnits("1.5", 18)
	require.NoError(t, err)
	expected, _ := new(big.Int).SetString("1500000000000000000", 10)
	require.Equal(t, 0, amount.Cmp(expected))

	_, err = ParseUnits("1.0000000000000000001", 18)
	require.Error(t, err)

	_, err = ParseUnits("", 18)
	require.Error(t, err)

	_, err = ParseUnits("abc", 18)
	require.Error(t, err)

	// Round trip.
	back, err := ParseUnits(FormatUnits(expected, 18), 18)
	require.NoError(t, err)
	require.Equal(t, 0, back.Cmp(expected))
}
