package numberutil

import (
	"fmt"
	"math/big"
	"strings"
)

func AbsInt64(a int64) int64 {
	if a < 0 {
		return -a
	}

	return a
}

// SumBig returns the sum of the given amounts. Amounts are integer base
// units; the sum never goes through floating point.
func SumBig(amounts []*big.Int) *big.Int {
	total := new(big.Int)
	for _, a := range amounts {
		total.Add(total, a)
	}

	return total
}

// BasisPoints computes amount*bps/10000 with integer floor division.
func BasisPoints(amount *big.Int, bps int64) *big.Int {
	fee := new(big.Int).Mul(amount, big.NewInt(bps))
	return fee.Div(fee, big.NewInt(10000))
}

// FormatUnits renders an integer base-unit amount as a decimal string with
// the given number of decimals, trimming trailing zeros. All arithmetic stays
// in big.Int.
func FormatUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(amount, divisor, new(big.Int))

	sign := ""
	if whole.Sign() < 0 || frac.Sign() < 0 {
		sign = "-"
		whole.Abs(whole)
		frac.Abs(frac)
	}

	if frac.Sign() == 0 {
		return sign + whole.String()
	}

	fracStr := strings.TrimRight(fmt.Sprintf("%0*s", decimals, frac.String()), "0")
	return fmt.Sprintf("%s%s.%s", sign, whole.String(), fracStr)
}

// ParseUnits parses a decimal string into integer base units with the given
// number of decimals. It rejects inputs with more fractional digits than the
// unit can carry instead of rounding them.
func ParseUnits(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}

	if len(frac) > decimals {
		return nil, fmt.Errorf("amount %s has more than %d decimals", s, decimals)
	}

	frac += strings.Repeat("0", decimals-len(frac))
	if whole == "" {
		whole = "0"
	}

	combined := whole + frac
	amount, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %s", s)
	}

	return amount, nil
}
