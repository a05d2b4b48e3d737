package parser

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// decodeNumber interprets the raw text of a number token (as produced by
// lexer.scanNumber) as an arbitrary-precision decimal. Radix-prefixed forms
// (0x, 0o, 0b) are parsed as a big integer and embedded in the decimal
// type; everything else is parsed as decimal text directly.
func decodeNumber(raw string) (decimal.Decimal, bool) {
	sign := ""
	rest := raw
	if len(rest) > 0 && (rest[0] == charPlus || rest[0] == charMinus) {
		if rest[0] == charMinus {
			sign = "-"
		}
		rest = rest[1:]
	}

	if radix, digits, ok := splitRadixPrefix(rest); ok {
		n := new(big.Int)
		if _, ok := n.SetString(digits, radix); !ok {
			return decimal.Decimal{}, false
		}
		d := decimal.NewFromBigInt(n, 0)
		if sign == "-" {
			d = d.Neg()
		}
		return d, true
	}

	d, err := decimal.NewFromString(sign + normalizeDecimalText(rest))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// splitRadixPrefix recognizes a 0x/0o/0b prefix and returns the radix and
// the digit text following it.
func splitRadixPrefix(s string) (radix int, digits string, ok bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, "", false
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:], true
	case 'o', 'O':
		return 8, s[2:], true
	case 'b', 'B':
		return 2, s[2:], true
	default:
		return 0, "", false
	}
}

// normalizeDecimalText fills in the digit the grammar allows to be omitted
// on either side of the decimal point (".5" and "5." are both valid
// per spec.md's number grammar) so the underlying decimal parser, which
// expects at least one digit on each side it sees, always gets one.
func normalizeDecimalText(s string) string {
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa, exp := s[:i], s[i:]
		if strings.HasSuffix(mantissa, ".") {
			mantissa += "0"
		}
		return mantissa + exp
	}
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
