package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldwave/sheetcalc/address"
	"github.com/foldwave/sheetcalc/formula"
	"github.com/foldwave/sheetcalc/value"
)

func mustParse(t *testing.T, input string) formula.Formula {
	t.Helper()
	f, err := Parse(input)
	require.NoError(t, err)
	return f
}

func TestEmptyInputIsLiteralEmpty(t *testing.T) {
	f := mustParse(t, "")
	assert.True(t, f.Evaluate(nil).IsEmpty())

	f = mustParse(t, "   ")
	assert.True(t, f.Evaluate(nil).IsEmpty())
}

func TestPlainNumberIsLiteral(t *testing.T) {
	f := mustParse(t, "1")
	lit, ok := f.(formula.Literal)
	require.True(t, ok)
	assert.True(t, lit.Value.Equal(value.NewNumber(decimal.RequireFromString("1"))))
}

func TestPlainQuotedStringIsLiteral(t *testing.T) {
	f := mustParse(t, `"foo"`)
	lit, ok := f.(formula.Literal)
	require.True(t, ok)
	assert.True(t, lit.Value.Equal(value.NewString("foo")))
}

func TestPlainUnquotedWordIsParseError(t *testing.T) {
	_, err := Parse("hello")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, InvalidFormula, pe.Kind)
}

func TestFormulaLiteralNumber(t *testing.T) {
	f := mustParse(t, "=1")
	assert.True(t, f.Evaluate(nil).Equal(value.NewNumber(decimal.RequireFromString("1"))))
}

func TestFormulaReference(t *testing.T) {
	f := mustParse(t, "=A1")
	expr, ok := f.(formula.Expression)
	require.True(t, ok)
	ref, ok := expr.Expr.(formula.Reference)
	require.True(t, ok)
	assert.Equal(t, address.Cell{Column: 1, Row: 1}, ref.Addr)
}

func TestFormulaReferenceCaseInsensitiveAndWhitespace(t *testing.T) {
	f := mustParse(t, "  = aa23  ")
	expr := f.(formula.Expression)
	ref := expr.Expr.(formula.Reference)
	assert.Equal(t, "AA23", ref.Addr.String())
}

func TestFormulaCallWithLiteralArgs(t *testing.T) {
	f := mustParse(t, "=sum(1, 2, 3)")
	expr := f.(formula.Expression)
	call, ok := expr.Expr.(formula.Call)
	require.True(t, ok)
	assert.Equal(t, "sum", call.Name)
	assert.Len(t, call.Args, 3)
}

func TestFormulaCallWithTrailingComma(t *testing.T) {
	f := mustParse(t, "=sum(1, 2,)")
	call := f.(formula.Expression).Expr.(formula.Call)
	assert.Len(t, call.Args, 2)
}

func TestFormulaCallNoArgs(t *testing.T) {
	f := mustParse(t, "=nope()")
	call := f.(formula.Expression).Expr.(formula.Call)
	assert.Equal(t, "nope", call.Name)
	assert.Empty(t, call.Args)
}

func TestFormulaNestedCall(t *testing.T) {
	f := mustParse(t, `=sum(A1, sum(2, 3))`)
	call := f.(formula.Expression).Expr.(formula.Call)
	require.Len(t, call.Args, 2)
	_, ok := call.Args[0].(formula.Reference)
	assert.True(t, ok)
	inner, ok := call.Args[1].(formula.Call)
	require.True(t, ok)
	assert.Equal(t, "sum", inner.Name)
}

func TestHexOctBinNumbers(t *testing.T) {
	cases := map[string]string{
		"=0x10": "16",
		"=0o10": "8",
		"=0b10": "2",
		"=-0x10": "-16",
	}
	for input, want := range cases {
		f := mustParse(t, input)
		v := f.Evaluate(nil)
		d, ok := v.Number()
		require.True(t, ok)
		assert.True(t, d.Equal(decimal.RequireFromString(want)), "input %q", input)
	}
}

func TestDecimalNumberShapes(t *testing.T) {
	cases := map[string]string{
		"=.5":    "0.5",
		"=5.":    "5",
		"=5.5e2": "550",
		"=-5":    "-5",
	}
	for input, want := range cases {
		f := mustParse(t, input)
		d, _ := f.Evaluate(nil).Number()
		assert.True(t, d.Equal(decimal.RequireFromString(want)), "input %q", input)
	}
}

func TestUnterminatedStringIsRejected(t *testing.T) {
	_, err := Parse(`="unterminated`)
	require.Error(t, err)
}

func TestTrailingGarbageIsRejected(t *testing.T) {
	_, err := Parse("=1 1")
	require.Error(t, err)

	_, err = Parse("1garbage")
	require.Error(t, err)
}

func TestUnclosedCallIsRejected(t *testing.T) {
	_, err := Parse("=sum(1, 2")
	require.Error(t, err)
}

func TestMissingExpressionIsRejected(t *testing.T) {
	_, err := Parse("=")
	require.Error(t, err)
}
