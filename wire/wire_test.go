package wire

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldwave/sheetcalc/sheet"
	"github.com/foldwave/sheetcalc/value"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []value.Value{
		value.Empty(),
		value.NewNumber(decimal.RequireFromString("1.50")),
		value.NewString("foo"),
		value.NewError(value.Type),
		value.NewError(value.Undefined),
		value.NewError(value.Cycle),
	}
	for _, v := range cases {
		w := EncodeValue(v)
		back, err := DecodeValue(w)
		require.NoError(t, err)
		assert.True(t, v.Equal(back), "%v round-tripped to %v", v, back)
	}
}

func TestEncodeNumberIsExactDecimalText(t *testing.T) {
	w := EncodeValue(value.NewNumber(decimal.RequireFromString("0.1")))
	assert.Equal(t, TypeNumber, w.Type)
	assert.Equal(t, "0.1", w.Value)
}

func TestMarshalJSONKeepsValueKeyForEmptyString(t *testing.T) {
	w := EncodeValue(value.NewString(""))
	b, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"String","value":""}`, string(b))
}

func TestMarshalJSONOmitsValueKeyForEmpty(t *testing.T) {
	w := EncodeValue(value.Empty())
	b, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Empty"}`, string(b))
}

func TestMarshalJSONCellMapRoundTrip(t *testing.T) {
	cm := CellMap{"A1": EncodeValue(value.NewString(""))}
	b, err := json.Marshal(cm)
	require.NoError(t, err)
	assert.JSONEq(t, `{"A1":{"type":"String","value":""}}`, string(b))
}

func TestDecodeUnknownErrorKindFails(t *testing.T) {
	_, err := DecodeValue(Value{Type: TypeError, Value: "Bogus"})
	assert.Error(t, err)
}

func TestGetFormulaOnAbsentCellIsEmptyString(t *testing.T) {
	s := sheet.New()
	text, err := GetFormula(s, "A1")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestSetFormulaRoundTripsThroughSheet(t *testing.T) {
	s := sheet.New()
	result, err := SetFormula(s, "A1", "1")
	require.NoError(t, err)
	assert.Equal(t, TypeNumber, result["A1"].Type)
	assert.Equal(t, "1", result["A1"].Value)

	text, err := GetFormula(s, "A1")
	require.NoError(t, err)
	assert.Equal(t, "1", text)
}

func TestSetFormulaParseErrorSurfacesAsGoError(t *testing.T) {
	s := sheet.New()
	_, err := SetFormula(s, "A1", "=(")
	assert.Error(t, err)
}

func TestSetFormulaInvalidAddressSurfacesAsGoError(t *testing.T) {
	s := sheet.New()
	_, err := SetFormula(s, "1A", "1")
	assert.Error(t, err)
}
