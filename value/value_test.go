package value

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	assert.Equal(t, "", Empty().String())
	assert.Equal(t, "1", NewNumber(decimal.RequireFromString("1")).String())
	assert.Equal(t, `"foo"`, NewString("foo").String())
	assert.Equal(t, "#TYPE", NewError(Type).String())
	assert.Equal(t, "#UNDEFINED", NewError(Undefined).String())
	assert.Equal(t, "#CYCLE", NewError(Cycle).String())
}

func TestNumberEqualityIgnoresTextualForm(t *testing.T) {
	a := NewNumber(decimal.RequireFromString("1"))
	b := NewNumber(decimal.RequireFromString("1.0"))
	assert.True(t, a.Equal(b))
}

func TestAsNumberOnString(t *testing.T) {
	_, err := NewString("x").AsNumber()
	require.Error(t, err)
	var ce *CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, Type, ce.Kind)
}

func TestAsStringOnNumber(t *testing.T) {
	_, err := NewNumber(decimal.Zero).AsString()
	require.Error(t, err)
	var ce *CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, Type, ce.Kind)
}

func TestErrorPropagatesThroughCoercion(t *testing.T) {
	for _, k := range []ErrorKind{Type, Undefined, Cycle} {
		v := NewError(k)

		_, err := v.AsNumber()
		require.Error(t, err)
		var ce *CoercionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, k, ce.Kind)

		_, err = v.AsString()
		require.Error(t, err)
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, k, ce.Kind)
	}
}

func TestEqualityIsStructural(t *testing.T) {
	assert.True(t, Empty().Equal(Empty()))
	assert.False(t, Empty().Equal(NewString("")))
	assert.True(t, NewError(Cycle).Equal(NewError(Cycle)))
	assert.False(t, NewError(Cycle).Equal(NewError(Type)))
}
