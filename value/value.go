// Package value implements the tagged value algebra a cell's formula
// evaluates to: empty, an arbitrary-precision number, a string, or one of
// a small set of evaluation errors.
package value

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind tags which variant a Value holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindString
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// ErrorKind is the reason a cell could not produce a usable value.
type ErrorKind int

const (
	// Type: a value was used where an incompatible category was expected.
	Type ErrorKind = iota
	// Undefined: a call named an identifier with no registered function.
	Undefined
	// Cycle: the cell transitively depends on itself.
	Cycle
)

func (k ErrorKind) String() string {
	switch k {
	case Type:
		return "Type"
	case Undefined:
		return "Undefined"
	case Cycle:
		return "Cycle"
	default:
		return "Unknown"
	}
}

// wireText is the display token for each ErrorKind, as rendered by
// Value.String (the wire package uses the bare kind names instead).
func (k ErrorKind) wireText() string {
	switch k {
	case Type:
		return "#TYPE"
	case Undefined:
		return "#UNDEFINED"
	case Cycle:
		return "#CYCLE"
	default:
		return "#ERROR"
	}
}

// Value is the tagged sum Empty | Number(decimal) | String | Error(kind).
// The zero Value is Empty.
type Value struct {
	kind    Kind
	num     decimal.Decimal
	str     string
	errKind ErrorKind
}

// Empty returns the value of a missing or blank cell.
func Empty() Value { return Value{kind: KindEmpty} }

// NewNumber wraps an arbitrary-precision decimal.
func NewNumber(d decimal.Decimal) Value { return Value{kind: KindNumber, num: d} }

// NewString wraps a text string.
func NewString(s string) Value { return Value{kind: KindString, str: s} }

// NewError wraps an evaluation error kind.
func NewError(kind ErrorKind) Value { return Value{kind: KindError, errKind: kind} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether v is the Empty variant.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Number returns the decimal and true if v is the Number variant.
func (v Value) Number() (decimal.Decimal, bool) {
	if v.kind != KindNumber {
		return decimal.Decimal{}, false
	}
	return v.num, true
}

// Str returns the string and true if v is the String variant.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// ErrKind returns the error kind and true if v is the Error variant.
func (v Value) ErrKind() (ErrorKind, bool) {
	if v.kind != KindError {
		return 0, false
	}
	return v.errKind, true
}

// CoercionError is returned by AsNumber/AsString when v cannot be coerced.
// It always carries one of the three ErrorKind values, since a coercion
// failure against a non-matching, non-error variant reports Type.
type CoercionError struct {
	Kind ErrorKind
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("value error: %s", e.Kind)
}

// AsNumber coerces v to a decimal. An Error variant propagates its kind
// unchanged; any other non-Number variant reports Type.
func (v Value) AsNumber() (decimal.Decimal, error) {
	switch v.kind {
	case KindNumber:
		return v.num, nil
	case KindError:
		return decimal.Decimal{}, &CoercionError{Kind: v.errKind}
	default:
		return decimal.Decimal{}, &CoercionError{Kind: Type}
	}
}

// AsString coerces v to a string. An Error variant propagates its kind
// unchanged; any other non-String variant reports Type.
func (v Value) AsString() (string, error) {
	switch v.kind {
	case KindString:
		return v.str, nil
	case KindError:
		return "", &CoercionError{Kind: v.errKind}
	default:
		return "", &CoercionError{Kind: Type}
	}
}

// Equal reports structural equality. Numbers compare by mathematical
// value, not textual form, so Number(1) == Number(1.0).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindEmpty:
		return true
	case KindNumber:
		return v.num.Equal(other.num)
	case KindString:
		return v.str == other.str
	case KindError:
		return v.errKind == other.errKind
	default:
		return false
	}
}

// String renders the display form of v: "" for Empty, canonical decimal
// text for Number, double-quoted text for String, and "#TYPE"/
// "#UNDEFINED"/"#CYCLE" for the respective Error kinds.
func (v Value) String() string {
	switch v.kind {
	case KindEmpty:
		return ""
	case KindNumber:
		return v.num.String()
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindError:
		return v.errKind.wireText()
	default:
		return ""
	}
}
