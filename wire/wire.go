// Package wire implements the external interface layer of spec.md §4.6/§6:
// the tagged-object JSON schema values and addresses cross a host boundary
// as, and the two host commands (GetFormula/SetFormula) that map directly
// onto a sheet. Grounded on the Tauri command pair in the Rust source's
// calc-app/src-tauri/src/main.rs (get_formula/set_formula).
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/foldwave/sheetcalc/address"
	"github.com/foldwave/sheetcalc/sheet"
	"github.com/foldwave/sheetcalc/value"
)

// ValueType is the `type` discriminant of the wire schema in spec.md §6.
type ValueType string

const (
	TypeEmpty  ValueType = "Empty"
	TypeNumber ValueType = "Number"
	TypeString ValueType = "String"
	TypeError  ValueType = "Error"
)

// errorKindText maps a value.ErrorKind to its wire string, the tokens
// "Type"/"Undefined"/"Cycle" from the §6 table (distinct from the
// "#TYPE"-style display tokens value.Value.String uses for humans).
var errorKindText = map[value.ErrorKind]string{
	value.Type:      "Type",
	value.Undefined: "Undefined",
	value.Cycle:     "Cycle",
}

var errorKindFromText = map[string]value.ErrorKind{
	"Type":      value.Type,
	"Undefined": value.Undefined,
	"Cycle":     value.Cycle,
}

// Value is the tagged-object wire form of value.Value: {"type": ..., "value": ...}.
// Number is transported as decimal text to preserve exact precision across
// a transport without arbitrary-precision numbers. Per spec.md §6, value
// is present for every variant except Empty — including the empty
// string, a valid String payload in its own right ("" parses to
// Value{Type: TypeString}) — so MarshalJSON drops the field by variant,
// not by whether Value happens to be the Go zero value.
type Value struct {
	Type  ValueType `json:"type"`
	Value string    `json:"value"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.Type == TypeEmpty {
		return json.Marshal(struct {
			Type ValueType `json:"type"`
		}{Type: v.Type})
	}
	return json.Marshal(struct {
		Type  ValueType `json:"type"`
		Value string    `json:"value"`
	}{Type: v.Type, Value: v.Value})
}

// EncodeValue converts a sheet value.Value into its wire form.
func EncodeValue(v value.Value) Value {
	switch v.Kind() {
	case value.KindEmpty:
		return Value{Type: TypeEmpty}
	case value.KindNumber:
		d, _ := v.Number()
		return Value{Type: TypeNumber, Value: d.String()}
	case value.KindString:
		s, _ := v.Str()
		return Value{Type: TypeString, Value: s}
	case value.KindError:
		k, _ := v.ErrKind()
		return Value{Type: TypeError, Value: errorKindText[k]}
	default:
		return Value{Type: TypeEmpty}
	}
}

// DecodeValue converts a wire Value back into a value.Value.
func DecodeValue(w Value) (value.Value, error) {
	switch w.Type {
	case TypeEmpty:
		return value.Empty(), nil
	case TypeNumber:
		return decodeNumberValue(w.Value)
	case TypeString:
		return value.NewString(w.Value), nil
	case TypeError:
		kind, ok := errorKindFromText[w.Value]
		if !ok {
			return value.Value{}, fmt.Errorf("wire: unknown error kind %q", w.Value)
		}
		return value.NewError(kind), nil
	default:
		return value.Value{}, fmt.Errorf("wire: unknown value type %q", w.Type)
	}
}

// CellMap is the result of a successful SetFormula call: every recomputed
// address, keyed by its text form, mapped to its wire value.
type CellMap map[string]Value

// GetFormula returns the stored raw input for the cell at addr, or "" if
// absent — a direct passthrough of sheet.Sheet.Cell, matching the Tauri
// command of the same name.
func GetFormula(s *sheet.Sheet, addrText string) (string, error) {
	addr, err := address.ParseCell(addrText)
	if err != nil {
		return "", err
	}
	c, ok := s.Cell(addr)
	if !ok {
		return "", nil
	}
	return c.Input(), nil
}

// SetFormula parses addrText and applies input to the sheet, returning the
// wire-encoded result map on success, or the address or parse error on
// failure — the Go counterpart of the Tauri command's
// `Result<HashMap<CellAddress, Value>, String>`.
func SetFormula(s *sheet.Sheet, addrText, input string) (CellMap, error) {
	addr, err := address.ParseCell(addrText)
	if err != nil {
		return nil, err
	}
	changed, err := s.SetCell(addr, input)
	if err != nil {
		return nil, err
	}
	out := make(CellMap, len(changed))
	for a, v := range changed {
		out[a.String()] = EncodeValue(v)
	}
	return out, nil
}

func decodeNumberValue(raw string) (value.Value, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return value.Value{}, fmt.Errorf("wire: invalid number %q: %w", raw, err)
	}
	return value.NewNumber(d), nil
}
