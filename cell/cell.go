// Package cell defines the record a sheet stores for each occupied
// address: the raw input text, the formula parsed from it, and the last
// value computed for it.
package cell

import (
	"github.com/foldwave/sheetcalc/formula"
	"github.com/foldwave/sheetcalc/value"
)

// Cell bundles a cell's raw input with its parsed formula and last
// computed value. Only the sheet package constructs and mutates cells;
// everything exported here is a read accessor.
type Cell struct {
	input   string
	formula formula.Formula
	value   value.Value
}

// New builds a Cell record. Called by the sheet package once a formula has
// parsed successfully.
func New(input string, f formula.Formula, v value.Value) Cell {
	return Cell{input: input, formula: f, value: v}
}

// Empty is the default record for an address that has never been
// assigned: empty input, the empty literal formula, and the empty value.
func Empty() Cell {
	return Cell{input: "", formula: formula.Empty(), value: value.Empty()}
}

// Input returns the raw text last assigned to this cell.
func (c Cell) Input() string { return c.input }

// Formula returns the formula parsed from Input.
func (c Cell) Formula() formula.Formula { return c.formula }

// Value returns the cell's last computed value.
func (c Cell) Value() value.Value { return c.value }

// WithValue returns a copy of c with its value replaced, leaving input and
// formula untouched. Used by the sheet during recalculation.
func (c Cell) WithValue(v value.Value) Cell {
	c.value = v
	return c
}
