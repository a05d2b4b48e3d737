// Package sheet implements the cell store and recalculation engine: the
// mapping from address to Cell, the dependency graph between them, the
// function registry, and the topological recomputation that keeps every
// cell's value consistent with its formula (spec.md §4.5).
package sheet

import (
	"log/slog"
	"strings"
	"time"

	"github.com/foldwave/sheetcalc/address"
	"github.com/foldwave/sheetcalc/cell"
	"github.com/foldwave/sheetcalc/formula"
	"github.com/foldwave/sheetcalc/parser"
	"github.com/foldwave/sheetcalc/value"
)

// Function is a host-registered callable: stateless with respect to the
// sheet, invoked inline with its arguments already evaluated.
type Function func(args []value.Value) value.Value

// Sheet owns a single address-keyed worksheet: cell records, their
// dependency graph, and the registry of callable functions their formulas
// may invoke.
type Sheet struct {
	cells     map[address.Cell]cell.Cell
	graph     *graph
	functions map[string]Function
	log       *slog.Logger
}

// Option configures a Sheet at construction time.
type Option func(*Sheet)

// WithLogger sets the structured logger used for recalculation
// diagnostics. If nil (or never supplied), slog.Default is used.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sheet) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates an empty Sheet.
func New(opts ...Option) *Sheet {
	s := &Sheet{
		cells:     make(map[address.Cell]cell.Cell),
		graph:     newGraph(),
		functions: make(map[string]Function),
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// Cell returns the cell record at addr, and whether one exists.
func (s *Sheet) Cell(addr address.Cell) (cell.Cell, bool) {
	c, ok := s.cells[addr]
	return c, ok
}

// Value returns addr's current value, or Empty if no cell exists there.
// It implements formula.Context.
func (s *Sheet) Value(addr address.Cell) value.Value {
	if c, ok := s.cells[addr]; ok {
		return c.Value()
	}
	return value.Empty()
}

// Call dispatches a function call by name with already-evaluated
// arguments. It implements formula.Context.
func (s *Sheet) Call(name string, args []value.Value) value.Value {
	fn, ok := s.functions[name]
	if !ok {
		return value.NewError(value.Undefined)
	}
	return fn(args)
}

// SetFunction registers or replaces the callable under name. Existing
// cells that call name are not reevaluated; call RecalculateAll to pick
// up the change (spec.md §9's open question, resolved in SPEC_FULL.md §D).
func (s *Sheet) SetFunction(name string, fn Function) {
	s.functions[name] = fn
}

// SetCell parses input, rewires the dependency graph, updates or removes
// the cell record, and recomputes every cell forward-reachable from addr,
// implementing the seven steps of spec.md §4.5.
func (s *Sheet) SetCell(addr address.Cell, input string) (map[address.Cell]value.Value, error) {
	start := time.Now()

	f, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}

	existing, hadCell := s.cells[addr]
	if hadCell {
		for _, dep := range formula.Dependencies(existing.Formula()) {
			s.graph.removeEdge(dep, addr)
		}
	}
	for _, dep := range formula.Dependencies(f) {
		s.graph.addEdge(dep, addr)
	}

	trimmed := strings.TrimSpace(input)
	lit, isLiteral := f.(formula.Literal)
	removed := trimmed == "" && isLiteral && lit.Value.IsEmpty()

	if removed {
		delete(s.cells, addr)
		s.graph.markCellAbsent(addr)
	} else {
		s.cells[addr] = cell.New(input, f, value.Empty())
		s.graph.markCellPresent(addr)
	}

	result := s.recalculateFrom(addr)

	s.log.Debug("set_cell",
		slog.String("address", addr.String()),
		slog.Int("affected", len(result)),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

// RecalculateAll forces a full recompute of every existing cell in
// topological order, without a preceding edit (SPEC_FULL.md §C).
func (s *Sheet) RecalculateAll() map[address.Cell]value.Value {
	return s.recalculate(s.graph.allNodes())
}

// recalculateFrom computes the forward-reachable set from addr and
// recalculates it.
func (s *Sheet) recalculateFrom(addr address.Cell) map[address.Cell]value.Value {
	nodes := s.graph.forwardReachable(addr)
	return s.recalculate(nodes)
}

// recalculate topologically sorts nodes and recomputes each one's value
// against the sheet, marking cycle participants and their downstream
// cells Error(Cycle).
func (s *Sheet) recalculate(nodes map[address.Cell]struct{}) map[address.Cell]value.Value {
	order, cyclic := s.graph.topoSort(nodes)
	result := make(map[address.Cell]value.Value, len(nodes))

	if len(cyclic) > 0 {
		s.log.Warn("cycle detected", slog.Int("cells", len(cyclic)))
	}

	for _, addr := range order {
		c, ok := s.cells[addr]
		if !ok {
			continue // dangling reference node with no cell record
		}
		v := c.Formula().Evaluate(s)
		s.cells[addr] = c.WithValue(v)
		result[addr] = v
	}

	for addr := range cyclic {
		c, ok := s.cells[addr]
		if !ok {
			continue
		}
		v := value.NewError(value.Cycle)
		s.cells[addr] = c.WithValue(v)
		result[addr] = v
	}

	return result
}
