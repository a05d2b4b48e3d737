package sheet

import (
	"sort"

	"github.com/foldwave/sheetcalc/address"
)

// graph is the dependency graph over cell addresses: edge dep -> addr
// means addr's formula references dep, so addr must be recomputed after
// dep. Nodes may exist for addresses that have no cell record (a
// referenced-but-never-set address); such nodes evaluate to Empty and are
// pruned once nothing references or is referenced by them.
type graph struct {
	precedents map[address.Cell]map[address.Cell]struct{} // addr -> deps addr reads from
	dependents map[address.Cell]map[address.Cell]struct{} // dep -> addrs that read from dep
	hasCell    map[address.Cell]bool                      // addr -> whether a cell record currently exists
}

func newGraph() *graph {
	return &graph{
		precedents: make(map[address.Cell]map[address.Cell]struct{}),
		dependents: make(map[address.Cell]map[address.Cell]struct{}),
		hasCell:    make(map[address.Cell]bool),
	}
}

// ensureNode makes sure a is a node in the graph, auto-creating it if
// necessary (per spec.md §4.5 step 3/5).
func (g *graph) ensureNode(a address.Cell) {
	if _, ok := g.precedents[a]; !ok {
		g.precedents[a] = make(map[address.Cell]struct{})
	}
	if _, ok := g.dependents[a]; !ok {
		g.dependents[a] = make(map[address.Cell]struct{})
	}
}

// markCellPresent records that addr now has a cell record, so it survives
// pruning even with no edges.
func (g *graph) markCellPresent(addr address.Cell) {
	g.ensureNode(addr)
	g.hasCell[addr] = true
}

// markCellAbsent records that addr no longer has a cell record; the node
// is pruned if nothing else justifies keeping it.
func (g *graph) markCellAbsent(addr address.Cell) {
	g.hasCell[addr] = false
	g.pruneIfUnused(addr)
}

// addEdge adds dep -> addr, auto-creating both nodes.
func (g *graph) addEdge(dep, addr address.Cell) {
	g.ensureNode(dep)
	g.ensureNode(addr)
	g.precedents[addr][dep] = struct{}{}
	g.dependents[dep][addr] = struct{}{}
}

// removeEdge removes dep -> addr and prunes either endpoint left with no
// remaining reason to exist.
func (g *graph) removeEdge(dep, addr address.Cell) {
	if deps, ok := g.precedents[addr]; ok {
		delete(deps, dep)
	}
	if dependents, ok := g.dependents[dep]; ok {
		delete(dependents, addr)
	}
	g.pruneIfUnused(dep)
	g.pruneIfUnused(addr)
}

// pruneIfUnused removes addr's node entirely once it has no cell record,
// no precedents, and no dependents.
func (g *graph) pruneIfUnused(addr address.Cell) {
	if g.hasCell[addr] {
		return
	}
	if len(g.precedents[addr]) > 0 || len(g.dependents[addr]) > 0 {
		return
	}
	delete(g.precedents, addr)
	delete(g.dependents, addr)
	delete(g.hasCell, addr)
}

// exists reports whether addr is currently a node in the graph.
func (g *graph) exists(addr address.Cell) bool {
	_, ok := g.precedents[addr]
	return ok
}

// precedentsOf returns the dependency addresses for addr.
func (g *graph) precedentsOf(addr address.Cell) []address.Cell {
	return sortedKeys(g.precedents[addr])
}

// forwardReachable returns the set of nodes reachable from start by
// following dependents edges, including start itself if it is a node.
func (g *graph) forwardReachable(start address.Cell) map[address.Cell]struct{} {
	reachable := make(map[address.Cell]struct{})
	if !g.exists(start) {
		return reachable
	}
	var stack []address.Cell
	reachable[start] = struct{}{}
	stack = append(stack, start)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dep := range g.dependents[cur] {
			if _, seen := reachable[dep]; seen {
				continue
			}
			reachable[dep] = struct{}{}
			stack = append(stack, dep)
		}
	}
	return reachable
}

// topoSort orders nodes restricted to the given set using Kahn's
// algorithm, breaking ties in the ready frontier by column-major address
// order for deterministic, reproducible output (spec.md §9's
// "Determinism" note). It returns the order for every node that could be
// placed, and the subset of nodes that could not be (because they sit on
// a cycle within the restricted subgraph, or downstream of one).
func (g *graph) topoSort(nodes map[address.Cell]struct{}) (order []address.Cell, cyclic map[address.Cell]struct{}) {
	indegree := make(map[address.Cell]int, len(nodes))
	for n := range nodes {
		count := 0
		for dep := range g.precedents[n] {
			if _, inSet := nodes[dep]; inSet {
				count++
			}
		}
		indegree[n] = count
	}

	var ready []address.Cell
	for n, d := range indegree {
		if d == 0 {
			ready = append(ready, n)
		}
	}
	sort.Slice(ready, func(i, j int) bool { return address.Less(ready[i], ready[j]) })

	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		order = append(order, n)

		var freed []address.Cell
		for dependent := range g.dependents[n] {
			if _, inSet := nodes[dependent]; !inSet {
				continue
			}
			indegree[dependent]--
			if indegree[dependent] == 0 {
				freed = append(freed, dependent)
			}
		}
		sort.Slice(freed, func(i, j int) bool { return address.Less(freed[i], freed[j]) })

		// merge freed into ready, keeping the whole frontier sorted.
		ready = append(ready, freed...)
		sort.Slice(ready, func(i, j int) bool { return address.Less(ready[i], ready[j]) })
	}

	if len(order) == len(nodes) {
		return order, nil
	}

	cyclic = make(map[address.Cell]struct{})
	placed := make(map[address.Cell]struct{}, len(order))
	for _, n := range order {
		placed[n] = struct{}{}
	}
	for n := range nodes {
		if _, ok := placed[n]; !ok {
			cyclic[n] = struct{}{}
		}
	}
	return order, cyclic
}

// allNodes returns every node currently in the graph.
func (g *graph) allNodes() map[address.Cell]struct{} {
	nodes := make(map[address.Cell]struct{}, len(g.precedents))
	for n := range g.precedents {
		nodes[n] = struct{}{}
	}
	return nodes
}

func sortedKeys(m map[address.Cell]struct{}) []address.Cell {
	keys := make([]address.Cell, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return address.Less(keys[i], keys[j]) })
	return keys
}
