// Package digraph provides a directed-graph container over integer vertex
// IDs, with constant-time membership and neighbour enumeration, plus the
// Cartesian product and union operations the polymorphism compiler needs to
// build indicator structures.
//
// A Digraph is built once (by the triad or polymorphism packages) and is
// immutable for the remainder of a solve: unlike a general-purpose graph
// library, it carries no internal locking, because nothing in this module
// mutates a Digraph concurrently with a read of it.
package digraph

import (
	"fmt"
	"sort"
)

// Digraph is G = (V, E) with V a set of int vertex IDs and E ⊆ V×V.
// Self-loops are allowed; parallel edges cannot occur because edges are
// stored as set membership.
type Digraph struct {
	vertices map[int]struct{}
	order    []int // insertion order, for deterministic iteration
	out      map[int]map[int]struct{}
	in       map[int]map[int]struct{}
}

// New returns an empty Digraph.
func New() *Digraph {
	return &Digraph{
		vertices: make(map[int]struct{}),
		out:      make(map[int]map[int]struct{}),
		in:       make(map[int]map[int]struct{}),
	}
}

// AddVertex inserts v if absent. Idempotent.
func (g *Digraph) AddVertex(v int) {
	if _, ok := g.vertices[v]; ok {
		return
	}
	g.vertices[v] = struct{}{}
	g.order = append(g.order, v)
	g.out[v] = make(map[int]struct{})
	g.in[v] = make(map[int]struct{})
}

// AddEdge inserts the edge (u, v), inserting either endpoint if absent.
func (g *Digraph) AddEdge(u, v int) {
	g.AddVertex(u)
	g.AddVertex(v)
	g.out[u][v] = struct{}{}
	g.in[v][u] = struct{}{}
}

// HasVertex reports whether v has been inserted.
func (g *Digraph) HasVertex(v int) bool {
	_, ok := g.vertices[v]
	return ok
}

// HasEdge reports whether (u, v) is present.
func (g *Digraph) HasEdge(u, v int) bool {
	nbrs, ok := g.out[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]
	return ok
}

// Vertices returns all vertices in deterministic (insertion) order.
func (g *Digraph) Vertices() []int {
	out := make([]int, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns all edges in deterministic order: sources in vertex
// insertion order, each source's targets in ascending order.
func (g *Digraph) Edges() [][2]int {
	edges := make([][2]int, 0)
	for _, u := range g.order {
		tos := make([]int, 0, len(g.out[u]))
		for v := range g.out[u] {
			tos = append(tos, v)
		}
		sort.Ints(tos)
		for _, v := range tos {
			edges = append(edges, [2]int{u, v})
		}
	}
	return edges
}

// OutNeighbours returns the out-neighbours of v, in sorted order.
func (g *Digraph) OutNeighbours(v int) []int {
	return sortedKeys(g.out[v])
}

// InNeighbours returns the in-neighbours of v, in sorted order.
func (g *Digraph) InNeighbours(v int) []int {
	return sortedKeys(g.in[v])
}

// OutDegree returns the number of out-edges of v.
func (g *Digraph) OutDegree(v int) int { return len(g.out[v]) }

// InDegree returns the number of in-edges of v.
func (g *Digraph) InDegree(v int) int { return len(g.in[v]) }

// Degree returns the total number of incident edges of v.
func (g *Digraph) Degree(v int) int { return len(g.out[v]) + len(g.in[v]) }

// NumVertices returns |V|.
func (g *Digraph) NumVertices() int { return len(g.vertices) }

// NumEdges returns |E|.
func (g *Digraph) NumEdges() int {
	n := 0
	for _, nbrs := range g.out {
		n += len(nbrs)
	}
	return n
}

// ContractVertices merges b into a: every edge incident to b is
// redirected to a (self-loops are collapsed rather than duplicated), and
// b is removed. Used by the polymorphism compiler to build an indicator
// digraph's identity-induced quotient, mirroring
// original_source/src/adjacency_list.rs's `contract_vertices`. A no-op if
// a == b. Panics if either vertex is absent.
func (g *Digraph) ContractVertices(a, b int) {
	if !g.HasVertex(a) {
		panic(fmt.Errorf("digraph: ContractVertices: %w: %d", ErrVertexNotFound, a))
	}
	if !g.HasVertex(b) {
		panic(fmt.Errorf("digraph: ContractVertices: %w: %d", ErrVertexNotFound, b))
	}
	if a == b {
		return
	}

	outOfB := sortedKeys(g.out[b])
	inOfB := sortedKeys(g.in[b])

	for _, v := range outOfB {
		target := v
		if target == b {
			target = a
		}
		delete(g.in[v], b)
		g.out[a][target] = struct{}{}
		g.in[target][a] = struct{}{}
	}
	for _, u := range inOfB {
		source := u
		if source == b {
			source = a
		}
		delete(g.out[u], b)
		g.in[a][source] = struct{}{}
		g.out[source][a] = struct{}{}
	}

	delete(g.out[a], b)
	delete(g.in[a], b)
	delete(g.vertices, b)
	delete(g.out, b)
	delete(g.in, b)
	for i, v := range g.order {
		if v == b {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
