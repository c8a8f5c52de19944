package digraph

import "strconv"

// TupleSpace is the side table mapping between a dense int vertex ID used
// internally by a product/power Digraph and the tuple of original-graph
// vertices it represents. Collapsing arbitrary-arity []int tuples to a
// single int vertex ID (Design Note 2 of SPEC_FULL.md) keeps Digraph itself
// free of a generic vertex-type parameter; TupleSpace is the lookaside table
// that recovers the original tuple for callers (e.g. the polymorphism
// compiler, or DOT/witness printing) that need it.
type TupleSpace struct {
	idOf   map[string]int
	tuples [][]int
}

func newTupleSpace() *TupleSpace {
	return &TupleSpace{idOf: make(map[string]int)}
}

// intern returns the dense ID for tuple, allocating a new one if this is the
// first time tuple has been seen.
func (ts *TupleSpace) intern(tuple []int) int {
	key := tupleKey(tuple)
	if id, ok := ts.idOf[key]; ok {
		return id
	}
	id := len(ts.tuples)
	cp := make([]int, len(tuple))
	copy(cp, tuple)
	ts.tuples = append(ts.tuples, cp)
	ts.idOf[key] = id
	return id
}

// Tuple returns the original-graph tuple for a product vertex ID. Panics if
// id was never interned — that is a programmer error (spec.md §7).
func (ts *TupleSpace) Tuple(id int) []int {
	if id < 0 || id >= len(ts.tuples) {
		panic("digraph: tuple space asked for an id that was never interned")
	}
	out := make([]int, len(ts.tuples[id]))
	copy(out, ts.tuples[id])
	return out
}

// Lookup returns the dense ID already assigned to tuple, and whether it has
// been interned at all.
func (ts *TupleSpace) Lookup(tuple []int) (int, bool) {
	id, ok := ts.idOf[tupleKey(tuple)]
	return id, ok
}

// Len returns the number of distinct tuples interned.
func (ts *TupleSpace) Len() int { return len(ts.tuples) }

func tupleKey(tuple []int) string {
	// A plain delimited join is sufficient here (fixed small int alphabet,
	// no untrusted input) and avoids a hashing dependency for this
	// internal, always-non-negative-looking key; the joined key also
	// encodes the tuple's length, so tuples of different arity never
	// collide. Contrast with polymorphism.Polymorphism's witness keys,
	// which hash input tuples with mitchellh/hashstructure (see DESIGN.md).
	buf := make([]byte, 0, len(tuple)*4)
	for i, v := range tuple {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}

// Power returns the k-ary product graph G^k together with the TupleSpace
// mapping its vertices back to tuples of G's vertices, matching
// original_source/src/adjacency_list.rs's `power`.
func (g *Digraph) Power(k int) (*Digraph, *TupleSpace) {
	if k <= 0 {
		panic("digraph: Power requires k >= 1")
	}
	ts := newTupleSpace()
	prod := New()

	verts := g.Vertices()
	tuples := [][]int{{}}
	for i := 0; i < k; i++ {
		next := make([][]int, 0, len(tuples)*len(verts))
		for _, t := range tuples {
			for _, v := range verts {
				nt := make([]int, len(t)+1)
				copy(nt, t)
				nt[len(t)] = v
				next = append(next, nt)
			}
		}
		tuples = next
	}
	for _, t := range tuples {
		id := ts.intern(t)
		prod.AddVertex(id)
	}

	edges := g.Edges()
	prevEdges := [][2][]int{{{}, {}}}
	for i := 0; i < k; i++ {
		next := make([][2][]int, 0, len(prevEdges)*len(edges))
		for _, pe := range prevEdges {
			for _, e := range edges {
				u := append(append([]int{}, pe[0]...), e[0])
				v := append(append([]int{}, pe[1]...), e[1])
				next = append(next, [2][]int{u, v})
			}
		}
		prevEdges = next
	}
	for _, pe := range prevEdges {
		uID, _ := ts.Lookup(pe[0])
		vID, _ := ts.Lookup(pe[1])
		prod.AddEdge(uID, vID)
	}

	return prod, ts
}

// Product returns the binary Cartesian product G×H: vertex set V(G)×V(H),
// edges ((u1,u2),(v1,v2)) for (u1,v1)∈E(G) and (u2,v2)∈E(H). Used by the
// "product correctness" property test (spec.md §8 property 4): strict
// product, no parallel-edge collapse, |V|=|V(G)|·|V(H)|, |E|=|E(G)|·|E(H)|.
func (g *Digraph) Product(h *Digraph) (*Digraph, *TupleSpace) {
	ts := newTupleSpace()
	prod := New()

	for _, u := range g.Vertices() {
		for _, v := range h.Vertices() {
			prod.AddVertex(ts.intern([]int{u, v}))
		}
	}
	for _, e1 := range g.Edges() {
		for _, e2 := range h.Edges() {
			uID, _ := ts.Lookup([]int{e1[0], e2[0]})
			vID, _ := ts.Lookup([]int{e1[1], e2[1]})
			prod.AddEdge(uID, vID)
		}
	}
	return prod, ts
}

// CombinedPower returns the union of G^k for every k in arities, all
// sharing one TupleSpace (so a 2-tuple and a 3-tuple can never alias the
// same dense ID even though each power graph is built independently).
// This backs the polymorphism compiler's Arity.Dual / h/k-wnu case,
// generalizing original_source/src/polymorphism.rs's
// `g.power(k).union(&g.power(l))` from exactly two arities to any
// number.
func (g *Digraph) CombinedPower(arities []int) (*Digraph, *TupleSpace) {
	ts := newTupleSpace()
	out := New()

	for _, k := range arities {
		local, localTS := g.Power(k)
		remap := make(map[int]int, local.NumVertices())
		for _, v := range local.Vertices() {
			id := ts.intern(localTS.Tuple(v))
			remap[v] = id
			out.AddVertex(id)
		}
		for _, e := range local.Edges() {
			out.AddEdge(remap[e[0]], remap[e[1]])
		}
	}
	return out, ts
}

// ChainTupleSpace maps vertices of a ChainPower digraph back to the
// (link, tuple) pair that produced them. Unlike TupleSpace, it never
// dedups across links: each link owns a private range of the combined
// vertex space, so two links holding an identical-valued tuple still get
// distinct vertex IDs — see ChainPower.
type ChainTupleSpace struct {
	links   []*TupleSpace
	offsets []int
}

// Lookup resolves a link-tagged tuple — tagged[0] is the chain link
// index, tagged[1:] the underlying operation-input tuple — to its vertex
// ID in the combined chain-power digraph.
func (cts *ChainTupleSpace) Lookup(tagged []int) (int, bool) {
	if len(tagged) == 0 {
		return 0, false
	}
	link := tagged[0]
	if link < 0 || link >= len(cts.links) {
		return 0, false
	}
	id, ok := cts.links[link].Lookup(tagged[1:])
	if !ok {
		return 0, false
	}
	return id + cts.offsets[link], true
}

// Tuple returns the underlying tuple for a chain-power vertex ID,
// without the link that produced it; use Link for that.
func (cts *ChainTupleSpace) Tuple(id int) []int {
	link, local := cts.split(id)
	return cts.links[link].Tuple(local)
}

// Link returns which chain link produced vertex id.
func (cts *ChainTupleSpace) Link(id int) int {
	link, _ := cts.split(id)
	return link
}

func (cts *ChainTupleSpace) split(id int) (link, local int) {
	for i := len(cts.offsets) - 1; i >= 0; i-- {
		if id >= cts.offsets[i] {
			return i, id - cts.offsets[i]
		}
	}
	panic("digraph: chain tuple space asked for an id that was never interned")
}

// ChainPower returns the disjoint union of h independent copies of G^k —
// one per link of a Hagemann–Mitschke h/k-wnu chain — together with the
// ChainTupleSpace that recovers which link and which tuple a combined
// vertex ID came from. CombinedPower can't serve this case: its shared
// TupleSpace dedups purely by tuple value, so repeated-arity links (every
// link of a Chain has the same k) would collapse onto one link's vertex
// IDs instead of getting their own copy.
func (g *Digraph) ChainPower(k, h int) (*Digraph, *ChainTupleSpace) {
	if h <= 0 {
		panic("digraph: ChainPower requires h >= 1")
	}
	out := New()
	cts := &ChainTupleSpace{}
	offset := 0
	for link := 0; link < h; link++ {
		local, localTS := g.Power(k)
		cts.links = append(cts.links, localTS)
		cts.offsets = append(cts.offsets, offset)
		for _, v := range local.Vertices() {
			out.AddVertex(v + offset)
		}
		for _, e := range local.Edges() {
			out.AddEdge(e[0]+offset, e[1]+offset)
		}
		offset += localTS.Len()
	}
	return out, cts
}

// Union returns the graph with vertex set V(g)∪V(h) and edge set E(g)∪E(h).
// Callers must ensure vertex ID spaces are meant to overlap (same encoding)
// when union is used to merge indicator components built from the same
// TupleSpace; it performs no relabelling itself.
func (g *Digraph) Union(h *Digraph) *Digraph {
	out := New()
	for _, v := range g.Vertices() {
		out.AddVertex(v)
	}
	for _, e := range g.Edges() {
		out.AddEdge(e[0], e[1])
	}
	for _, v := range h.Vertices() {
		out.AddVertex(v)
	}
	for _, e := range h.Edges() {
		out.AddEdge(e[0], e[1])
	}
	return out
}

// Components returns the weakly connected components of g, each as an
// independent Digraph over the same vertex IDs as g (ported from
// original_source/src/adjacency_list.rs's `components`).
func (g *Digraph) Components() []*Digraph {
	visited := make(map[int]bool, len(g.vertices))
	var comps []*Digraph

	for _, start := range g.order {
		if visited[start] {
			continue
		}
		comp := New()
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp.AddVertex(v)
			for _, u := range g.OutNeighbours(v) {
				if !comp.HasEdge(v, u) {
					comp.AddEdge(v, u)
				}
				if !visited[u] {
					visited[u] = true
					stack = append(stack, u)
				}
			}
			for _, u := range g.InNeighbours(v) {
				if !comp.HasEdge(u, v) {
					comp.AddEdge(u, v)
				}
				if !visited[u] {
					visited[u] = true
					stack = append(stack, u)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
