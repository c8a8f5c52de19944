package domain

// Map is the domain map L : V → 2^V' — for each vertex of the source
// digraph, the current set of candidate vertices in the target digraph.
// It corresponds to `Lists` in original_source/src/consistency.rs.
//
// Map is mutated in place by the propagator during a single search node,
// then restored via Snapshot/Restore when the solver backtracks. Snapshot
// is cheap: it shares every unmodified vertex's Set by reference, copying
// only the map's own vertex→Set index. Restore copies nothing: m takes
// over the snapshot's index directly.
type Map struct {
	sets map[int]Set
}

// NewMap builds a Map over vertices by calling initial for each one.
func NewMap(vertices []int, initial func(v int) Set) *Map {
	m := &Map{sets: make(map[int]Set, len(vertices))}
	for _, v := range vertices {
		m.sets[v] = initial(v)
	}
	return m
}

// Get returns the current candidate set for v. The zero Set (empty) is
// returned if v is not present.
func (m *Map) Get(v int) Set {
	return m.sets[v]
}

// Assign replaces the candidate set for v wholesale.
func (m *Map) Assign(v int, s Set) {
	m.sets[v] = s
}

// Shrink replaces v's candidate set with its intersection against allowed,
// returning true if the set actually changed (i.e. some candidate was
// removed). This is the hot-path operation the propagator's worklist drives.
func (m *Map) Shrink(v int, allowed Set) bool {
	cur := m.sets[v]
	next := make(map[int]struct{}, len(cur.items))
	changed := false
	for x := range cur.items {
		if allowed.Contains(x) {
			next[x] = struct{}{}
		} else {
			changed = true
		}
	}
	if changed {
		m.sets[v] = Set{items: next}
	}
	return changed
}

// Vertices returns the vertices the map is defined over, in unspecified order.
func (m *Map) Vertices() []int {
	out := make([]int, 0, len(m.sets))
	for v := range m.sets {
		out = append(out, v)
	}
	return out
}

// IsEmpty reports whether any vertex's candidate set has become empty —
// the propagator's failure condition. An empty domain is not itself an
// error (see SPEC_FULL.md §7); callers decide what an empty domain means.
func (m *Map) IsEmpty() bool {
	for _, s := range m.sets {
		if s.IsEmpty() {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of m suitable for later Restore. Per-vertex Sets
// are shared by reference with the receiver; mutating a Set in place would
// break this sharing, which is why every Set method returns a new Set
// rather than mutating — see Set's doc comment.
func (m *Map) Snapshot() *Map {
	cp := &Map{sets: make(map[int]Set, len(m.sets))}
	for v, s := range m.sets {
		cp.sets[v] = s
	}
	return cp
}

// Restore makes m use snap's vertex→Set index, in place, so callers that
// hold a *Map reference across a backtrack see the restored state without
// re-fetching a pointer. The index is shared, not copied: later changes to
// m are visible through snap as well.
func (m *Map) Restore(snap *Map) {
	m.sets = snap.sets
}

// Clone returns a Map independent of m: mutating the clone's Sets (not
// just reassigning them) never affects m. Snapshot/Restore is preferred
// on the solver's hot path; Clone exists for callers that need a fully
// independent copy to keep around indefinitely (e.g. a witness map).
func (m *Map) Clone() *Map {
	cp := &Map{sets: make(map[int]Set, len(m.sets))}
	for v, s := range m.sets {
		cp.sets[v] = s.Clone()
	}
	return cp
}
