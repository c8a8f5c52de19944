package polymorphism

// Identity computes, for a graph of numVertices vertices and the given
// arity, the classes of operation-input tuples that must be identified
// (contracted to one indicator vertex) to encode the identity as a CSP.
// Mirrors original_source/src/polymorphism.rs's `Identity` function type.
type Identity func(arity Arity, numVertices int) [][][]int

// WNU encodes the weak-near-unanimity identity f(y,x,...,x) =
// f(x,y,x,...,x) = ... = f(x,...,x,y) for every arity in a.Arities(),
// ported from the source's `wnu`/`wnu_i`: one class per ordered pair
// x != y, holding every arity's tuples (so several arities are tied
// together). Each class starts with (x,...,x,y), whose first coordinate
// is x — the value WithMajority precolours the class to.
func WNU(a Arity, numVertices int) [][][]int {
	var classes [][][]int
	for x := 0; x < numVertices; x++ {
		for y := 0; y < numVertices; y++ {
			if x == y {
				continue
			}
			var class [][]int
			for _, k := range a.Arities() {
				for pos := k - 1; pos >= 0; pos-- {
					t := repeat(x, k)
					t[pos] = y
					class = append(class, t)
				}
			}
			classes = append(classes, class)
		}
	}
	return classes
}

// wnuTuples returns every arity-k tuple that must map to the same value
// as the all-i tuple: the all-i tuple itself, plus one tuple per
// (other vertex j, coordinate) pair with that single coordinate set to j.
func wnuTuples(arity, i, numVertices int) [][]int {
	base := repeat(i, arity)
	tuples := [][]int{base}
	for j := 0; j < numVertices; j++ {
		if i == j {
			continue
		}
		for k := 0; k < arity; k++ {
			t := repeat(i, arity)
			t[k] = j
			tuples = append(tuples, t)
		}
	}
	return tuples
}

// Commutative encodes f(x,y) = f(y,x), ignoring arity (always binary).
// Ported from the source's `commutative`.
func Commutative(_ Arity, numVertices int) [][][]int {
	var classes [][][]int
	for i := 0; i < numVertices; i++ {
		for j := i + 1; j < numVertices; j++ {
			classes = append(classes, [][]int{{i, j}, {j, i}})
		}
	}
	return classes
}

// Siggers encodes the Siggers identity f(r,a,r,e) = f(a,r,e,a), ignoring
// arity (always 4-ary). Ported from the source's `siggers`.
func Siggers(_ Arity, numVertices int) [][][]int {
	var classes [][][]int
	for i := 0; i < numVertices; i++ {
		for j := 0; j < numVertices; j++ {
			for k := 0; k < numVertices; k++ {
				if i == j && j == k {
					continue
				}
				switch {
				case j == k:
					classes = append(classes, [][]int{{i, j, k, i}, {j, i, j, k}, {i, k, i, j}})
				case i != k:
					classes = append(classes, [][]int{{i, j, k, i}, {j, i, j, k}})
				}
			}
		}
	}
	return classes
}

// HKWNU is the Hagemann–Mitschke-style generalization of WNU from two
// arities (original_source's Arity::Dual special case) to a chain of h
// operations of the same arity k (polymorphism.Chain). Each link in the
// chain is itself a WNU identity at arity k; consecutive links are tied
// together by additionally identifying link i's "all-i" anchor tuple
// with link i+1's "all-i" anchor tuple, so a single assignment has to
// satisfy every link simultaneously rather than each link independently
// — the chain-linking step this repo's source material never needed
// because it only ever mixed exactly two arities.
//
// Every link shares the same arity k, so a plain []int tuple can't tell
// two links' "all-i" tuples apart — that's why Finder.Find compiles a
// Chain arity against a digraph.ChainTupleSpace rather than a shared
// TupleSpace. Classes returned here are link-tagged to match: each
// tuple's leading coordinate is the chain link index, and the remaining
// k coordinates are the actual operation input. Building one combined
// class per vertex i out of every link's wnuTuples(k, i, ...) both
// encodes each link's own WNU identity and, since they all land in the
// same class, ties consecutive (and in fact all) links' all-i anchors
// together via the union-find Finder.Find runs over these classes.
//
// This is new content relative to original_source/src/polymorphism.rs:
// the source hardcodes Arity::Dual(3,4) as its only multi-arity case and
// never generalizes it to an arbitrary chain height.
func HKWNU(a Arity, numVertices int) [][][]int {
	if !a.IsChain() {
		return WNU(a, numVertices)
	}
	k, h := a.ChainParams()

	var classes [][][]int
	for i := 0; i < numVertices; i++ {
		var class [][]int
		for link := 0; link < h; link++ {
			for _, t := range wnuTuples(k, i, numVertices) {
				class = append(class, taggedTuple(link, t))
			}
		}
		classes = append(classes, class)
	}
	return classes
}

// taggedTuple prefixes tuple with the chain link that produced it, the
// encoding digraph.ChainTupleSpace.Lookup expects.
func taggedTuple(link int, tuple []int) []int {
	out := make([]int, len(tuple)+1)
	out[0] = link
	copy(out[1:], tuple)
	return out
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
