// Package polymorphism compiles an identity (commutative, majority,
// Siggers, weak-near-unanimity, ...) and a target digraph into an
// indicator-digraph CSP instance, then runs package search to decide
// whether the identity is realized as a polymorphism of the target —
// Component F of SPEC_FULL.md, grounded on
// original_source/src/polymorphism.rs.
package polymorphism

// Arity describes the operation arities an identity needs simultaneous
// indicator structure for. Single(k) is the common case (one k-ary
// operation); Dual(k,l) is original_source's special case for mixing two
// arities in one identity (e.g. the source's 3/4-wnu); Chain generalizes
// Dual to h arities for the Hagemann–Mitschke h/k-wnu family (§4.6 of
// SPEC_FULL.md — this identity family has no direct source counterpart
// and is this repo's own derivation from the Dual(3,4) special case).
type Arity struct {
	arities []int
	chainK  int
	chainH  int
}

// Single returns the Arity for a single k-ary operation.
func Single(k int) Arity { return Arity{arities: []int{k}} }

// Dual returns the Arity pairing a k-ary and an l-ary operation that
// share the same identifications, as in original_source's Arity::Dual.
func Dual(k, l int) Arity { return Arity{arities: []int{k, l}} }

// Chain returns the Arity for h operations, each of arity k, used by the
// h/k-wnu identity family. Unlike Dual, every link shares the same
// arity, so Finder.Find compiles a Chain arity with
// digraph.Digraph.ChainPower rather than CombinedPower, keeping each
// link's power graph in its own vertex range instead of sharing one
// TupleSpace — see ChainParams and IsChain.
func Chain(k, h int) Arity {
	arities := make([]int, h)
	for i := range arities {
		arities[i] = k
	}
	return Arity{arities: arities, chainK: k, chainH: h}
}

// Arities returns the component arities, in the order their indicator
// power graphs should be unioned. For a Chain arity this is h copies of
// k; callers that need a Chain's indicator compiled correctly should use
// IsChain/ChainParams instead of iterating Arities directly.
func (a Arity) Arities() []int { return a.arities }

// IsChain reports whether a was built by Chain.
func (a Arity) IsChain() bool { return a.chainH > 0 }

// ChainParams returns the per-link arity and chain height a was built
// with. Only meaningful when IsChain reports true.
func (a Arity) ChainParams() (k, h int) { return a.chainK, a.chainH }
