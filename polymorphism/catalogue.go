package polymorphism

import (
	"fmt"
	"regexp"
	"strconv"
)

// Kind names one of the registered polymorphisms the CLI's
// --polymorphism flag accepts, matching
// original_source/src/polymorphism.rs's PolymorphismKind.
type Kind int

const (
	KindCommutative Kind = iota
	KindMajority
	KindSiggers
	KindWNU3
	KindWNU34
	KindHKWNU
	// KindWNUK is the general k-wnu identity at an arity parsed from the
	// --polymorphism flag itself (e.g. "5wnu"), rather than one of the
	// fixed catalogue names above. Its arity has no single canonical
	// string, so it is excluded from String()'s switch and from the
	// round-trip expectations the other kinds satisfy.
	KindWNUK
)

// String renders the kind the way --polymorphism expects it and the way
// store file names embed it.
func (k Kind) String() string {
	switch k {
	case KindCommutative:
		return "commutative"
	case KindMajority:
		return "majority"
	case KindSiggers:
		return "siggers"
	case KindWNU3:
		return "3wnu"
	case KindWNU34:
		return "3/4wnu"
	case KindHKWNU:
		return "h/k-wnu"
	default:
		return "unknown"
	}
}

// wnuArityPattern matches the general k-wnu CLI form spec.md §4 describes
// ("k-wnu" with the number substituted in) as it's actually written by
// this catalogue's String()/ParseKind pair: the literal digits followed
// by "wnu", e.g. "5wnu". "3wnu" itself still resolves to the dedicated
// KindWNU3 below so existing store file names keep working.
var wnuArityPattern = regexp.MustCompile(`^(\d+)wnu$`)

// ParseKind resolves a --polymorphism flag value to a Kind. The second
// return is the arity k parsed out of the flag for KindWNUK; it is 0 and
// unused for every other kind.
func ParseKind(s string) (Kind, int, error) {
	switch s {
	case "commutative":
		return KindCommutative, 0, nil
	case "majority":
		return KindMajority, 0, nil
	case "siggers":
		return KindSiggers, 0, nil
	case "3wnu":
		return KindWNU3, 0, nil
	case "3/4wnu":
		return KindWNU34, 0, nil
	case "h/k-wnu":
		return KindHKWNU, 0, nil
	}
	if m := wnuArityPattern.FindStringSubmatch(s); m != nil {
		k, err := strconv.Atoi(m[1])
		if err == nil && k >= 1 {
			return KindWNUK, k, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownIdentity, s)
}

// NewFinderForKind builds the Finder original_source/src/polymorphism.rs's
// find_polymorphism pre-configures per kind. h and k only matter for
// KindHKWNU (the chain height and per-link arity) and KindWNUK (k is the
// operation's arity); they're ignored for every other kind.
func NewFinderForKind(kind Kind, h, k int) *Finder {
	var f *Finder
	switch kind {
	case KindCommutative:
		f = NewFinder(Single(2)).WithIdentity(Commutative).WithSameLevelOptimization(true)
	case KindMajority:
		f = NewFinder(Single(3)).WithIdentity(WNU).WithMajority(true)
	case KindSiggers:
		f = NewFinder(Single(4)).WithIdentity(Siggers)
	case KindWNU34:
		f = NewFinder(Dual(3, 4)).WithIdentity(WNU)
	case KindHKWNU:
		if h < 2 {
			h = 2
		}
		if k < 3 {
			k = 3
		}
		f = NewFinder(Chain(k, h)).WithIdentity(HKWNU)
	case KindWNUK:
		if k < 1 {
			k = 3
		}
		f = NewFinder(Single(k)).WithIdentity(WNU)
	default:
		f = NewFinder(Single(3)).WithIdentity(WNU)
	}
	return f.WithIdempotent(true)
}
