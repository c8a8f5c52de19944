package triad

import "errors"

// ErrMalformedArm is returned by FromString when an arm contains a
// character other than '0' or '1'.
var ErrMalformedArm = errors.New("triad: arm contains a character other than '0' or '1'")

// ErrTooManyArms is returned by FromString when more than three
// comma-separated arms are given.
var ErrTooManyArms = errors.New("triad: at most three arms are allowed")

// ErrNotATriad is returned by FromDigraph when the digraph is not a
// degree-3-rooted oriented tree with exactly three arms.
var ErrNotATriad = errors.New("triad: digraph is not a 3-armed triad")
