package triad

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/WhatDothLife/triads/store"
)

// RootedCoreArms returns, for each arm length from 0 to maxLen, every arm
// string of that length that is a rooted core on its own (as a
// single-arm partial triad) — ported from
// original_source/src/triad.rs's rooted_core_arms. Index 0 is always
// [""]. Results are memoized in cache under "arms/arms<n>".
func RootedCoreArms(maxLen int, cache *store.Cache) ([][]string, error) {
	armList := [][]string{{""}}
	last := []string{""}

	for length := 1; length <= maxLen; length++ {
		key := fmt.Sprintf("arms/arms%d", length)

		lines, err := cache.ReadLines(key)
		if err == nil {
			armList = append(armList, lines)
			last = lines
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}

		var survivors []string
		for _, arm := range last {
			for _, prefix := range []byte{'0', '1'} {
				candidate := string(prefix) + arm
				t := New()
				t.AddArm(candidate)
				if t.IsRootedCore() {
					survivors = append(survivors, candidate)
					if werr := cache.AppendLine(key, candidate); werr != nil {
						return nil, werr
					}
				}
			}
		}
		armList = append(armList, survivors)
		last = survivors
	}
	return armList, nil
}

// pairKey identifies one (armLength, armIndex) candidate within the arm
// cache, used as half of a cached-exclusion pair.
type pairKey struct {
	length, index int
}

// pairCache mirrors original_source/src/triad.rs's Cache: a set of arm
// pairs known to be excludable when building triads (either because
// they're a redundant same-length permutation, or because the two-arm
// partial triad they form is already not a rooted core), populated
// lazily and memoized via store.Cache under "nodes/pairs_<n>" regardless
// of which Constraint is driving enumeration — the pair relationship
// only depends on arm length, not on the overall size constraint.
type pairCache struct {
	cache   *store.Cache
	mu      sync.Mutex
	pairs   map[[2]pairKey]struct{}
	highest int
}

func newPairCache(cache *store.Cache) *pairCache {
	return &pairCache{cache: cache, pairs: make(map[[2]pairKey]struct{})}
}

func (pc *pairCache) cached(a, b, c pairKey) bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	_, ab := pc.pairs[[2]pairKey{a, b}]
	_, ac := pc.pairs[[2]pairKey{a, c}]
	_, bc := pc.pairs[[2]pairKey{b, c}]
	return ab || ac || bc
}

func (pc *pairCache) populateTo(num int, armList [][]string, cons Constraint) error {
	for n := pc.highest; n <= num; n++ {
		if err := pc.populate(n, armList, cons); err != nil {
			return err
		}
	}
	pc.highest = num + 1
	return nil
}

func (pc *pairCache) populate(num int, armList [][]string, cons Constraint) error {
	key := fmt.Sprintf("nodes/pairs_%d", num)

	lines, err := pc.cache.ReadLines(key)
	if err == nil {
		for _, line := range lines {
			fields := store.SplitFields(line)
			if len(fields) != 4 {
				return errors.Wrapf(store.ErrMalformed, "pairs cache line %q", line)
			}
			a, aerr := parseQuad(fields)
			if aerr != nil {
				return aerr
			}
			pc.pairs[a] = struct{}{}
		}
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	return pc.computeAndStore(num, armList, cons, key)
}

func (pc *pairCache) computeAndStore(num int, armList [][]string, cons Constraint, key string) error {
	pairs := cons.Pairs(num)
	workers := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once

	for _, p := range pairs {
		i, j := p[0], p[1]
		wg.Add(1)
		workers <- struct{}{}
		go func(i, j int) {
			defer wg.Done()
			defer func() { <-workers }()
			for a, arm1 := range armList[i] {
				for b, arm2 := range armList[j] {
					t := FromArms(arm1, arm2)
					if (i == j && a < b) || !t.IsRootedCore() {
						pc.mu.Lock()
						pc.pairs[[2]pairKey{{length: i, index: a}, {length: j, index: b}}] = struct{}{}
						pc.mu.Unlock()
						line := fmt.Sprintf("%d,%d,%d,%d", i, a, j, b)
						if werr := pc.cache.AppendLine(key, line); werr != nil {
							errOnce.Do(func() { firstErr = werr })
						}
					}
				}
			}
		}(i, j)
	}
	wg.Wait()
	return firstErr
}

func parseQuad(fields []string) ([2]pairKey, error) {
	nums := make([]int, 4)
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return [2]pairKey{}, errors.Wrapf(store.ErrMalformed, "field %q: %v", f, err)
		}
		nums[i] = n
	}
	return [2]pairKey{{nums[0], nums[1]}, {nums[2], nums[3]}}, nil
}

// CoresByNodes returns every core triad with exactly n nodes.
func CoresByNodes(n int, cache *store.Cache) ([]*Triad, error) {
	return cores(n, ByNodes, cache)
}

// CoresByLength returns every core triad whose longest arm has length n.
func CoresByLength(n int, cache *store.Cache) ([]*Triad, error) {
	return cores(n, ByLength, cache)
}

func cores(n int, cons Constraint, cache *store.Cache) ([]*Triad, error) {
	key := fmt.Sprintf("%s/cores_%d", cons.String(), n)

	if lines, err := cache.ReadLines(key); err == nil {
		triads := make([]*Triad, 0, len(lines))
		for _, line := range lines {
			t, perr := FromString(line)
			if perr != nil {
				return nil, errors.Wrapf(store.ErrMalformed, "cores cache line %q: %v", line, perr)
			}
			triads = append(triads, t)
		}
		return triads, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	armList, err := RootedCoreArms(cons.MaxArmLength(n), cache)
	if err != nil {
		return nil, err
	}
	pc := newPairCache(cache)
	if err := pc.populateTo(n, armList, cons); err != nil {
		return nil, err
	}

	triplets := cons.Triplets(n)
	results := make(chan *Triad, len(triplets))
	workers := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once

	for _, triplet := range triplets {
		i, j, k := triplet[0], triplet[1], triplet[2]
		wg.Add(1)
		workers <- struct{}{}
		go func(i, j, k int) {
			defer wg.Done()
			defer func() { <-workers }()
			for a, arm1 := range armList[i] {
				for b, arm2 := range armList[j] {
					for c, arm3 := range armList[k] {
						if tooManyBackwardArms(arm1, arm2, arm3) {
							continue
						}
						if pc.cached(pairKey{i, a}, pairKey{j, b}, pairKey{k, c}) {
							continue
						}
						t := FromArms(arm1, arm2, arm3)
						if t.IsCore() {
							if werr := cache.AppendLine(key, t.String()); werr != nil {
								errOnce.Do(func() { firstErr = werr })
							}
							results <- t
						}
					}
				}
			}
		}(i, j, k)
	}
	wg.Wait()
	close(results)
	if firstErr != nil {
		return nil, firstErr
	}

	var triads []*Triad
	for t := range results {
		triads = append(triads, t)
	}
	return triads, nil
}

// tooManyBackwardArms reports whether more than one of the given arms
// starts with a backward ('1') edge — such a triad can never be a core,
// per original_source/src/triad.rs's count-of-leading-'1' filter.
func tooManyBackwardArms(arms ...string) bool {
	count := 0
	for _, arm := range arms {
		if strings.HasPrefix(arm, "1") {
			count++
		}
	}
	return count > 1
}
