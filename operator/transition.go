// SPDX-License-Identifier: MIT
// Package operator: site-local transition operators.

package operator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Transitions is a bitmask of transition directions mediated by a dipole
// interaction: Lower de-excites the system, Raise excites it.
type Transitions uint8

const (
	// Lower selects the de-exciting ("-") part of the transition operator.
	Lower Transitions = 1 << iota

	// Raise selects the exciting ("+") part of the transition operator.
	Raise
)

// ParseTransitions parses a direction string drawn from "-" and "+",
// e.g. "-", "+", "-+" or "+-". Repetition or unknown characters return
// ErrBadTransitions. Complexity: O(len(s)).
func ParseTransitions(s string) (Transitions, error) {
	if s == "" {
		return 0, fmt.Errorf("empty transitions: %w", ErrBadTransitions)
	}
	var ts Transitions
	for _, r := range s {
		var d Transitions
		switch r {
		case '-':
			d = Lower
		case '+':
			d = Raise
		default:
			return 0, fmt.Errorf("unknown direction %q: %w", r, ErrBadTransitions)
		}
		if ts.Has(d) {
			return 0, fmt.Errorf("repeated direction %q: %w", r, ErrBadTransitions)
		}
		ts |= d
	}

	return ts, nil
}

// Has reports whether every direction in d is included in ts.
func (ts Transitions) Has(d Transitions) bool { return ts&d == d }

// Transition builds the transition operator for site within an nSites-site
// system, restricted to the given subspace and directions. The raising part
// connects adjacent manifolds only:
//
//	|site>      <- |g>   with unit amplitude        (needs g and e)
//	|{site,j}>  <- |j>   for every other site j     (needs e and f)
//
// and the lowering part is its transpose. Directions not selected by ts are
// omitted, so Transition(n, N, ss, Lower|Raise) is symmetric.
// Stage 1 (Validate): site in range, directions non-empty, subspace holding
// at least one basis state for the system size.
// Stage 2 (Execute): place unit amplitudes at canonical block offsets.
// Complexity: O(N^2) for the zeroed target, N = ss.NStates(nSites).
func Transition(site, nSites int, ss Subspace, ts Transitions) (*mat.Dense, error) {
	if nSites <= 0 || site < 0 || site >= nSites {
		return nil, fmt.Errorf("Transition(%d,%d): %w", site, nSites, ErrIndexOutOfRange)
	}
	if ss == 0 {
		return nil, fmt.Errorf("Transition: %w", ErrBadSubspace)
	}
	if ts == 0 {
		return nil, fmt.Errorf("Transition: %w", ErrBadTransitions)
	}
	n := ss.NStates(nSites)
	if n == 0 {
		return nil, fmt.Errorf("Transition: subspace %q of a %d-site system: %w", ss, nSites, ErrEmptySubspace)
	}

	out := mat.NewDense(n, n, nil)
	og, oe, of := ss.blockOffsets(nSites)

	// raise writes a unit amplitude |to><from| and, when requested, its
	// lowering mirror |from><to|.
	raise := func(to, from int) {
		if ts.Has(Raise) {
			out.Set(to, from, out.At(to, from)+1)
		}
		if ts.Has(Lower) {
			out.Set(from, to, out.At(from, to)+1)
		}
	}

	// g <-> e: promote the ground state to |site>.
	if og >= 0 && oe >= 0 {
		raise(oe+site, og)
	}
	// e <-> f: promote |j> to the pair {site, j}.
	if oe >= 0 && of >= 0 {
		for j := 0; j < nSites; j++ {
			if j == site {
				continue
			}
			lo, hi := site, j
			if lo > hi {
				lo, hi = hi, lo
			}
			raise(of+pairIndex(lo, hi, nSites), oe+j)
		}
	}

	return out, nil
}
