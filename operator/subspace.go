// SPDX-License-Identifier: MIT
// Package operator: electronic subspace labels.
// A Subspace is a set of electronic manifolds drawn from {g, e, f}. Labels are
// parsed strictly in canonical order so that every represented operator has a
// single, unambiguous basis ordering: g-block, e-block, f-block.

package operator

import "fmt"

// Subspace is a bitmask of electronic manifolds.
// The zero value is the empty (invalid) subspace.
type Subspace uint8

const (
	// Ground selects the single zero-energy ground state.
	Ground Subspace = 1 << iota

	// Single selects the n singly-excited (1-exciton) states.
	Single

	// Double selects the n(n-1)/2 doubly-excited (2-exciton) states.
	Double
)

// ParseSubspace parses a canonical subspace label such as "g", "ge" or "gef".
// Letters must be drawn from {g, e, f}, appear at most once, and appear in
// canonical order g < e < f; anything else returns ErrBadSubspace.
// Complexity: O(len(s)).
func ParseSubspace(s string) (Subspace, error) {
	if s == "" {
		return 0, fmt.Errorf("empty label: %w", ErrBadSubspace)
	}
	var ss Subspace
	last := Subspace(0)
	for _, r := range s {
		var block Subspace
		switch r {
		case 'g':
			block = Ground
		case 'e':
			block = Single
		case 'f':
			block = Double
		default:
			return 0, fmt.Errorf("unknown letter %q: %w", r, ErrBadSubspace)
		}
		// Canonical order also rules out duplicates.
		if block <= last {
			return 0, fmt.Errorf("label %q not in canonical g<e<f order: %w", s, ErrBadSubspace)
		}
		last = block
		ss |= block
	}

	return ss, nil
}

// Has reports whether every manifold in b is included in ss.
func (ss Subspace) Has(b Subspace) bool { return ss&b == b }

// String returns the canonical label of ss ("", "g", "ge", "gef", ...).
func (ss Subspace) String() string {
	var s string
	if ss.Has(Ground) {
		s += "g"
	}
	if ss.Has(Single) {
		s += "e"
	}
	if ss.Has(Double) {
		s += "f"
	}

	return s
}

// NStates returns the dimension of ss for a system of nSites sites:
// 1 for g, nSites for e, and nSites*(nSites-1)/2 for f, summed over the
// included manifolds. Complexity: O(1).
func (ss Subspace) NStates(nSites int) int {
	n := 0
	if ss.Has(Ground) {
		n++
	}
	if ss.Has(Single) {
		n += nSites
	}
	if ss.Has(Double) {
		n += nSites * (nSites - 1) / 2
	}

	return n
}

// blockOffsets returns the starting row/column of the g, e and f blocks of ss
// for a system of nSites sites. An excluded block reports -1.
func (ss Subspace) blockOffsets(nSites int) (og, oe, of int) {
	og, oe, of = -1, -1, -1
	next := 0
	if ss.Has(Ground) {
		og = next
		next++
	}
	if ss.Has(Single) {
		oe = next
		next += nSites
	}
	if ss.Has(Double) {
		of = next
	}

	return og, oe, of
}

// pairIndex maps a site pair (i, j) with i < j onto its lexicographic index
// in the f-manifold basis of an nSites-site system.
func pairIndex(i, j, nSites int) int {
	return i*nSites - i*(i+1)/2 + (j - i - 1)
}

// sitePairs enumerates the f-manifold basis: all (i, j) with i < j, in
// lexicographic order. Complexity: O(n^2).
func sitePairs(nSites int) [][2]int {
	ps := make([][2]int, 0, nSites*(nSites-1)/2)
	for i := 0; i < nSites; i++ {
		for j := i + 1; j < nSites; j++ {
			ps = append(ps, [2]int{i, j})
		}
	}

	return ps
}
