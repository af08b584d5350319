// SPDX-License-Identifier: MIT
// Package operator: block extension of 1-excitation operators.

package operator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Extend lifts a 1-excitation operator m (nSites x nSites) into the requested
// electronic subspace as a block-diagonal matrix over the included manifolds:
//
//	g block: a single zero entry (the ground state carries no 1-exciton energy)
//	e block: m unchanged
//	f block: the hard-core boson lift of m over site pairs (see package doc)
//
// Stage 1 (Validate): m non-nil and square; ss holds at least one basis state
// for the system size (a 1-site f manifold is empty, ErrEmptySubspace).
// Stage 2 (Prepare): allocate the NxN target, N = ss.NStates(nSites).
// Stage 3 (Execute): write the e and f blocks at their canonical offsets.
// Complexity: O(n^4) dominated by the f block (n^2/2 pairs squared).
func Extend(m *mat.Dense, ss Subspace) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Extend: %w", ErrNilOperator)
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("Extend(%dx%d): %w", r, c, ErrNonSquare)
	}
	if ss == 0 {
		return nil, fmt.Errorf("Extend: %w", ErrBadSubspace)
	}
	nSites := r
	n := ss.NStates(nSites)
	if n == 0 {
		return nil, fmt.Errorf("Extend: subspace %q of a %d-site system: %w", ss, nSites, ErrEmptySubspace)
	}

	out := mat.NewDense(n, n, nil)
	_, oe, of := ss.blockOffsets(nSites)

	// e block: copy m verbatim.
	if oe >= 0 {
		for i := 0; i < nSites; i++ {
			for j := 0; j < nSites; j++ {
				out.Set(oe+i, oe+j, m.At(i, j))
			}
		}
	}

	// f block: hard-core boson lift over lexicographic site pairs.
	if of >= 0 {
		ps := sitePairs(nSites)
		for p, ij := range ps {
			for q, kl := range ps {
				out.Set(of+p, of+q, pairElement(m, ij, kl))
			}
		}
	}

	return out, nil
}

// pairElement returns the f-block matrix element between pairs ij and kl
// under the documented convention. Both pairs are sorted (i < j, k < l).
func pairElement(m *mat.Dense, ij, kl [2]int) float64 {
	i, j := ij[0], ij[1]
	k, l := kl[0], kl[1]
	switch {
	case i == k && j == l:
		return m.At(i, i) + m.At(j, j)
	case i == k:
		return m.At(j, l)
	case j == l:
		return m.At(i, k)
	case j == k:
		return m.At(i, l)
	case i == l:
		return m.At(j, k)
	default:
		return 0 // disjoint pairs are uncoupled
	}
}

// UnitVec returns the length-n standard basis vector with a 1 at index i.
// Complexity: O(n).
func UnitVec(i, n int) ([]float64, error) {
	if n <= 0 || i < 0 || i >= n {
		return nil, fmt.Errorf("UnitVec(%d,%d): %w", i, n, ErrIndexOutOfRange)
	}
	v := make([]float64, n)
	v[i] = 1

	return v, nil
}
