// SPDX-License-Identifier: MIT
// Package hamiltonian: the Hamiltonian contract and its derived quantities.
//
// The derived surface (Eig, E, U, NStates, MeanExcitationFreq, FreqStep,
// TimeStep) is computable from H alone and is implemented once in the
// unexported spectral helper that both concrete variants embed. Selection
// between variants is by interface dispatch, never by shared mutable state.

package hamiltonian

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// hermitianTol is the absolute tolerance under which a matrix is accepted as
// real symmetric by the eigensolver front-end.
const hermitianTol = 1e-9

// Hamiltonian is the capability set every variant implements.
//
// Subspace arguments are canonical labels over {g, e, f} (see the operator
// package). All queries are synchronous, memoized per instance and argument
// value, and safe for concurrent use; returned matrices are shared with the
// cache and must be treated as read-only.
type Hamiltonian interface {
	// H returns the system Hamiltonian restricted to the given subspace.
	H(subspace string) (*mat.Dense, error)

	// GroundState returns the ground configuration in the given subspace as
	// a density matrix (Hermitian, positive semi-definite, trace 1 whenever
	// the ground manifold is included).
	GroundState(subspace string) (*mat.Dense, error)

	// InRotatingFrame returns a new Hamiltonian for the same physical system
	// shifted into a frame rotating at the configured frequency.
	InRotatingFrame(cfg RotatingFrameConfig) (Hamiltonian, error)

	// DipoleOperator returns the operator mediating light-matter coupling
	// for the given query, or ErrUndefinedDipole when no dipole moments were
	// configured.
	DipoleOperator(q DipoleQuery) (*mat.Dense, error)

	// SystemBathCouplings returns one coupling operator per independent bath
	// degree of freedom, or ErrUndefinedBath when no bath was configured.
	SystemBathCouplings(subspace string) ([]*mat.Dense, error)

	// Eig returns the memoized Hermitian eigensystem of H(subspace).
	Eig(subspace string) (*EigenSystem, error)

	// E returns the ascending eigenvalues of H(subspace).
	E(subspace string) ([]float64, error)

	// U returns the matrix transforming H(subspace) from the site basis to
	// the energy eigenbasis (eigenvectors in columns).
	U(subspace string) (*mat.Dense, error)

	// NStates returns the dimension of H(subspace).
	NStates(subspace string) (int, error)

	// MeanExcitationFreq is the mean eigenvalue of the singly-excited-only
	// subspace plus the energy offset.
	MeanExcitationFreq() (float64, error)

	// FreqStep is the Nyquist sampling rate resolving all frequencies of
	// the full gef spectrum, padded by the energy-spread extra.
	FreqStep() (float64, error)

	// TimeStep is the reciprocal of FreqStep.
	TimeStep() (float64, error)

	// EnergyOffset is the constant offset of the diagonal energies from the
	// ground-state energy.
	EnergyOffset() float64

	// EnergySpreadExtra is the padding frequency used by FreqStep.
	EnergySpreadExtra() float64
}

// spectral implements the derived surface of the Hamiltonian contract from
// the owner's H alone, with a per-subspace eigensystem cache.
//
// The cache follows the package-wide memoization discipline: concurrent first
// calls may each run the eigensolve, LoadOrStore keeps exactly one result.
type spectral struct {
	owner Hamiltonian
	eigs  sync.Map // canonical subspace label -> *EigenSystem
}

// bind wires the embedding instance back into the helper. Constructors call
// it exactly once, before the instance escapes.
func (s *spectral) bind(owner Hamiltonian) { s.owner = owner }

// Eig returns the eigensystem of H(subspace): ascending eigenvalues paired
// with orthonormal eigenvectors. Memoized per subspace.
// Complexity: O(N^3) on first call per subspace, O(1) after.
func (s *spectral) Eig(subspace string) (*EigenSystem, error) {
	if v, ok := s.eigs.Load(subspace); ok {
		return v.(*EigenSystem), nil
	}
	hm, err := s.owner.H(subspace)
	if err != nil {
		return nil, err
	}
	es, err := eigh(hm)
	if err != nil {
		return nil, fmt.Errorf("Eig(%q): %w", subspace, err)
	}
	v, _ := s.eigs.LoadOrStore(subspace, es)

	return v.(*EigenSystem), nil
}

// E returns the ascending eigenvalues of H(subspace).
func (s *spectral) E(subspace string) ([]float64, error) {
	es, err := s.Eig(subspace)
	if err != nil {
		return nil, err
	}

	return es.Values, nil
}

// U returns the site-to-eigenbasis transformation of H(subspace).
func (s *spectral) U(subspace string) (*mat.Dense, error) {
	es, err := s.Eig(subspace)
	if err != nil {
		return nil, err
	}

	return es.Vectors, nil
}

// NStates returns the dimension of H(subspace).
func (s *spectral) NStates(subspace string) (int, error) {
	hm, err := s.owner.H(subspace)
	if err != nil {
		return 0, err
	}
	n, _ := hm.Dims()

	return n, nil
}

// MeanExcitationFreq is the mean singly-excited eigenvalue plus the offset.
func (s *spectral) MeanExcitationFreq() (float64, error) {
	vals, err := s.E("e")
	if err != nil {
		return 0, err
	}

	return stat.Mean(vals, nil) + s.owner.EnergyOffset(), nil
}

// FreqStep is the Nyquist rate over the full gef spectrum:
// 2 * (max(E) - min(E) + EnergySpreadExtra).
//
// If this frequency is very high, transform to the rotating frame first.
func (s *spectral) FreqStep() (float64, error) {
	vals, err := s.E("gef")
	if err != nil {
		return 0, err
	}
	span := floats.Max(vals) - floats.Min(vals)

	return 2 * (span + s.owner.EnergySpreadExtra()), nil
}

// TimeStep is the reciprocal of FreqStep.
func (s *spectral) TimeStep() (float64, error) {
	fs, err := s.FreqStep()
	if err != nil {
		return 0, err
	}

	return 1 / fs, nil
}

// eigh solves the real symmetric eigenproblem of m.
// Stage 1 (Validate): m square and symmetric within hermitianTol.
// Stage 2 (Execute): gonum EigenSym factorization (eigenvalues ascending).
// Complexity: O(N^3).
func eigh(m *mat.Dense) (*EigenSystem, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("eigh(%dx%d): %w", r, c, ErrBadShape)
	}
	sym := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			d := m.At(i, j) - m.At(j, i)
			if d > hermitianTol || d < -hermitianTol {
				return nil, fmt.Errorf("asymmetry %g at (%d,%d): %w", d, i, j, ErrNotHermitian)
			}
			sym.SetSym(i, j, m.At(i, j))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, ErrEigenFailed
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return &EigenSystem{Values: es.Values(nil), Vectors: &vecs}, nil
}
