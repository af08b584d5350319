// SPDX-License-Identifier: MIT
// Package hamiltonian: the electronic (Frenkel exciton) realization.

package hamiltonian

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vibron/bath"
	"github.com/katalvlaran/vibron/operator"
	"github.com/katalvlaran/vibron/polarization"
)

// DefaultEnergySpreadExtra is the padding added to the eigenvalue span when
// deriving the frequency step automatically.
const DefaultEnergySpreadExtra = 100.0

// ElectronicHamiltonian models an electronic system with optional coupling to
// an external field (per-site dipole moments) and an identical local bath at
// each site. Instances are immutable; construct them with NewElectronic.
type ElectronicHamiltonian struct {
	spectral

	h1exc   *mat.Dense // 1-excitation Hamiltonian, nSites x nSites, symmetric
	offset  float64    // diagonal offset from the ground-state energy
	b       bath.Bath  // optional
	dipoles *mat.Dense // optional, nSites x 3
	spread  float64    // FreqStep padding

	hs      sync.Map // subspace label -> *mat.Dense
	grounds sync.Map // subspace label -> *mat.Dense
	frames  sync.Map // resolved frequency -> *ElectronicHamiltonian
}

// ElectronicOption configures an ElectronicHamiltonian before validation.
type ElectronicOption func(*ElectronicHamiltonian)

// WithEnergyOffset sets the constant offset of the diagonal entries of the
// 1-excitation Hamiltonian from the ground-state energy.
func WithEnergyOffset(offset float64) ElectronicOption {
	return func(h *ElectronicHamiltonian) { h.offset = offset }
}

// WithBath attaches a thermal bath; each site couples linearly to an
// identical bath of this form.
func WithBath(b bath.Bath) ElectronicOption {
	return func(h *ElectronicHamiltonian) { h.b = b }
}

// WithDipoles attaches one transition dipole vector per site as an
// nSites x 3 matrix. The matrix is copied.
func WithDipoles(d *mat.Dense) ElectronicOption {
	return func(h *ElectronicHamiltonian) {
		if d != nil {
			h.dipoles = mat.DenseCopyOf(d)
		}
	}
}

// WithEnergySpread overrides DefaultEnergySpreadExtra in FreqStep.
func WithEnergySpread(extra float64) ElectronicOption {
	return func(h *ElectronicHamiltonian) { h.spread = extra }
}

// NewElectronic validates and builds an immutable ElectronicHamiltonian.
// Stage 1 (Validate): h1exc non-nil, square, symmetric within tolerance.
// Stage 2 (Prepare): copy inputs, apply options.
// Stage 3 (Validate): dipole table shape against the site count.
// Complexity: O(n^2).
func NewElectronic(h1exc *mat.Dense, opts ...ElectronicOption) (*ElectronicHamiltonian, error) {
	if h1exc == nil {
		return nil, fmt.Errorf("NewElectronic: %w", ErrNilMatrix)
	}
	r, c := h1exc.Dims()
	if r != c {
		return nil, fmt.Errorf("NewElectronic(%dx%d): %w", r, c, ErrBadShape)
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			d := h1exc.At(i, j) - h1exc.At(j, i)
			if d > hermitianTol || d < -hermitianTol {
				return nil, fmt.Errorf("NewElectronic: asymmetry at (%d,%d): %w", i, j, ErrNotHermitian)
			}
		}
	}

	h := &ElectronicHamiltonian{
		h1exc:  mat.DenseCopyOf(h1exc),
		spread: DefaultEnergySpreadExtra,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.dipoles != nil {
		dr, dc := h.dipoles.Dims()
		if dr != r || dc != 3 {
			return nil, fmt.Errorf("NewElectronic: dipoles %dx%d for %d sites: %w", dr, dc, r, ErrBadShape)
		}
	}
	h.bind(h)

	return h, nil
}

// NSites returns the number of electronic sites.
func (h *ElectronicHamiltonian) NSites() int {
	n, _ := h.h1exc.Dims()

	return n
}

// EnergyOffset returns the diagonal offset from the ground-state energy.
func (h *ElectronicHamiltonian) EnergyOffset() float64 { return h.offset }

// EnergySpreadExtra returns the FreqStep padding frequency.
func (h *ElectronicHamiltonian) EnergySpreadExtra() float64 { return h.spread }

// Bath returns the attached bath, or nil when none was configured.
func (h *ElectronicHamiltonian) Bath() bath.Bath { return h.b }

// H returns the 1-excitation Hamiltonian block-extended into the requested
// subspace. Memoized per subspace.
func (h *ElectronicHamiltonian) H(subspace string) (*mat.Dense, error) {
	ss, err := operator.ParseSubspace(subspace)
	if err != nil {
		return nil, err
	}
	key := ss.String()
	if v, ok := h.hs.Load(key); ok {
		return v.(*mat.Dense), nil
	}
	m, err := operator.Extend(h.h1exc, ss)
	if err != nil {
		return nil, err
	}
	v, _ := h.hs.LoadOrStore(key, m)

	return v.(*mat.Dense), nil
}

// GroundState returns the pure ground-state density matrix in the requested
// subspace: a single 1 at the ground basis position when the subspace
// includes the ground manifold, all zero otherwise. Memoized per subspace.
func (h *ElectronicHamiltonian) GroundState(subspace string) (*mat.Dense, error) {
	ss, err := operator.ParseSubspace(subspace)
	if err != nil {
		return nil, err
	}
	key := ss.String()
	if v, ok := h.grounds.Load(key); ok {
		return v.(*mat.Dense), nil
	}
	n := ss.NStates(h.NSites())
	if n == 0 {
		return nil, fmt.Errorf("GroundState(%q): %w", key, operator.ErrEmptySubspace)
	}
	state := mat.NewDense(n, n, nil)
	if ss.Has(operator.Ground) {
		state.Set(0, 0, 1)
	}
	v, _ := h.grounds.LoadOrStore(key, state)

	return v.(*mat.Dense), nil
}

// resolveRotatingFreq turns a RotatingFrameConfig into a concrete frequency,
// defaulting to the mean excitation frequency. The resolved value is also the
// memoization key, so the default config and the equivalent explicit
// frequency share one cache slot.
func (h *ElectronicHamiltonian) resolveRotatingFreq(cfg RotatingFrameConfig) (float64, error) {
	if cfg.UseMean {
		return h.MeanExcitationFreq()
	}

	return cfg.Freq, nil
}

// InRotatingFrame returns a new ElectronicHamiltonian shifted into the frame
// rotating at the configured frequency: the 1-excitation diagonal is lowered
// by (freq - EnergyOffset) and the new offset becomes freq. Bath, dipoles and
// the energy-spread padding carry over unchanged. Memoized per resolved
// frequency.
func (h *ElectronicHamiltonian) InRotatingFrame(cfg RotatingFrameConfig) (Hamiltonian, error) {
	freq, err := h.resolveRotatingFreq(cfg)
	if err != nil {
		return nil, err
	}
	if v, ok := h.frames.Load(freq); ok {
		return v.(*ElectronicHamiltonian), nil
	}

	shift := freq - h.offset
	shifted := mat.DenseCopyOf(h.h1exc)
	for i := 0; i < h.NSites(); i++ {
		shifted.Set(i, i, shifted.At(i, i)-shift)
	}
	next := &ElectronicHamiltonian{
		h1exc:   shifted,
		offset:  freq,
		b:       h.b,
		dipoles: h.dipoles,
		spread:  h.spread,
	}
	next.bind(next)
	v, _ := h.frames.LoadOrStore(freq, next)

	return v.(*ElectronicHamiltonian), nil
}

// DipoleOperator contracts the per-site transition operators with the site
// dipole vectors and the requested unit polarization:
//
//	V = sum_n (d_n . e_pol) T_n(subspace, transitions)
//
// Returns ErrUndefinedDipole when no dipole moments were configured.
func (h *ElectronicHamiltonian) DipoleOperator(q DipoleQuery) (*mat.Dense, error) {
	if h.dipoles == nil {
		return nil, ErrUndefinedDipole
	}
	ss, err := operator.ParseSubspace(q.Subspace)
	if err != nil {
		return nil, err
	}
	ts, err := operator.ParseTransitions(q.Transitions)
	if err != nil {
		return nil, err
	}
	pol, err := polarization.Vector(q.Polarization)
	if err != nil {
		return nil, err
	}

	n := ss.NStates(h.NSites())
	if n == 0 {
		return nil, fmt.Errorf("DipoleOperator(%q): %w", ss, operator.ErrEmptySubspace)
	}
	out := mat.NewDense(n, n, nil)
	var scaled mat.Dense
	for site := 0; site < h.NSites(); site++ {
		tr, err := operator.Transition(site, h.NSites(), ss, ts)
		if err != nil {
			return nil, err
		}
		w := h.dipoles.At(site, 0)*pol[0] +
			h.dipoles.At(site, 1)*pol[1] +
			h.dipoles.At(site, 2)*pol[2]
		scaled.Scale(w, tr)
		out.Add(out, &scaled)
	}

	return out, nil
}

// NumberOperator returns the occupation operator of one site extended to the
// requested subspace: diagonal, 1 on every basis state in which the site is
// excited.
func (h *ElectronicHamiltonian) NumberOperator(site int, subspace string) (*mat.Dense, error) {
	ss, err := operator.ParseSubspace(subspace)
	if err != nil {
		return nil, err
	}
	v, err := operator.UnitVec(site, h.NSites())
	if err != nil {
		return nil, err
	}
	diag := mat.NewDense(h.NSites(), h.NSites(), nil)
	for i, x := range v {
		diag.Set(i, i, x)
	}

	return operator.Extend(diag, ss)
}

// SystemBathCouplings returns one number operator per site, the local
// dephasing (Holstein) coupling model. Returns ErrUndefinedBath when no bath
// was configured.
func (h *ElectronicHamiltonian) SystemBathCouplings(subspace string) ([]*mat.Dense, error) {
	if h.b == nil {
		return nil, ErrUndefinedBath
	}
	ops := make([]*mat.Dense, h.NSites())
	for site := range ops {
		op, err := h.NumberOperator(site, subspace)
		if err != nil {
			return nil, err
		}
		ops[site] = op
	}

	return ops, nil
}
