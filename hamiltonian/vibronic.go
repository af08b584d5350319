// SPDX-License-Identifier: MIT
// Package hamiltonian: the vibronic realization.
//
// VibronicHamiltonian composes (never inherits) an ElectronicHamiltonian with
// explicit truncated vibrational modes. In every tensor product the
// electronic factor precedes the vibrational factor.

package hamiltonian

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vibron/operator"
)

// VibronicHamiltonian extends an electronic Hamiltonian with K explicit
// vibrational modes, linearly coupled to electronic site occupation:
//
//	H = H_el ⊗ I_vib + I_el ⊗ H_vib + sum_{n,m} c_nm |n><n| ⊗ (b_m + b_m†)
//
// Instances are immutable; construct them with NewVibronic.
type VibronicHamiltonian struct {
	spectral

	electronic  *ElectronicHamiltonian
	levels      []int      // truncation per mode
	vibEnergies []float64  // energy per mode
	couplings   *mat.Dense // nSites x K site-mode couplings

	nVibStates int // product of levels

	vibOnce sync.Once
	hVib    *mat.Dense
	vibErr  error

	hs      sync.Map // subspace label -> *mat.Dense
	grounds sync.Map // subspace label -> *mat.Dense
	frames  sync.Map // resolved frequency -> *VibronicHamiltonian
}

// NewVibronic validates and builds an immutable VibronicHamiltonian over the
// given electronic Hamiltonian.
// Stage 1 (Validate): electronic non-nil; one level count and one energy per
// mode; positive truncations; couplings shaped nSites x K.
// Stage 2 (Prepare): copy the per-mode tables.
// Complexity: O(n*K).
func NewVibronic(electronic *ElectronicHamiltonian, levels []int, vibEnergies []float64, couplings *mat.Dense) (*VibronicHamiltonian, error) {
	if electronic == nil {
		return nil, fmt.Errorf("NewVibronic: %w", ErrNilElectronic)
	}
	if len(levels) != len(vibEnergies) {
		return nil, fmt.Errorf("NewVibronic: %d level counts vs %d energies: %w",
			len(levels), len(vibEnergies), ErrBadShape)
	}
	if couplings == nil {
		return nil, fmt.Errorf("NewVibronic: couplings: %w", ErrNilMatrix)
	}
	cr, cc := couplings.Dims()
	if cr != electronic.NSites() || cc != len(levels) {
		return nil, fmt.Errorf("NewVibronic: couplings %dx%d for %d sites, %d modes: %w",
			cr, cc, electronic.NSites(), len(levels), ErrBadShape)
	}
	nVib := 1
	for m, lv := range levels {
		if lv <= 0 {
			return nil, fmt.Errorf("NewVibronic: mode %d has %d levels: %w", m, lv, ErrBadShape)
		}
		nVib *= lv
	}

	v := &VibronicHamiltonian{
		electronic:  electronic,
		levels:      append([]int(nil), levels...),
		vibEnergies: append([]float64(nil), vibEnergies...),
		couplings:   mat.DenseCopyOf(couplings),
		nVibStates:  nVib,
	}
	v.bind(v)

	return v, nil
}

// Electronic returns the wrapped electronic Hamiltonian.
func (v *VibronicHamiltonian) Electronic() *ElectronicHamiltonian { return v.electronic }

// NSites returns the number of electronic sites.
func (v *VibronicHamiltonian) NSites() int { return v.electronic.NSites() }

// NVibrationalStates returns the dimension of the joint vibrational space,
// the product of all mode truncations.
func (v *VibronicHamiltonian) NVibrationalStates() int { return v.nVibStates }

// EnergyOffset returns the wrapped electronic Hamiltonian's offset.
func (v *VibronicHamiltonian) EnergyOffset() float64 { return v.electronic.EnergyOffset() }

// EnergySpreadExtra returns the wrapped electronic Hamiltonian's padding.
func (v *VibronicHamiltonian) EnergySpreadExtra() float64 { return v.electronic.EnergySpreadExtra() }

// HVibrational returns the Hamiltonian of the explicit vibrations: the sum
// over modes of the mode energy times its number operator, each embedded into
// the joint vibrational space. Computed once per instance.
// Complexity: O(K * D^2), D = NVibrationalStates.
func (v *VibronicHamiltonian) HVibrational() (*mat.Dense, error) {
	v.vibOnce.Do(func() {
		out := mat.NewDense(v.nVibStates, v.nVibStates, nil)
		var tmp mat.Dense
		for m, lv := range v.levels {
			num := mat.NewDense(lv, lv, nil)
			for k := 0; k < lv; k++ {
				num.Set(k, k, float64(k))
			}
			emb, err := operator.ExtendVib(v.levels, m, num)
			if err != nil {
				v.vibErr = err

				return
			}
			tmp.Scale(v.vibEnergies[m], emb)
			out.Add(out, &tmp)
			tmp.Reset()
		}
		v.hVib = out
	})

	return v.hVib, v.vibErr
}

// HElectronicVibrational returns the linear vibronic coupling term
// sum_{n,m} c_nm |n><n| ⊗ (b_m + b_m†) in the requested electronic subspace.
// Complexity: O(n * K * (NEl*D)^2).
func (v *VibronicHamiltonian) HElectronicVibrational(subspace string) (*mat.Dense, error) {
	ss, err := operator.ParseSubspace(subspace)
	if err != nil {
		return nil, err
	}

	// Mode displacement operators b + b†, embedded into the joint space.
	disps := make([]*mat.Dense, len(v.levels))
	for m, lv := range v.levels {
		up, err := operator.VibCreate(lv)
		if err != nil {
			return nil, err
		}
		down, err := operator.VibAnnihilate(lv)
		if err != nil {
			return nil, err
		}
		var disp mat.Dense
		disp.Add(down, up)
		emb, err := operator.ExtendVib(v.levels, m, &disp)
		if err != nil {
			return nil, err
		}
		disps[m] = emb
	}

	nEl := ss.NStates(v.NSites())
	if nEl == 0 {
		return nil, fmt.Errorf("HElectronicVibrational(%q): %w", ss, operator.ErrEmptySubspace)
	}
	dim := nEl * v.nVibStates
	out := mat.NewDense(dim, dim, nil)
	var tmp mat.Dense
	for site := 0; site < v.NSites(); site++ {
		elNum, err := v.electronic.NumberOperator(site, subspace)
		if err != nil {
			return nil, err
		}
		for m := range v.levels {
			prod, err := operator.Tensor(elNum, disps[m])
			if err != nil {
				return nil, err
			}
			tmp.Scale(v.couplings.At(site, m), prod)
			out.Add(out, &tmp)
			tmp.Reset()
		}
	}

	return out, nil
}

// H returns the full system Hamiltonian in the requested electronic
// subspace: the embedded electronic part, the embedded vibrational part and
// the vibronic coupling. Memoized per subspace.
func (v *VibronicHamiltonian) H(subspace string) (*mat.Dense, error) {
	ss, err := operator.ParseSubspace(subspace)
	if err != nil {
		return nil, err
	}
	key := ss.String()
	if cached, ok := v.hs.Load(key); ok {
		return cached.(*mat.Dense), nil
	}

	elH, err := v.electronic.H(key)
	if err != nil {
		return nil, err
	}
	elPart, err := v.ElToSysOperator(elH)
	if err != nil {
		return nil, err
	}
	hVib, err := v.HVibrational()
	if err != nil {
		return nil, err
	}
	vibPart, err := v.VibToSysOperator(hVib, key)
	if err != nil {
		return nil, err
	}
	coupling, err := v.HElectronicVibrational(key)
	if err != nil {
		return nil, err
	}

	elPart.Add(elPart, vibPart)
	elPart.Add(elPart, coupling)
	cached, _ := v.hs.LoadOrStore(key, elPart)

	return cached.(*mat.Dense), nil
}

// GroundState returns the electronic ground state tensored with the thermal
// (Boltzmann) state of the explicit vibrations at the bath temperature.
// Returns ErrUndefinedBath when no bath was configured. Memoized per
// subspace.
func (v *VibronicHamiltonian) GroundState(subspace string) (*mat.Dense, error) {
	ss, err := operator.ParseSubspace(subspace)
	if err != nil {
		return nil, err
	}
	key := ss.String()
	if cached, ok := v.grounds.Load(key); ok {
		return cached.(*mat.Dense), nil
	}
	if v.electronic.Bath() == nil {
		return nil, ErrUndefinedBath
	}

	elG, err := v.electronic.GroundState(key)
	if err != nil {
		return nil, err
	}
	hVib, err := v.HVibrational()
	if err != nil {
		return nil, err
	}
	rho, err := ThermalState(hVib, v.electronic.Bath().Temperature())
	if err != nil {
		return nil, err
	}
	state, err := operator.Tensor(elG, rho)
	if err != nil {
		return nil, err
	}
	cached, _ := v.grounds.LoadOrStore(key, state)

	return cached.(*mat.Dense), nil
}

// InRotatingFrame delegates the frame shift to the wrapped electronic
// Hamiltonian and rewraps the result with identical vibrational fields.
// Memoized per resolved frequency.
func (v *VibronicHamiltonian) InRotatingFrame(cfg RotatingFrameConfig) (Hamiltonian, error) {
	freq, err := v.electronic.resolveRotatingFreq(cfg)
	if err != nil {
		return nil, err
	}
	if cached, ok := v.frames.Load(freq); ok {
		return cached.(*VibronicHamiltonian), nil
	}

	shifted, err := v.electronic.InRotatingFrame(RotatingFrameAt(freq))
	if err != nil {
		return nil, err
	}
	next, err := NewVibronic(shifted.(*ElectronicHamiltonian), v.levels, v.vibEnergies, v.couplings)
	if err != nil {
		return nil, err
	}
	cached, _ := v.frames.LoadOrStore(freq, next)

	return cached.(*VibronicHamiltonian), nil
}

// ElToSysOperator embeds an electronic-space operator into the full system
// space by tensoring with the vibrational identity.
func (v *VibronicHamiltonian) ElToSysOperator(op mat.Matrix) (*mat.Dense, error) {
	if op == nil {
		return nil, fmt.Errorf("ElToSysOperator: %w", ErrNilMatrix)
	}
	idVib, err := operator.Identity(v.nVibStates)
	if err != nil {
		return nil, err
	}

	return operator.Tensor(op, idVib)
}

// VibToSysOperator embeds a vibrational-space operator into the full system
// space by tensoring an electronic identity, sized to the requested
// subspace, in front of it.
func (v *VibronicHamiltonian) VibToSysOperator(op mat.Matrix, subspace string) (*mat.Dense, error) {
	if op == nil {
		return nil, fmt.Errorf("VibToSysOperator: %w", ErrNilMatrix)
	}
	ss, err := operator.ParseSubspace(subspace)
	if err != nil {
		return nil, err
	}
	nEl := ss.NStates(v.NSites())
	if nEl == 0 {
		return nil, fmt.Errorf("VibToSysOperator(%q): %w", ss, operator.ErrEmptySubspace)
	}
	idEl, err := operator.Identity(nEl)
	if err != nil {
		return nil, err
	}

	return operator.Tensor(idEl, op)
}

// DipoleOperator delegates to the wrapped electronic Hamiltonian and embeds
// the result into the full system space.
func (v *VibronicHamiltonian) DipoleOperator(q DipoleQuery) (*mat.Dense, error) {
	d, err := v.electronic.DipoleOperator(q)
	if err != nil {
		return nil, err
	}

	return v.ElToSysOperator(d)
}

// SystemBathCouplings delegates to the wrapped electronic Hamiltonian and
// embeds each coupling operator into the full system space.
func (v *VibronicHamiltonian) SystemBathCouplings(subspace string) ([]*mat.Dense, error) {
	ops, err := v.electronic.SystemBathCouplings(subspace)
	if err != nil {
		return nil, err
	}
	out := make([]*mat.Dense, len(ops))
	for i, op := range ops {
		emb, err := v.ElToSysOperator(op)
		if err != nil {
			return nil, err
		}
		out[i] = emb
	}

	return out, nil
}
