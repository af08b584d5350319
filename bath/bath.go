// Package bath models the thermal environments that Hamiltonians couple to.
//
// A Bath exposes the scalar temperature consumed when thermal (Boltzmann)
// states are constructed, in the same energy units as the Hamiltonian it
// accompanies. DebyeBath adds the overdamped Brownian-oscillator spectral
// density commonly used for pigment-protein complexes.
package bath

import "errors"

// Sentinel errors for bath construction.
var (
	// ErrNonPositiveTemperature indicates a temperature <= 0.
	ErrNonPositiveTemperature = errors.New("bath: temperature must be > 0")

	// ErrNonPositiveCutoff indicates a cutoff frequency <= 0.
	ErrNonPositiveCutoff = errors.New("bath: cutoff frequency must be > 0")
)

// Bath is the contract Hamiltonian construction relies on: a scalar
// temperature in energy units (Boltzmann constant folded in).
type Bath interface {
	Temperature() float64
}

// DebyeBath is an overdamped Brownian-oscillator bath with Lorentzian
// spectral density, characterized by its temperature, reorganization energy
// and cutoff frequency. The zero value is not valid; use NewDebyeBath.
type DebyeBath struct {
	temp   float64
	reorg  float64
	cutoff float64
}

// NewDebyeBath validates and builds a DebyeBath. Temperature and cutoff must
// be positive; the reorganization energy may be zero (a decoupled bath).
func NewDebyeBath(temperature, reorganization, cutoff float64) (*DebyeBath, error) {
	if temperature <= 0 {
		return nil, ErrNonPositiveTemperature
	}
	if cutoff <= 0 {
		return nil, ErrNonPositiveCutoff
	}

	return &DebyeBath{temp: temperature, reorg: reorganization, cutoff: cutoff}, nil
}

// Temperature returns the bath temperature in energy units.
func (b *DebyeBath) Temperature() float64 { return b.temp }

// Reorganization returns the reorganization energy lambda.
func (b *DebyeBath) Reorganization() float64 { return b.reorg }

// Cutoff returns the cutoff frequency gamma.
func (b *DebyeBath) Cutoff() float64 { return b.cutoff }

// SpectralDensity evaluates J(w) = 2*lambda*gamma*w / (w^2 + gamma^2).
// It is odd in w and peaks at w = gamma. Complexity: O(1).
func (b *DebyeBath) SpectralDensity(freq float64) float64 {
	return 2 * b.reorg * b.cutoff * freq / (freq*freq + b.cutoff*b.cutoff)
}
