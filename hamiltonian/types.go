// SPDX-License-Identifier: MIT
// Package hamiltonian: per-call configuration values and the eigensystem pair.

package hamiltonian

import "gonum.org/v1/gonum/mat"

// EigenSystem pairs the ascending eigenvalues of a Hermitian matrix with the
// matching orthonormal eigenvectors: column k of Vectors belongs to Values[k].
type EigenSystem struct {
	Values  []float64
	Vectors *mat.Dense
}

// RotatingFrameConfig selects the frequency of a rotating-frame
// transformation. With UseMean set the instance's current mean excitation
// frequency is used and Freq is ignored.
//
// Example:
//
//	rot, err := h.InRotatingFrame(hamiltonian.DefaultRotatingFrame())
//	rot, err := h.InRotatingFrame(hamiltonian.RotatingFrameAt(12500))
type RotatingFrameConfig struct {
	Freq    float64
	UseMean bool
}

// DefaultRotatingFrame rotates at the mean excitation frequency.
func DefaultRotatingFrame() RotatingFrameConfig {
	return RotatingFrameConfig{UseMean: true}
}

// RotatingFrameAt rotates at an explicit frequency.
func RotatingFrameAt(freq float64) RotatingFrameConfig {
	return RotatingFrameConfig{Freq: freq}
}

// DipoleQuery describes one dipole-operator request:
//   - Subspace: canonical electronic subspace label ("gef", "ge", ...)
//   - Polarization: lab-frame axis label consumed by polarization.Vector
//   - Transitions: direction string over "-" and "+" ("-+" selects both)
type DipoleQuery struct {
	Subspace     string
	Polarization string
	Transitions  string
}

// DefaultDipoleQuery is the full-subspace, x-polarized, both-direction query.
func DefaultDipoleQuery() DipoleQuery {
	return DipoleQuery{Subspace: "gef", Polarization: "x", Transitions: "-+"}
}
