// SPDX-License-Identifier: MIT
// Package hamiltonian: sentinel error set.
// All operations return these sentinels (possibly wrapped with fmt.Errorf and
// %w for context) and tests match them via errors.Is. Subspace and transition
// label errors surface unchanged from the operator package.

package hamiltonian

import "errors"

var (
	// ErrUndefinedDipole is returned by DipoleOperator when no transition
	// dipole moments were configured.
	ErrUndefinedDipole = errors.New("hamiltonian: transition dipole moments undefined")

	// ErrUndefinedBath is returned by SystemBathCouplings, and by the
	// vibronic thermal ground state, when no bath was configured.
	ErrUndefinedBath = errors.New("hamiltonian: bath undefined")

	// ErrNilMatrix indicates a nil matrix where one is required.
	ErrNilMatrix = errors.New("hamiltonian: nil matrix")

	// ErrNilElectronic indicates a nil electronic Hamiltonian passed to the
	// vibronic constructor.
	ErrNilElectronic = errors.New("hamiltonian: nil electronic hamiltonian")

	// ErrBadShape indicates inconsistent input dimensions, e.g. a dipole
	// table whose row count differs from the site count.
	ErrBadShape = errors.New("hamiltonian: inconsistent input shape")

	// ErrNotHermitian signals that a matrix required to be real symmetric
	// violated symmetry beyond the numeric tolerance.
	ErrNotHermitian = errors.New("hamiltonian: matrix is not Hermitian within tolerance")

	// ErrEigenFailed indicates that the Hermitian eigensolver did not converge.
	ErrEigenFailed = errors.New("hamiltonian: eigendecomposition failed")

	// ErrNonPositiveTemperature indicates a thermal state was requested at a
	// temperature <= 0.
	ErrNonPositiveTemperature = errors.New("hamiltonian: temperature must be > 0")
)
