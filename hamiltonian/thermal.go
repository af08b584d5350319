// SPDX-License-Identifier: MIT
// Package hamiltonian: thermal (Boltzmann) states.

package hamiltonian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ThermalState returns the Boltzmann density matrix of a Hermitian
// Hamiltonian at the given temperature (energy units):
//
//	rho = exp(-H/T) / Tr[exp(-H/T)]
//
// The matrix exponential of a symmetric matrix is evaluated through its
// eigendecomposition; weights are shifted by the smallest eigenvalue before
// exponentiation so the result stays finite at low temperatures. The shift
// cancels in the normalization.
// Stage 1 (Validate): temperature > 0, h square symmetric (via the solver).
// Stage 2 (Execute): rho = U diag(exp(-(E-Emin)/T)) Uᵀ / Z.
// Complexity: O(N^3).
func ThermalState(h *mat.Dense, temperature float64) (*mat.Dense, error) {
	if temperature <= 0 {
		return nil, fmt.Errorf("ThermalState(T=%g): %w", temperature, ErrNonPositiveTemperature)
	}
	es, err := eigh(h)
	if err != nil {
		return nil, fmt.Errorf("ThermalState: %w", err)
	}

	n := len(es.Values)
	eMin := es.Values[0] // ascending order
	z := 0.0
	weights := mat.NewDense(n, n, nil)
	for k, e := range es.Values {
		w := math.Exp(-(e - eMin) / temperature)
		weights.Set(k, k, w)
		z += w
	}

	var uw, rho mat.Dense
	uw.Mul(es.Vectors, weights)
	rho.Mul(&uw, es.Vectors.T())
	rho.Scale(1/z, &rho)

	return &rho, nil
}
