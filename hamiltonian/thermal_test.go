package hamiltonian_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vibron/hamiltonian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestThermalState_Boltzmann pins the population ratio of a two-level
// diagonal Hamiltonian: p1/p0 = exp(-w/T).
func TestThermalState_Boltzmann(t *testing.T) {
	const w, temp = 150.0, 200.0
	h := mat.NewDense(2, 2, []float64{0, 0, 0, w})

	rho, err := hamiltonian.ThermalState(h, temp)
	require.NoError(t, err)

	assert.InDelta(t, 1, mat.Trace(rho), 1e-12, "trace 1")
	assert.InDelta(t, math.Exp(-w/temp), rho.At(1, 1)/rho.At(0, 0), 1e-12)
	assert.InDelta(t, 0, rho.At(0, 1), 1e-15, "diagonal H gives diagonal rho")
}

// TestThermalState_OffDiagonal checks a coupled two-level system: rho must
// stay Hermitian, trace 1, and commute with H (simultaneous eigenbasis).
func TestThermalState_OffDiagonal(t *testing.T) {
	h := mat.NewDense(2, 2, []float64{0, 40, 40, 30})

	rho, err := hamiltonian.ThermalState(h, 120)
	require.NoError(t, err)

	assert.InDelta(t, 1, mat.Trace(rho), 1e-12)
	assert.InDelta(t, rho.At(0, 1), rho.At(1, 0), 1e-12, "Hermitian")

	var hr, rh mat.Dense
	hr.Mul(h, rho)
	rh.Mul(rho, h)
	assert.True(t, mat.EqualApprox(&hr, &rh, 1e-9), "[H, rho] = 0")
}

// TestThermalState_LowTemperature verifies the overflow-safe shift: at a
// temperature far below the gap the state collapses onto the ground level
// without producing NaN populations.
func TestThermalState_LowTemperature(t *testing.T) {
	h := mat.NewDense(2, 2, []float64{1e4, 0, 0, 2e6})

	rho, err := hamiltonian.ThermalState(h, 1e-3)
	require.NoError(t, err)

	assert.False(t, math.IsNaN(rho.At(0, 0)), "no overflow at low temperature")
	assert.InDelta(t, 1, rho.At(0, 0), 1e-12, "ground level saturates")
	assert.InDelta(t, 0, rho.At(1, 1), 1e-12)
}

// TestThermalState_Validation covers the precondition failures.
func TestThermalState_Validation(t *testing.T) {
	h := mat.NewDense(2, 2, []float64{0, 0, 0, 1})

	_, err := hamiltonian.ThermalState(h, 0)
	assert.ErrorIs(t, err, hamiltonian.ErrNonPositiveTemperature)
	_, err = hamiltonian.ThermalState(h, -5)
	assert.ErrorIs(t, err, hamiltonian.ErrNonPositiveTemperature)
	_, err = hamiltonian.ThermalState(nil, 100)
	assert.ErrorIs(t, err, hamiltonian.ErrNilMatrix)
}
