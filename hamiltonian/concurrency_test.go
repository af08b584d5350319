// Package hamiltonian_test verifies thread-safety of the memoized query
// surface under concurrent access.
package hamiltonian_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/vibron/hamiltonian"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestConcurrentH ensures that concurrent H calls on the same instance all
// observe one canonical matrix pointer.
func TestConcurrentH(t *testing.T) {
	h, err := hamiltonian.NewElectronic(twoSiteH1())
	require.NoError(t, err)

	const callers = 64
	results := make([]*mat.Dense, callers)
	var wg sync.WaitGroup
	wg.Add(callers)

	for i := 0; i < callers; i++ {
		go func(slot int) {
			defer wg.Done()
			m, err := h.H("gef")
			require.NoError(t, err)
			results[slot] = m
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		require.Same(t, results[0], results[i], "caller %d saw a different matrix", i)
	}
}

// TestConcurrentEigAndDerived mixes Eig, E and FreqStep calls across
// subspaces to verify no races or panics occur while caches fill.
func TestConcurrentEigAndDerived(t *testing.T) {
	h, err := hamiltonian.NewElectronic(detunedH1())
	require.NoError(t, err)

	subspaces := []string{"e", "ge", "gef"}
	const rounds = 32
	var wg sync.WaitGroup
	wg.Add(3 * rounds)

	for i := 0; i < rounds; i++ {
		ss := subspaces[i%len(subspaces)]

		go func() {
			defer wg.Done()
			_, err := h.Eig(ss)
			require.NoError(t, err)
		}()

		go func() {
			defer wg.Done()
			vals, err := h.E(ss)
			require.NoError(t, err)
			require.NotEmpty(t, vals)
		}()

		go func() {
			defer wg.Done()
			step, err := h.FreqStep()
			require.NoError(t, err)
			require.Greater(t, step, 0.0)
		}()
	}
	wg.Wait()
}

// TestConcurrentRotatingFrame validates that concurrent frame requests at
// the same frequency converge on one cached instance.
func TestConcurrentRotatingFrame(t *testing.T) {
	h, err := hamiltonian.NewElectronic(twoSiteH1())
	require.NoError(t, err)

	const callers = 32
	results := make([]hamiltonian.Hamiltonian, callers)
	var wg sync.WaitGroup
	wg.Add(callers)

	for i := 0; i < callers; i++ {
		go func(slot int) {
			defer wg.Done()
			rot, err := h.InRotatingFrame(hamiltonian.RotatingFrameAt(7))
			require.NoError(t, err)
			results[slot] = rot
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		require.Same(t, results[0], results[i], "caller %d saw a different frame", i)
	}
}
