package hamiltonian_test

import (
	"testing"

	"github.com/katalvlaran/vibron/hamiltonian"
	"gonum.org/v1/gonum/mat"
)

// chainH1 builds an n-site nearest-neighbor one-exciton matrix with a mild
// site-energy gradient, a typical aggregate benchmark input.
func chainH1(n int) *mat.Dense {
	h1 := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		h1.Set(i, i, 12000+10*float64(i))
		if i+1 < n {
			h1.Set(i, i+1, 100)
			h1.Set(i+1, i, 100)
		}
	}

	return h1
}

// benchmarkH builds a fresh instance each iteration so the subspace cache
// never amortizes the extension work away.
func benchmarkH(b *testing.B, n int, subspace string) {
	h1 := chainH1(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, err := hamiltonian.NewElectronic(h1)
		if err != nil {
			b.Fatalf("NewElectronic failed: %v", err)
		}
		if _, err := h.H(subspace); err != nil {
			b.Fatalf("H failed: %v", err)
		}
	}
}

// BenchmarkH_GESmall benchmarks the ge extension of a 10-site chain.
func BenchmarkH_GESmall(b *testing.B) {
	benchmarkH(b, 10, "ge")
}

// BenchmarkH_GEFSmall benchmarks the gef extension of a 10-site chain
// (56 states including the two-exciton block).
func BenchmarkH_GEFSmall(b *testing.B) {
	benchmarkH(b, 10, "gef")
}

// BenchmarkH_GEFMedium benchmarks the gef extension of a 30-site chain
// (466 states).
func BenchmarkH_GEFMedium(b *testing.B) {
	benchmarkH(b, 30, "gef")
}

// BenchmarkEig_GEF benchmarks the symmetric eigendecomposition of a
// 20-site gef Hamiltonian, rebuilt per iteration to defeat the cache.
func BenchmarkEig_GEF(b *testing.B) {
	h1 := chainH1(20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, err := hamiltonian.NewElectronic(h1)
		if err != nil {
			b.Fatalf("NewElectronic failed: %v", err)
		}
		if _, err := h.Eig("gef"); err != nil {
			b.Fatalf("Eig failed: %v", err)
		}
	}
}

// BenchmarkEig_Cached benchmarks the memoized path: one instance, repeated
// lookups.
func BenchmarkEig_Cached(b *testing.B) {
	h, err := hamiltonian.NewElectronic(chainH1(20))
	if err != nil {
		b.Fatalf("NewElectronic failed: %v", err)
	}
	if _, err := h.Eig("gef"); err != nil {
		b.Fatalf("Eig failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := h.Eig("gef"); err != nil {
			b.Fatalf("Eig failed: %v", err)
		}
	}
}

// BenchmarkVibronicH benchmarks assembling a vibronic Hamiltonian for a
// dimer with two 4-level modes (3 * 16 = 48 states in ge).
func BenchmarkVibronicH(b *testing.B) {
	h1 := chainH1(2)
	levels := []int{4, 4}
	energies := []float64{180, 240}
	couplings := mat.NewDense(2, 2, []float64{40, 15, 15, 40})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		el, err := hamiltonian.NewElectronic(h1)
		if err != nil {
			b.Fatalf("NewElectronic failed: %v", err)
		}
		v, err := hamiltonian.NewVibronic(el, levels, energies, couplings)
		if err != nil {
			b.Fatalf("NewVibronic failed: %v", err)
		}
		if _, err := v.H("ge"); err != nil {
			b.Fatalf("H failed: %v", err)
		}
	}
}
