// Package vibron builds matrix representations of quantum Hamiltonians for
// open-quantum-system spectroscopy simulations: excitonic (electronic)
// systems, optionally coupled to explicit vibrational modes and to a thermal
// bath.
//
// 🚀 What is vibron?
//
//	A pure-Go library that assembles the dense operators a spectroscopy
//	pipeline needs before any dynamics are propagated:
//		• Electronic (Frenkel exciton) Hamiltonians over g/e/f manifolds
//		• Vibronic extensions with truncated harmonic modes
//		• Cached Hermitian eigendecompositions (ascending E, unitary U)
//		• Rotating-frame transformations
//		• Dipole and system-bath coupling operators
//		• Thermal (Boltzmann) ground states
//
// ✨ Why choose vibron?
//
//   - Immutable Hamiltonian values - every derived object is a new instance
//   - Lazy, race-tolerant memoization - query freely from many goroutines
//   - Explicit sentinel errors - no panics on user-triggered conditions
//   - Dense linear algebra delegated to gonum, not reimplemented
//
// Everything is organized under four subpackages:
//
//	operator/     — subspace labels, block extension, transition operators,
//	                tensor products and truncated ladder operators
//	polarization/ — unit polarization vectors
//	bath/         — thermal bath models (temperature, spectral density)
//	hamiltonian/  — the Hamiltonian contract and its electronic and
//	                vibronic realizations
//
// Quick sketch of the composite Hilbert space:
//
//	|system> = |electronic: g,e,f manifolds> ⊗ |mode 1> ⊗ ... ⊗ |mode K>
//
// with the electronic factor always preceding the vibrational factors.
//
// Dive into hamiltonian/example_test.go for runnable walkthroughs.
//
//	go get github.com/katalvlaran/vibron/hamiltonian
package vibron
