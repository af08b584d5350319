// Package hamiltonian assembles matrix representations of excitonic and
// vibronic system Hamiltonians for spectroscopy simulations.
//
// 🚀 What is hamiltonian?
//
//	The Hamiltonian interface is the capability set a simulation pipeline
//	queries before propagating any dynamics:
//	  • H            — the system Hamiltonian restricted to a subspace
//	  • GroundState  — the ground configuration as a density matrix
//	  • InRotatingFrame — the same system in a rotating reference frame
//	  • DipoleOperator  — light-matter coupling along one polarization
//	  • SystemBathCouplings — one coupling operator per bath degree of freedom
//	plus quantities derived generically from H alone: the memoized Hermitian
//	eigensystem (Eig, E, U), state counts, the mean excitation frequency and
//	Nyquist frequency/time steps.
//
// ✨ Two concrete realizations:
//
//   - ElectronicHamiltonian — a Frenkel exciton system over g/e/f manifolds,
//     with optional site dipole moments and an optional thermal bath.
//   - VibronicHamiltonian — composes an ElectronicHamiltonian with explicit
//     truncated vibrational modes, linearly coupled to site occupation. The
//     electronic tensor factor always precedes the vibrational factor.
//
// ⚙️ Usage:
//
//	h1 := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
//	el, err := hamiltonian.NewElectronic(h1,
//	    hamiltonian.WithBath(b),
//	    hamiltonian.WithDipoles(d))
//	rot, err := el.InRotatingFrame(hamiltonian.DefaultRotatingFrame())
//	ev, err := rot.Eig("gef")
//
// Immutability and caching:
//
//	Hamiltonian values are immutable once constructed; derived objects are
//	new instances. Expensive queries are memoized per instance and per
//	argument value. Concurrent first calls may race to compute a key, which
//	is benign (the computation is pure); all callers observe one canonical
//	cached result. Returned matrices are shared with the cache and must be
//	treated as read-only.
package hamiltonian
