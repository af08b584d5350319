// Package operator provides the subspace and tensor algebra primitives that
// Hamiltonian construction is built on: electronic subspace labels, block
// extension of 1-excitation operators, site-local transition operators,
// Kronecker (tensor) products and truncated harmonic ladder operators.
//
// 🚀 What is operator?
//
//	The electronic problem lives in up to three manifolds:
//	  • g — the single ground state
//	  • e — n singly-excited states, one per site
//	  • f — n(n-1)/2 doubly-excited states, one per site pair
//	A Subspace selects which manifolds are represented; basis states are
//	always ordered g-block, then e-block, then f-block.
//
// ✨ Key primitives:
//   - ParseSubspace — strict "g" < "e" < "f" label parsing
//   - Extend        — block extension of a 1-excitation operator into g/e/f
//   - Transition    — raising/lowering operator restricted to one site
//   - Tensor        — sequential Kronecker product
//   - ExtendVib     — embed a single-mode operator into the joint mode space
//   - VibCreate / VibAnnihilate — truncated harmonic ladder operators
//
// Two-exciton convention (fixed here, observable in matrix entries):
//
//	The f-manifold basis is the set of site pairs (i,j) with i < j, ordered
//	lexicographically. For a 1-excitation operator M, the extended f-block F
//	is the hard-core boson lift of M:
//	  F[(i,j),(i,j)] = M[i,i] + M[j,j]
//	  F[(i,j),(k,l)] = the element of M between the two non-shared sites,
//	                   when the pairs share exactly one site
//	  F[(i,j),(k,l)] = 0 when the pairs are disjoint
//	No additional sign or normalization factor is applied.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vibron/operator"
//
//	ss, err := operator.ParseSubspace("gef")
//	h, err := operator.Extend(h1exc, ss)      // block-extended Hamiltonian
//	t, err := operator.Transition(0, 2, ss, operator.Lower|operator.Raise)
//
// All primitives return dense gonum matrices and package sentinel errors;
// none of them panics on user-triggered conditions.
package operator
