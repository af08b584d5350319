// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// operator package. All primitives MUST return these sentinels and tests MUST
// check them via errors.Is. No primitive panics on user-triggered conditions.

package operator

import "errors"

var (
	// ErrNilOperator indicates a nil matrix was passed where one is required.
	ErrNilOperator = errors.New("operator: nil operator")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("operator: matrix is not square")

	// ErrBadSubspace indicates a subspace label outside the canonical
	// "g" < "e" < "f" grammar (unknown letter, duplicate, wrong order, empty).
	ErrBadSubspace = errors.New("operator: invalid subspace label")

	// ErrBadTransitions indicates a transition direction string that is not
	// drawn from "-" and "+" without repetition.
	ErrBadTransitions = errors.New("operator: invalid transitions")

	// ErrIndexOutOfRange indicates a site, mode or basis index outside valid bounds.
	ErrIndexOutOfRange = errors.New("operator: index out of range")

	// ErrBadLevels indicates a vibrational level count that is not positive.
	ErrBadLevels = errors.New("operator: vibrational levels must be > 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a single-mode operator whose size differs from its level count.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrEmptyTensor indicates Tensor was called with no factors.
	ErrEmptyTensor = errors.New("operator: tensor product needs at least one factor")

	// ErrEmptySubspace indicates a grammatically valid subspace that contains
	// no basis states for the given system, e.g. the f manifold of a 1-site
	// system.
	ErrEmptySubspace = errors.New("operator: subspace has no states")
)
