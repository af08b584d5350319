// SPDX-License-Identifier: MIT
// Package operator: truncated harmonic-oscillator primitives.

package operator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// VibCreate returns the creation (raising) operator b† of a harmonic mode
// truncated to n levels: b†|k> = sqrt(k+1)|k+1> for k < n-1.
// Complexity: O(n^2) zeroing plus O(n) writes.
func VibCreate(n int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("VibCreate(%d): %w", n, ErrBadLevels)
	}
	b := mat.NewDense(n, n, nil)
	for k := 0; k < n-1; k++ {
		b.Set(k+1, k, math.Sqrt(float64(k+1)))
	}

	return b, nil
}

// VibAnnihilate returns the annihilation (lowering) operator b of a harmonic
// mode truncated to n levels: b|k> = sqrt(k)|k-1>. It is the transpose of
// VibCreate(n). Complexity: O(n^2).
func VibAnnihilate(n int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("VibAnnihilate(%d): %w", n, ErrBadLevels)
	}
	b := mat.NewDense(n, n, nil)
	for k := 1; k < n; k++ {
		b.Set(k-1, k, math.Sqrt(float64(k)))
	}

	return b, nil
}

// ExtendVib embeds a single-mode operator into the joint vibrational space of
// K truncated modes, placing op at position mode and identities elsewhere:
//
//	I(levels[0]) ⊗ ... ⊗ op ⊗ ... ⊗ I(levels[K-1])
//
// Stage 1 (Validate): all level counts positive, mode in range, op square
// with dimension levels[mode].
// Stage 2 (Execute): three-factor tensor with collapsed flanking identities.
// Complexity: O(D^2), D = prod(levels).
func ExtendVib(levels []int, mode int, op mat.Matrix) (*mat.Dense, error) {
	if mode < 0 || mode >= len(levels) {
		return nil, fmt.Errorf("ExtendVib: mode %d of %d: %w", mode, len(levels), ErrIndexOutOfRange)
	}
	if op == nil {
		return nil, fmt.Errorf("ExtendVib: %w", ErrNilOperator)
	}
	left, right := 1, 1
	for m, lv := range levels {
		if lv <= 0 {
			return nil, fmt.Errorf("ExtendVib: mode %d has %d levels: %w", m, lv, ErrBadLevels)
		}
		if m < mode {
			left *= lv
		} else if m > mode {
			right *= lv
		}
	}
	r, c := op.Dims()
	if r != c {
		return nil, fmt.Errorf("ExtendVib(%dx%d): %w", r, c, ErrNonSquare)
	}
	if r != levels[mode] {
		return nil, fmt.Errorf("ExtendVib: operator dim %d vs %d levels: %w", r, levels[mode], ErrDimensionMismatch)
	}

	// Flanking mode identities collapse into one identity on each side.
	idLeft, err := Identity(left)
	if err != nil {
		return nil, err
	}
	idRight, err := Identity(right)
	if err != nil {
		return nil, err
	}

	return Tensor(idLeft, op, idRight)
}
