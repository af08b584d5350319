// SPDX-License-Identifier: MIT
// Package operator: Kronecker (tensor) products and identities.

package operator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Identity returns the n x n identity matrix.
// Complexity: O(n^2) zeroing plus O(n) diagonal writes.
func Identity(n int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrIndexOutOfRange)
	}
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}

	return id, nil
}

// Tensor computes the sequential Kronecker product of its factors:
// Tensor(a, b, c) = a ⊗ b ⊗ c. Factor order is significant; in this library
// the electronic factor always precedes the vibrational factors.
// Stage 1 (Validate): at least one non-nil factor.
// Stage 2 (Execute): left-fold gonum's Kronecker kernel.
// Complexity: O(prod(rows) * prod(cols)) for the final product.
func Tensor(ms ...mat.Matrix) (*mat.Dense, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("Tensor: %w", ErrEmptyTensor)
	}
	for i, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("Tensor: factor %d: %w", i, ErrNilOperator)
		}
	}

	acc := mat.DenseCopyOf(ms[0])
	for _, m := range ms[1:] {
		var next mat.Dense
		next.Kronecker(acc, m)
		acc = &next
	}

	return acc, nil
}
