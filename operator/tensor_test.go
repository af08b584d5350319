package operator_test

import (
	"testing"

	"github.com/katalvlaran/vibron/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestIdentity checks the identity constructor and its bounds validation.
func TestIdentity(t *testing.T) {
	id, err := operator.Identity(3)
	require.NoError(t, err)
	want := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	assert.True(t, mat.Equal(want, id))

	_, err = operator.Identity(0)
	assert.ErrorIs(t, err, operator.ErrIndexOutOfRange)
}

// TestTensor_Pair pins a hand-computed 2x2 ⊗ 2x2 Kronecker product.
func TestTensor_Pair(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{0, 1, 1, 0})

	k, err := operator.Tensor(a, b)
	require.NoError(t, err)

	want := mat.NewDense(4, 4, []float64{
		0, 1, 0, 2,
		1, 0, 2, 0,
		0, 3, 0, 4,
		3, 0, 4, 0,
	})
	assert.True(t, mat.Equal(want, k), "kron mismatch:\n%v", mat.Formatted(k))
}

// TestTensor_OrderMatters verifies that the factor order is significant:
// a ⊗ b differs from b ⊗ a for non-commuting shapes.
func TestTensor_OrderMatters(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, 2})
	b := mat.NewDense(2, 2, []float64{3, 0, 0, 4})

	ab, err := operator.Tensor(a, b)
	require.NoError(t, err)
	ba, err := operator.Tensor(b, a)
	require.NoError(t, err)

	assert.False(t, mat.Equal(ab, ba), "diagonal kron factors must not commute here")
	// a ⊗ b has diagonal (3, 4, 6, 8); b ⊗ a has diagonal (3, 6, 4, 8).
	assert.Equal(t, 4.0, ab.At(1, 1))
	assert.Equal(t, 6.0, ba.At(1, 1))
}

// TestTensor_SingleAndEmpty checks the degenerate arities.
func TestTensor_SingleAndEmpty(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	k, err := operator.Tensor(a)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, k), "single factor must copy through")

	_, err = operator.Tensor()
	assert.ErrorIs(t, err, operator.ErrEmptyTensor)

	_, err = operator.Tensor(a, nil)
	assert.ErrorIs(t, err, operator.ErrNilOperator)
}

// TestTensor_Associates confirms Tensor(a,b,c) equals Tensor(Tensor(a,b),c).
func TestTensor_Associates(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	b := mat.NewDense(2, 2, []float64{1, 0, 0, -1})
	c := mat.NewDense(2, 2, []float64{2, 0, 0, 3})

	abc, err := operator.Tensor(a, b, c)
	require.NoError(t, err)
	ab, err := operator.Tensor(a, b)
	require.NoError(t, err)
	abThenC, err := operator.Tensor(ab, c)
	require.NoError(t, err)

	assert.True(t, mat.Equal(abc, abThenC))
}
