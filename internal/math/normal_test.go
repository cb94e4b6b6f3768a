package math

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBuild(t *testing.T) {

	samples := []Sample{{0, 1}, {1, 2}, {2, 5}}

	a, b, err := Build(samples, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, a.SymmetricDim())
	expected := mat.NewSymDense(3, []float64{
		3, 3, 5,
		3, 5, 9,
		5, 9, 17,
	})
	assert.True(t, mat.Equal(expected, a), "%v", mat.Formatted(a))
	assert.Equal(t, []float64{8, 12, 22}, b.RawVector().Data)
}

func TestBuild_Symmetric(t *testing.T) {
	samples := Generate(Polynomial{0.3, -1, 2}, Series(-1.5, 0.25, 13)...)
	for d := 0; d <= 5; d++ {
		a, b, err := Build(samples, d, nil)
		require.NoError(t, err)
		n := a.SymmetricDim()
		require.Equal(t, d+1, n)
		require.Equal(t, d+1, b.Len())
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.Equal(t, a.At(i, j), a.At(j, i))
			}
		}
	}
}

func TestBuild_Errors(t *testing.T) {

	type test struct {
		samples []Sample
		degree  int
		err     error
	}

	tests := map[string]test{
		"negative-degree": {
			samples: []Sample{{0, 1}},
			degree:  -1,
			err:     InvalidDegreeErr,
		},
		"negative-degree-no-data": {
			degree: -2,
			err:    InvalidDegreeErr,
		},
		"no-data": {
			samples: []Sample{},
			degree:  0,
			err:     NoDataErr,
		},
		"nil-data": {
			degree: 1,
			err:    NoDataErr,
		},
		"insufficient": {
			samples: []Sample{{0, 1}, {1, 2}},
			degree:  2,
			err:     InsufficientDataErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, b, err := Build(tt.samples, tt.degree, nil)
			assert.True(t, errors.Is(err, tt.err), "%v", err)
			assert.Nil(t, a)
			assert.Nil(t, b)
		})
	}
}

func TestBuild_Observer(t *testing.T) {

	samples := []Sample{{0, 1}, {1, 3}}

	var calls int
	observer := ObserverFunc(func(degree int, a mat.Symmetric, b mat.Vector) {
		calls++
		assert.Equal(t, 1, degree)
		assert.Equal(t, 2, a.SymmetricDim())
		assert.Equal(t, 2, b.Len())
		// mutating the copies must not leak into the result
		a.(*mat.SymDense).SetSym(0, 0, 100)
		b.(*mat.VecDense).SetVec(0, 100)
	})

	a, b, err := Build(samples, 1, observer)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2.0, a.At(0, 0))
	assert.Equal(t, 4.0, b.AtVec(0))
}

func TestPowerSums(t *testing.T) {
	sums := powerSums([]Sample{{2, 0}, {-1, 0}}, 4)
	assert.Equal(t, []float64{2, 1, 5, 7, 17}, sums)
}
