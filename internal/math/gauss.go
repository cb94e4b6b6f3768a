package math

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// PivotTolerance is the smallest absolute pivot value accepted during elimination.
const PivotTolerance = 1e-9

// Solve solves a·x = b with Gauss-Jordan elimination and partial pivoting.
// a and b are copied, the caller's values are never modified.
// Every pivot eliminates its column from all the other rows, so a reduces to the identity
// and the transformed b is the solution.
func Solve(a mat.Matrix, b mat.Vector) (*mat.VecDense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("matrix is not square (%dx%d): %w", r, c, DimensionErr)
	}
	if b.Len() != r {
		return nil, fmt.Errorf("vector length %d does not match matrix size %d: %w", b.Len(), r, DimensionErr)
	}

	n := r
	aa := mat.DenseCopyOf(a)
	bb := mat.VecDenseCopyOf(b)

	for i := 0; i < n; i++ {
		// pick the largest absolute value in column i, first one wins on ties
		maxRow := i
		for k := i + 1; k < n; k++ {
			if math.Abs(aa.At(k, i)) > math.Abs(aa.At(maxRow, i)) {
				maxRow = k
			}
		}
		if maxRow != i {
			swapRows(aa, bb, i, maxRow)
		}

		pivot := aa.At(i, i)
		if math.Abs(pivot) < PivotTolerance {
			return nil, fmt.Errorf("pivot %e in column %d below tolerance %e: %w", pivot, i, PivotTolerance, SingularMatrixErr)
		}

		row := aa.RawRowView(i)
		for j := i; j < n; j++ {
			row[j] /= pivot
		}
		bb.SetVec(i, bb.AtVec(i)/pivot)

		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			other := aa.RawRowView(k)
			factor := other[i]
			if factor == 0 {
				continue
			}
			for j := i; j < n; j++ {
				other[j] -= factor * row[j]
			}
			bb.SetVec(k, bb.AtVec(k)-factor*bb.AtVec(i))
		}
	}

	return bb, nil
}

func swapRows(a *mat.Dense, b *mat.VecDense, i, k int) {
	ri, rk := a.RawRowView(i), a.RawRowView(k)
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
	bi, bk := b.AtVec(i), b.AtVec(k)
	b.SetVec(i, bk)
	b.SetVec(k, bi)
}
