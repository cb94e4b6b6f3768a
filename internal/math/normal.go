package math

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sample is a single (x, y) observation.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Split returns the x and y values of the samples as separate series.
func Split(samples []Sample) (xx, yy []float64) {
	xx = make([]float64, len(samples))
	yy = make([]float64, len(samples))
	for i, s := range samples {
		xx[i] = s.X
		yy[i] = s.Y
	}
	return xx, yy
}

// Build creates the least-squares normal equations for a polynomial of the given degree.
// The matrix entry (i,j) holds the sum of x^(i+j) and the vector entry i the sum of y*x^i.
// NOTE : powers are accumulated in plain float64, large degrees combined with large |x| will overflow
func Build(samples []Sample, degree int, observer Observer) (*mat.SymDense, *mat.VecDense, error) {
	if degree < 0 {
		return nil, nil, fmt.Errorf("degree must be non-negative, got %d: %w", degree, InvalidDegreeErr)
	}
	if len(samples) == 0 {
		return nil, nil, fmt.Errorf("cannot fit degree %d: %w", degree, NoDataErr)
	}
	m := degree + 1
	if len(samples) < m {
		return nil, nil, fmt.Errorf("not enough samples (%d out of %d) to fit degree %d: %w",
			len(samples),
			m,
			degree,
			InsufficientDataErr)
	}

	sums := powerSums(samples, 2*degree)

	a := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			a.SetSym(i, j, sums[i+j])
		}
	}

	b := mat.NewVecDense(m, nil)
	for _, s := range samples {
		p := 1.
		for i := 0; i < m; i++ {
			b.SetVec(i, b.AtVec(i)+s.Y*p)
			p *= s.X
		}
	}

	if observer != nil {
		c := mat.NewSymDense(m, nil)
		c.CopySym(a)
		observer.Normal(degree, c, mat.VecDenseCopyOf(b))
	}

	return a, b, nil
}

// powerSums returns the sum of x^k over all samples for k = 0..top.
func powerSums(samples []Sample, top int) []float64 {
	sums := make([]float64, top+1)
	for _, s := range samples {
		p := 1.
		for k := 0; k <= top; k++ {
			sums[k] += p
			p *= s.X
		}
	}
	return sums
}
