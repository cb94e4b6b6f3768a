package math

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Polynomial holds the coefficients of the corresponding powers of x
// c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
type Polynomial []float64

// Degree returns the degree of the polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Evaluate evaluates the polynomial at x.
func (p Polynomial) Evaluate(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// Values evaluates the polynomial for all the given x values at once.
func (p Polynomial) Values(xx []float64) []float64 {
	if len(xx) == 0 || len(p) == 0 {
		return make([]float64, len(xx))
	}
	v := vandermonde(xx, p.Degree())
	var y mat.VecDense
	y.MulVec(v, mat.NewVecDense(len(p), append([]float64(nil), p...)))
	yy := make([]float64, len(xx))
	for i := range yy {
		yy[i] = y.AtVec(i)
	}
	return yy
}

func (p Polynomial) String() string {
	terms := make([]string, len(p))
	for i, c := range p {
		switch i {
		case 0:
			terms[i] = Short(c)
		case 1:
			terms[i] = fmt.Sprintf("%sx", Short(c))
		default:
			terms[i] = fmt.Sprintf("%sx^%d", Short(c), i)
		}
	}
	return strings.Join(terms, " + ")
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}
