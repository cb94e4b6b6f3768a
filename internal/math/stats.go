package math

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Quality describes how well a polynomial describes the samples it was fitted on.
// RSquared is the coefficient of determination.
// NOTE : RSquared is NaN when all y values are equal
type Quality struct {
	Residuals []float64
	RSquared  float64
	RMSE      float64
}

// Assess calculates the residuals and goodness of fit of p against the samples.
func Assess(p Polynomial, samples []Sample) Quality {
	xx, yy := Split(samples)
	fit := p.Values(xx)

	residuals := make([]float64, len(yy))
	var ss float64
	for i := range yy {
		r := yy[i] - fit[i]
		residuals[i] = r
		ss += r * r
	}

	q := Quality{Residuals: residuals}
	if len(yy) == 0 {
		return q
	}
	q.RMSE = math.Sqrt(ss / float64(len(yy)))
	if allEqual(yy) {
		q.RSquared = math.NaN()
	} else {
		q.RSquared = stat.RSquaredFrom(fit, yy, nil)
	}
	return q
}

func allEqual(ff []float64) bool {
	for _, f := range ff {
		if f != ff[0] {
			return false
		}
	}
	return true
}
