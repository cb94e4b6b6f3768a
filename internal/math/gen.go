package math

// Series generates limit values starting at from with the given step.
func Series(from, step float64, limit int) []float64 {
	xx := make([]float64, 0, limit)
	for i := 0; i < limit; i++ {
		xx = append(xx, from+step*float64(i))
	}
	return xx
}

// Generate produces noise-free samples of the polynomial at the given x values.
func Generate(p Polynomial, xx ...float64) []Sample {
	samples := make([]Sample, len(xx))
	for i, x := range xx {
		samples[i] = Sample{X: x, Y: p.Evaluate(x)}
	}
	return samples
}
