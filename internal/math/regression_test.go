package math

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {

	type test struct {
		samples []Sample
		degree  int
		coeffs  Polynomial
	}

	tests := map[string]test{
		"square": {
			samples: []Sample{{0, 1}, {1, 2}, {2, 5}},
			degree:  2,
			coeffs:  Polynomial{1, 0, 1},
		},
		"line": {
			samples: []Sample{{0, 1}, {1, 3}},
			degree:  1,
			coeffs:  Polynomial{1, 2},
		},
		"mean": {
			samples: []Sample{{0, 1}, {5, 2}, {-3, 3}},
			degree:  0,
			coeffs:  Polynomial{2},
		},
		"least-squares-line": {
			samples: []Sample{{0, 0}, {1, 1}, {2, 1}, {3, 2}},
			degree:  1,
			// slope = 0.6, intercept = 0.1
			coeffs: Polynomial{0.1, 0.6},
		},
		"unordered": {
			samples: []Sample{{2, 5}, {0, 1}, {1, 2}},
			degree:  2,
			coeffs:  Polynomial{1, 0, 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := Fit(tt.samples, tt.degree, nil)
			require.NoError(t, err)
			require.Equal(t, len(tt.coeffs), len(p))
			for i := range tt.coeffs {
				assert.InDelta(t, tt.coeffs[i], p[i], 1e-6)
			}
		})
	}
}

func TestFit_Recover(t *testing.T) {

	generators := []Polynomial{
		{3},
		{-1, 0.5},
		{2, -3, 0.5},
		{2, -3, 0.5, 1},
		{0.1, 0, -0.2, 0, 0.05},
	}

	for _, g := range generators {
		for d := g.Degree(); d <= g.Degree()+2; d++ {
			t.Run(fmt.Sprintf("%v|%d", g, d), func(t *testing.T) {
				samples := Generate(g, Series(-2, 0.25, 17)...)
				p, err := Fit(samples, d, nil)
				require.NoError(t, err)
				require.Equal(t, d+1, len(p))
				for i := range p {
					var expected float64
					if i < len(g) {
						expected = g[i]
					}
					assert.InDelta(t, expected, p[i], 1e-6, "coefficient %d", i)
				}
			})
		}
	}
}

func TestFit_ExactPoints(t *testing.T) {
	g := Polynomial{1, -2, 0, 0.5}
	samples := Generate(g, -1, 0, 1, 2)
	p, err := Fit(samples, 3, nil)
	require.NoError(t, err)
	for _, s := range samples {
		assert.InDelta(t, s.Y, p.Evaluate(s.X), 1e-6)
	}
}

func TestFit_Errors(t *testing.T) {

	type test struct {
		samples []Sample
		degree  int
		err     error
	}

	tests := map[string]test{
		"same-x-line": {
			samples: []Sample{{2, 1}, {2, 3}, {2, 5}},
			degree:  1,
			err:     SingularMatrixErr,
		},
		"same-x-square": {
			samples: []Sample{{2, 1}, {2, 3}, {2, 5}, {2, 0}},
			degree:  2,
			err:     SingularMatrixErr,
		},
		"same-x-fraction": {
			samples: []Sample{{1.5, 1}, {1.5, 2}},
			degree:  1,
			err:     SingularMatrixErr,
		},
		"negative-degree": {
			samples: []Sample{{2, 1}},
			degree:  -1,
			err:     InvalidDegreeErr,
		},
		"no-data": {
			degree: 0,
			err:    NoDataErr,
		},
		"insufficient": {
			samples: []Sample{{0, 1}, {1, 3}},
			degree:  2,
			err:     InsufficientDataErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := Fit(tt.samples, tt.degree, nil)
			assert.True(t, errors.Is(err, tt.err), "%v", err)
			assert.Nil(t, p)
		})
	}
}

func TestFit_SameXConstant(t *testing.T) {
	p, err := Fit([]Sample{{2, 1}, {2, 3}}, 0, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, p[0], 1e-9)
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	observer := &LogObserver{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)}

	_, err := Fit([]Sample{{0, 1}, {1, 2}, {2, 5}}, 2, observer)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "normal equations")
	assert.Contains(t, buf.String(), `"degree":2`)

	buf.Reset()
	observer.Logger = observer.Logger.Level(zerolog.InfoLevel)
	_, err = Fit([]Sample{{0, 1}, {1, 2}, {2, 5}}, 2, observer)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
