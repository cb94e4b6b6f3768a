package math

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

// Observer receives the normal equations of a regression before they are solved.
// Implementations get their own copies and cannot influence the result.
type Observer interface {
	Normal(degree int, a mat.Symmetric, b mat.Vector)
}

// ObserverFunc adapts a plain function to an Observer.
type ObserverFunc func(degree int, a mat.Symmetric, b mat.Vector)

func (f ObserverFunc) Normal(degree int, a mat.Symmetric, b mat.Vector) {
	f(degree, a, b)
}

// LogObserver logs the normal equations at debug level.
type LogObserver struct {
	Logger zerolog.Logger
}

// NewLogObserver creates an observer on top of the global logger.
func NewLogObserver() *LogObserver {
	return &LogObserver{Logger: log.Logger}
}

func (l *LogObserver) Normal(degree int, a mat.Symmetric, b mat.Vector) {
	l.Logger.Debug().
		Int("degree", degree).
		Str("matrix", fmt.Sprintf("\n%v", mat.Formatted(a, mat.Squeeze()))).
		Str("vector", fmt.Sprintf("\n%v", mat.Formatted(b.T(), mat.Squeeze()))).
		Msg("normal equations")
}

// Fit fits the given samples into a polynomial function of the given degree
// by solving the least-squares normal equations.
func Fit(samples []Sample, degree int, observer Observer) (Polynomial, error) {
	a, b, err := Build(samples, degree, observer)
	if err != nil {
		return nil, err
	}
	c, err := Solve(a, b)
	if err != nil {
		return nil, fmt.Errorf("could not fit for degree '%d': %w", degree, err)
	}
	p := make(Polynomial, c.Len())
	for i := range p {
		p[i] = c.AtVec(i)
	}
	return p, nil
}
