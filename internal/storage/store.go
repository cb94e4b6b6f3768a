package storage

import (
	"errors"

	polymath "github.com/drakos74/polyreg/internal/math"
)

var (
	IOErr = errors.New("io failure")
)

// Persistence stores the coefficients of a fitted polynomial.
// It returns the location the coefficients ended up in.
type Persistence interface {
	Store(degree int, p polymath.Polynomial) (string, error)
}
