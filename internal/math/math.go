package math

import (
	"errors"
	"strconv"
)

// MinPrecision is the minimum number of significant digits used when formatting coefficients.
const MinPrecision = 15

var (
	InvalidDegreeErr    = errors.New("invalid degree")
	NoDataErr           = errors.New("no data")
	InsufficientDataErr = errors.New("insufficient data")
	SingularMatrixErr   = errors.New("singular matrix")
	DimensionErr        = errors.New("dimension mismatch")
)

// Format formats a float with the given number of significant digits.
// NOTE : precision below MinPrecision is raised to MinPrecision
func Format(f float64, precision int) string {
	if precision < MinPrecision {
		precision = MinPrecision
	}
	return strconv.FormatFloat(f, 'g', precision, 64)
}

// Short formats a float for human consumption e.g. log lines and tables
func Short(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}
