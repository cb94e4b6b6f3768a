package storage

import polymath "github.com/drakos74/polyreg/internal/math"

// VoidStorage is a noop storage
type VoidStorage struct {
}

func (d VoidStorage) Store(degree int, p polymath.Polynomial) (string, error) {
	return "", nil
}

// NewVoidStorage creates a new noop storage
func NewVoidStorage() *VoidStorage {
	return &VoidStorage{}
}
