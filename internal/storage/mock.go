package storage

import (
	"fmt"
	"sync"

	polymath "github.com/drakos74/polyreg/internal/math"
)

// MockStorage keeps the stored coefficients in memory, keyed by degree.
type MockStorage struct {
	Elements map[int]polymath.Polynomial
	Err      error
	mutex    *sync.Mutex
}

func NewMockStorage() *MockStorage {
	return &MockStorage{
		Elements: make(map[int]polymath.Polynomial),
		mutex:    new(sync.Mutex),
	}
}

func (m *MockStorage) Store(degree int, p polymath.Polynomial) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	m.Elements[degree] = append(polymath.Polynomial(nil), p...)
	return fmt.Sprintf("mock/%d", degree), nil
}
