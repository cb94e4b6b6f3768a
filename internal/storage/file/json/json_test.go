package json

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	polymath "github.com/drakos74/polyreg/internal/math"
	"github.com/drakos74/polyreg/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_SaveAndLoad(t *testing.T) {

	dir := filepath.Join(t.TempDir(), "reports")

	p := polymath.Polynomial{1, 0, 1}
	samples := polymath.Generate(p, 0, 1, 2, 3)
	r := NewReport(uuid.New().String(), len(samples), p, polymath.Assess(p, samples))

	path, err := Save(dir, FileName(2), r)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "coefficients_deg2.json"), path)

	var loaded Report
	err = Load(dir, FileName(2), &loaded)
	require.NoError(t, err)

	assert.Equal(t, r.Run, loaded.Run)
	assert.Equal(t, 2, loaded.Degree)
	assert.Equal(t, 4, loaded.Samples)
	assert.Equal(t, []float64{1, 0, 1}, loaded.Coefficients)
	require.NotNil(t, loaded.RSquared)
	assert.Equal(t, 1.0, *loaded.RSquared)
	assert.Equal(t, []float64{0, 0, 0, 0}, loaded.Residuals)
	assert.True(t, r.Time.Equal(loaded.Time))
}

func TestNewReport_Residuals(t *testing.T) {
	q := polymath.Quality{Residuals: []float64{-0.1, 0.3, -0.3, 0.1}, RSquared: 0.9}
	r := NewReport("run", 4, polymath.Polynomial{0.1, 0.6}, q)
	assert.Equal(t, []float64{-0.1, 0.3, -0.3, 0.1}, r.Residuals)

	q.Residuals[0] = 1
	assert.Equal(t, -0.1, r.Residuals[0])
}

func TestNewReport_UndefinedRSquared(t *testing.T) {
	q := polymath.Quality{RSquared: math.NaN()}
	r := NewReport("run", 2, polymath.Polynomial{3}, q)
	assert.Nil(t, r.RSquared)

	_, err := Save(t.TempDir(), FileName(0), r)
	assert.NoError(t, err)
}

func TestLoad_Missing(t *testing.T) {
	var r Report
	err := Load(t.TempDir(), FileName(1), &r)
	assert.True(t, errors.Is(err, storage.IOErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSave_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Save(file, FileName(1), Report{})
	assert.True(t, errors.Is(err, storage.IOErr))
}
