package file

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	polymath "github.com/drakos74/polyreg/internal/math"
	"github.com/drakos74/polyreg/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "coefficients_deg0.txt", FileName(0))
	assert.Equal(t, "coefficients_deg12.txt", FileName(12))
}

func TestStore_RoundTrip(t *testing.T) {

	dir := t.TempDir()
	store := NewStore(polymath.MinPrecision, dir, t.TempDir())

	p := polymath.Polynomial{1.0 / 3, -2.718281828459045, 1e-7, 123456.789}
	path, err := store.Store(3, p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "coefficients_deg3.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Equal(t, 4, len(lines))
	for _, line := range lines {
		_, err := strconv.ParseFloat(line, 64)
		assert.NoError(t, err)
	}

	loaded, err := ReadCoefficients(path)
	require.NoError(t, err)
	require.Equal(t, len(p), len(loaded))
	for i := range p {
		assert.InEpsilon(t, p[i], loaded[i], 1e-14)
	}
}

func TestStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "deep")
	store := NewStore(polymath.MinPrecision, dir, t.TempDir())

	path, err := store.Store(1, polymath.Polynomial{1, 2})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "coefficients_deg1.txt"), path)
}

func TestStore_Fallback(t *testing.T) {
	root := t.TempDir()
	blocked := filepath.Join(root, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("not a dir"), 0o644))
	fallback := filepath.Join(root, "fallback")

	store := NewStore(polymath.MinPrecision, blocked, fallback)
	path, err := store.Store(2, polymath.Polynomial{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fallback, "coefficients_deg2.txt"), path)

	p, err := ReadCoefficients(path)
	require.NoError(t, err)
	assert.Equal(t, polymath.Polynomial{1, 0, 1}, p)
}

func TestStore_FallbackFails(t *testing.T) {
	root := t.TempDir()
	blocked := filepath.Join(root, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("not a dir"), 0o644))

	store := NewStore(polymath.MinPrecision, blocked, filepath.Join(blocked, "nested"))
	_, err := store.Store(2, polymath.Polynomial{1, 0, 1})
	assert.True(t, errors.Is(err, storage.IOErr), "%v", err)
}

func TestNewStore_SameDir(t *testing.T) {
	store := NewStore(polymath.MinPrecision, "out/", "out")
	assert.Equal(t, []string{"out/"}, store.dirs)
}

func TestParseCoefficients(t *testing.T) {

	type test struct {
		input string
		p     polymath.Polynomial
		err   bool
	}

	tests := map[string]test{
		"fixed": {
			input: "1.000000000000000\n0.000000000000000\n1.000000000000000\n",
			p:     polymath.Polynomial{1, 0, 1},
		},
		"blank-lines": {
			input: "\n2\n\n  -3.5  \n",
			p:     polymath.Polynomial{2, -3.5},
		},
		"empty": {
			input: "",
			p:     polymath.Polynomial{},
		},
		"invalid": {
			input: "1\nabc\n",
			err:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := ParseCoefficients(strings.NewReader(tt.input))
			if tt.err {
				assert.True(t, errors.Is(err, storage.IOErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.p, p)
		})
	}
}

func TestReadCoefficients_Missing(t *testing.T) {
	_, err := ReadCoefficients(filepath.Join(t.TempDir(), FileName(1)))
	assert.True(t, errors.Is(err, storage.IOErr))
}
