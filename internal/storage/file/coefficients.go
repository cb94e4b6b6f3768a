package file

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	polymath "github.com/drakos74/polyreg/internal/math"
	"github.com/drakos74/polyreg/internal/storage"
	"github.com/rs/zerolog/log"
)

// FileName returns the coefficients file name for the given degree.
func FileName(degree int) string {
	return fmt.Sprintf("coefficients_deg%d.txt", degree)
}

// ExecutableDir returns the directory of the running executable
// or the empty string (current directory) if it cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		log.Warn().Err(err).Msg("could not locate executable")
		return ""
	}
	return filepath.Dir(exe)
}

// Store writes coefficient files into the first directory that accepts them.
type Store struct {
	dirs      []string
	precision int
}

// NewStore creates a store writing into dir, falling back to fallback if that fails.
func NewStore(precision int, dir, fallback string) *Store {
	dirs := []string{dir}
	if filepath.Clean(dir) != filepath.Clean(fallback) {
		dirs = append(dirs, fallback)
	}
	return &Store{
		dirs:      dirs,
		precision: precision,
	}
}

// Store saves the coefficients a0..ad one per line.
func (s *Store) Store(degree int, p polymath.Polynomial) (string, error) {
	var buf bytes.Buffer
	if err := WriteCoefficients(&buf, p, s.precision); err != nil {
		return "", err
	}

	errs := make([]string, 0, len(s.dirs))
	for i, dir := range s.dirs {
		path, err := save(dir, FileName(degree), buf.Bytes())
		if err == nil {
			return path, nil
		}
		errs = append(errs, err.Error())
		if i < len(s.dirs)-1 {
			log.Warn().Err(err).Str("fallback", s.dirs[i+1]).Msg("could not store coefficients")
		}
	}
	return "", fmt.Errorf("could not store coefficients for degree %d [%s]: %w", degree, strings.Join(errs, "; "), storage.IOErr)
}

func save(dir, name string, data []byte) (string, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return "", fmt.Errorf("could not make dir: %s: %w", dir, err)
			}
		} else if !info.IsDir() {
			return "", fmt.Errorf("path given is not a directory: %s", dir)
		}
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("could not write file '%s': %w", p, err)
	}
	return p, nil
}

// WriteCoefficients writes one coefficient per line with the given significant digits.
func WriteCoefficients(w io.Writer, p polymath.Polynomial, precision int) error {
	for _, c := range p {
		if _, err := fmt.Fprintln(w, polymath.Format(c, precision)); err != nil {
			return fmt.Errorf("could not write coefficient: %w: %w", err, storage.IOErr)
		}
	}
	return nil
}

// ReadCoefficients loads a coefficients file as written by Store.
func ReadCoefficients(path string) (polymath.Polynomial, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open coefficients file '%s': %w: %w", path, err, storage.IOErr)
	}
	defer f.Close()
	return ParseCoefficients(f)
}

// ParseCoefficients reads one coefficient per non-empty line.
func ParseCoefficients(r io.Reader) (polymath.Polynomial, error) {
	scanner := bufio.NewScanner(r)
	p := make(polymath.Polynomial, 0)
	var line int
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		c, err := parseFloat(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", line, err, storage.IOErr)
		}
		p = append(p, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not scan coefficients: %w: %w", err, storage.IOErr)
	}
	return p, nil
}
