package file

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	polymath "github.com/drakos74/polyreg/internal/math"
	"github.com/drakos74/polyreg/internal/storage"
	"github.com/rs/zerolog/log"
)

// ReadSamples reads the samples from the data file at the given path.
func ReadSamples(path string) ([]polymath.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open data file '%s': %w: %w", path, err, storage.IOErr)
	}
	defer f.Close()

	samples, err := ParseSamples(f)
	if err != nil {
		return nil, fmt.Errorf("could not read data file '%s': %w", path, err)
	}

	log.Debug().Str("path", path).Int("samples", len(samples)).Msg("loaded samples")
	return samples, nil
}

// ParseSamples reads whitespace separated numbers, two for each (x, y) sample.
// A trailing number without a pair is ignored.
func ParseSamples(r io.Reader) ([]polymath.Sample, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	samples := make([]polymath.Sample, 0)
	values := make([]float64, 0, 2)
	var token int
	for scanner.Scan() {
		token++
		f, err := parseFloat(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("token %d: %w: %w", token, err, storage.IOErr)
		}
		values = append(values, f)
		if len(values) == 2 {
			samples = append(samples, polymath.Sample{X: values[0], Y: values[1]})
			values = values[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not scan samples: %w: %w", err, storage.IOErr)
	}
	if len(values) > 0 {
		log.Warn().Float64("value", values[0]).Int("token", token).Msg("ignoring value without a pair")
	}
	return samples, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number '%s'", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("number '%s' is not finite", s)
	}
	return f, nil
}
