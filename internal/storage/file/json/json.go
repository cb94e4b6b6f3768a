package json

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	polymath "github.com/drakos74/polyreg/internal/math"
	"github.com/drakos74/polyreg/internal/storage"
)

// Report is the json summary of a single regression run.
// Residuals are y - fit per sample, in input order.
// RSquared is omitted when undefined e.g. for constant y values.
type Report struct {
	Run          string    `json:"run"`
	Time         time.Time `json:"time"`
	Degree       int       `json:"degree"`
	Samples      int       `json:"samples"`
	Coefficients []float64 `json:"coefficients"`
	RSquared     *float64  `json:"r2,omitempty"`
	RMSE         float64   `json:"rmse"`
	Residuals    []float64 `json:"residuals"`
}

// NewReport summarises the fitted polynomial and its quality.
func NewReport(run string, samples int, p polymath.Polynomial, q polymath.Quality) Report {
	r := Report{
		Run:          run,
		Time:         time.Now(),
		Degree:       p.Degree(),
		Samples:      samples,
		Coefficients: append([]float64(nil), p...),
		RMSE:         q.RMSE,
		Residuals:    append([]float64(nil), q.Residuals...),
	}
	if !math.IsNaN(q.RSquared) && !math.IsInf(q.RSquared, 0) {
		r2 := q.RSquared
		r.RSquared = &r2
	}
	return r
}

// FileName returns the report file name for the given degree.
func FileName(degree int) string {
	return fmt.Sprintf("coefficients_deg%d.json", degree)
}

// Save saves the given json struct into the given path with the provided filename.
func Save(filePath string, fileName string, value interface{}) (string, error) {
	// check if filepath exists
	if filePath != "" {
		info, err := os.Stat(filePath)
		if err != nil {
			err := os.MkdirAll(filePath, os.ModePerm)
			if err != nil {
				return "", fmt.Errorf("could not make dir: %s: %w: %w", filePath, err, storage.IOErr)
			}
		} else if !info.IsDir() {
			return "", fmt.Errorf("path given is not a directory: %s: %w", filePath, storage.IOErr)
		}
	}

	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not marshal '%+v': %w", value, err)
	}

	// write the file
	p := filepath.Join(filePath, fileName)
	err = os.WriteFile(p, b, 0o644)
	if err != nil {
		return "", fmt.Errorf("could not write file '%s': %w: %w", p, err, storage.IOErr)
	}

	return p, nil
}

// Load loads the payload from the given filePath and fileName.
func Load(filePath string, fileName string, value interface{}) error {

	p := filepath.Join(filePath, fileName)

	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s': %w: %w", p, err, storage.IOErr)
	}

	err = json.Unmarshal(data, value)
	if err != nil {
		return fmt.Errorf("could not unmarshal '%s': %w", p, err)
	}

	return nil
}
