package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	polymath "github.com/drakos74/polyreg/internal/math"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config defines the runtime options of a regression run.
type Config struct {
	// OutputDir is where coefficient files go, empty means next to the executable
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	// Precision is the number of significant digits for stored coefficients
	Precision int `json:"precision" yaml:"precision"`
	// LogLevel is the zerolog level name
	LogLevel string `json:"log_level" yaml:"log_level"`
	// Debug logs the normal equations of every fit
	Debug bool `json:"debug" yaml:"debug"`
	// Report additionally stores a json report next to the coefficients
	Report bool `json:"report" yaml:"report"`
	// MetricsFile is the prometheus textfile to dump run metrics into, empty disables it
	MetricsFile string `json:"metrics_file" yaml:"metrics_file"`
	// Workers limits the number of concurrent fits of a sweep, 0 means no limit
	Workers int `json:"workers" yaml:"workers"`
	// Plot draws png charts of the fits next to the coefficients
	Plot bool `json:"plot" yaml:"plot"`
}

// Default returns the default config.
func Default() Config {
	return Config{
		Precision: polymath.MinPrecision,
		LogLevel:  zerolog.InfoLevel.String(),
	}
}

// Load loads the config file at the given path on top of the defaults.
// The format is picked from the extension, .yaml and .yml are read as yaml, anything else as json.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not load config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		err = json.Unmarshal(b, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("could not unmarshal the config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("loaded config")
	return cfg, nil
}

// MustLoad loads the config for the given path and panics on failure.
func MustLoad(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

// Validate checks the config values.
func (c Config) Validate() error {
	if c.Precision < polymath.MinPrecision {
		return fmt.Errorf("precision must be at least %d, got %d", polymath.MinPrecision, c.Precision)
	}
	if c.Precision > 17 {
		return fmt.Errorf("precision above 17 digits is meaningless for float64, got %d", c.Precision)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, debug wins over the level name.
func (c Config) Level() (zerolog.Level, error) {
	if c.Debug {
		return zerolog.DebugLevel, nil
	}
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level '%s': %w", c.LogLevel, err)
	}
	return l, nil
}
