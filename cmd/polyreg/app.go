package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/drakos74/polyreg/infra/config"
	"github.com/drakos74/polyreg/internal/buffer"
	polymath "github.com/drakos74/polyreg/internal/math"
	"github.com/drakos74/polyreg/internal/metrics"
	"github.com/drakos74/polyreg/internal/storage"
	"github.com/drakos74/polyreg/internal/storage/file"
	"github.com/drakos74/polyreg/internal/storage/file/json"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// app holds the collaborators of a single command line invocation.
type app struct {
	run      string
	stderr   io.Writer
	cfg      config.Config
	store    storage.Persistence
	metrics  *metrics.Metrics
	observer polymath.Observer
	// charts lists the directories charts are drawn into, in order of preference
	charts []string
}

func newApp(stderr io.Writer) *app {
	a := &app{
		run:     uuid.New().String(),
		stderr:  stderr,
		cfg:     config.Default(),
		metrics: metrics.New(),
	}
	a.logger(zerolog.InfoLevel)
	return a
}

func (a *app) logger(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: a.stderr, TimeFormat: time.Kitchen, NoColor: !terminal(a.stderr)}).
		With().
		Timestamp().
		Str("run", a.run).
		Logger()
}

// setup applies the final config to logging, storage and diagnostics.
func (a *app) setup(cfg config.Config, dryRun bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.logger(level)

	a.cfg = cfg
	a.charts = nil
	if dryRun {
		a.store = storage.NewVoidStorage()
	} else {
		dir := cfg.OutputDir
		if dir == "" {
			dir = file.ExecutableDir()
		}
		a.store = file.NewStore(cfg.Precision, dir, "")
		if cfg.Plot {
			a.charts = []string{dir, ""}
		}
	}
	if cfg.Debug {
		a.observer = polymath.NewLogObserver()
	}
	log.Debug().Interface("config", cfg).Bool("dry-run", dryRun).Msg("setup")
	return nil
}

// flush writes the metrics file if one is configured.
func (a *app) flush() error {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	return a.metrics.Write(a.cfg.MetricsFile)
}

// regress fits a single degree and records the outcome.
func (a *app) regress(samples []polymath.Sample, degree int) (polymath.Polynomial, polymath.Quality, error) {
	start := time.Now()
	p, err := polymath.Fit(samples, degree, a.observer)
	if err != nil {
		a.metrics.Observe(degree, len(samples), time.Since(start), nil, err)
		return nil, polymath.Quality{}, err
	}
	q := polymath.Assess(p, samples)
	a.metrics.Observe(degree, len(samples), time.Since(start), &q, nil)
	log.Debug().
		Int("degree", degree).
		Str("polynomial", p.String()).
		Str("r2", polymath.Short(q.RSquared)).
		Floats64("residuals", q.Residuals).
		Msg("fitted")
	return p, q, nil
}

// persist stores the coefficients and, if configured, the json report next to them.
func (a *app) persist(degree, samples int, p polymath.Polynomial, q polymath.Quality) (string, error) {
	path, err := a.store.Store(degree, p)
	if err != nil {
		a.metrics.Observe(degree, samples, 0, nil, err)
		return "", err
	}
	if path == "" {
		return "", nil
	}
	log.Info().Int("degree", degree).Str("path", path).Msg("stored coefficients")
	if a.cfg.Report {
		r := json.NewReport(a.run, samples, p, q)
		rp, err := json.Save(filepath.Dir(path), json.FileName(degree), r)
		if err != nil {
			return path, fmt.Errorf("could not store report: %w", err)
		}
		log.Info().Int("degree", degree).Str("path", rp).Msg("stored report")
	}
	return path, nil
}

// plot draws charts into the first chart directory that accepts them.
// Nothing is drawn unless plotting is enabled and the run stores its results.
func (a *app) plot(draw func(dir string) ([]string, error)) error {
	if !a.cfg.Plot {
		return nil
	}
	if len(a.charts) == 0 {
		log.Info().Msg("skipping charts for dry run")
		return nil
	}
	var errs []error
	for _, dir := range a.charts {
		paths, err := draw(dir)
		if err == nil {
			for _, path := range paths {
				log.Info().Str("path", path).Msg("stored chart")
			}
			return nil
		}
		log.Warn().Str("dir", dir).Err(err).Msg("could not draw charts")
		errs = append(errs, err)
	}
	return fmt.Errorf("could not draw charts: %w", errors.Join(errs...))
}

// powerLimit is the magnitude of the largest power sum above which the normal equations lose precision.
const powerLimit = 1e15

// describe logs the shape of the data and warns when the largest power of x gets out of hand.
func describe(samples []polymath.Sample, degree int) {
	sc := buffer.NewStatsCollector(2)
	for _, s := range samples {
		sc.Push(s.X, s.Y)
	}
	if sc.Size() == 0 {
		return
	}
	x, y := sc.Stats()[0], sc.Stats()[1]
	log.Info().
		Int("samples", sc.Size()).
		Str("x", fmt.Sprintf("[%s, %s]", polymath.Short(x.Min()), polymath.Short(x.Max()))).
		Str("y-mean", polymath.Short(y.Avg())).
		Str("y-stdev", polymath.Short(y.StDev())).
		Msg("loaded data")
	if degree > 0 && math.Pow(x.Abs(), float64(2*degree)) > powerLimit {
		log.Warn().
			Int("degree", degree).
			Float64("max-abs-x", x.Abs()).
			Msg("normal equations are likely ill-conditioned, consider centering or scaling x")
	}
}

func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func parseDegree(s string) (int, error) {
	d, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("could not parse degree '%s': %w", s, polymath.InvalidDegreeErr)
	}
	if d < 0 {
		return 0, fmt.Errorf("degree must be non-negative, got %d: %w", d, polymath.InvalidDegreeErr)
	}
	return d, nil
}
