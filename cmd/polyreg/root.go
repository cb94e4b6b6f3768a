package main

import (
	"fmt"

	"github.com/drakos74/polyreg/infra/config"
	"github.com/drakos74/polyreg/internal/plot"
	polymath "github.com/drakos74/polyreg/internal/math"
	"github.com/drakos74/polyreg/internal/storage/file"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type flags struct {
	config      string
	outputDir   string
	precision   int
	logLevel    string
	debug       bool
	report      bool
	metricsFile string
	workers     int
	plot        bool
	dryRun      bool
}

func newRootCmd(a *app) *cobra.Command {
	f := new(flags)

	cmd := &cobra.Command{
		Use:           "polyreg <degree> <data-file>",
		Short:         "Fit a least-squares polynomial to (x, y) samples",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return a.setup(cfg, f.dryRun)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			degree, err := parseDegree(args[0])
			if err != nil {
				return err
			}
			return a.fit(cmd, degree, args[1])
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "json or yaml config file")
	pf.StringVar(&f.outputDir, "output-dir", "", "directory for coefficient files (default: next to the executable)")
	pf.IntVar(&f.precision, "precision", polymath.MinPrecision, "significant digits of stored coefficients")
	pf.StringVar(&f.logLevel, "log-level", "info", "log level")
	pf.BoolVar(&f.debug, "debug", false, "log the normal equations")
	pf.BoolVar(&f.report, "report", false, "also store a json report")
	pf.StringVar(&f.metricsFile, "metrics-file", "", "prometheus textfile to write run metrics into")
	pf.IntVar(&f.workers, "workers", 0, "maximum concurrent fits for sweep (0: unlimited)")
	pf.BoolVar(&f.plot, "plot", false, "draw png charts of the fits")
	pf.BoolVar(&f.dryRun, "dry-run", false, "do not store anything")

	cmd.AddCommand(newSweepCmd(a), newEvalCmd(a))
	return cmd
}

// resolve loads the config file, if any, and applies the flags that were set explicitly.
func (f *flags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		cfg, err = config.Load(f.config)
		if err != nil {
			return cfg, err
		}
	}
	changed := cmd.Flags().Changed
	if changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if changed("precision") {
		cfg.Precision = f.precision
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("debug") {
		cfg.Debug = f.debug
	}
	if changed("report") {
		cfg.Report = f.report
	}
	if changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("plot") {
		cfg.Plot = f.plot
	}
	return cfg, nil
}

func (a *app) fit(cmd *cobra.Command, degree int, path string) error {
	log.Info().Int("degree", degree).Str("path", path).Msg("polynomial regression")

	samples, err := file.ReadSamples(path)
	if err != nil {
		a.metrics.Observe(degree, 0, 0, nil, err)
		return err
	}
	describe(samples, degree)

	p, q, err := a.regress(samples, degree)
	if err != nil {
		return fmt.Errorf("polynomial regression failed for degree %d: %w", degree, err)
	}

	out := cmd.OutOrStdout()
	for i, c := range p {
		fmt.Fprintf(out, "a%d: %s\n", i, polymath.Short(c))
	}
	log.Info().
		Str("r2", polymath.Short(q.RSquared)).
		Str("rmse", polymath.Short(q.RMSE)).
		Msg("fit quality")

	if _, err := a.persist(degree, len(samples), p, q); err != nil {
		return err
	}
	return a.plot(func(dir string) ([]string, error) {
		c := plot.Curve{Polynomial: p, RSquared: q.RSquared}
		fit, err := plot.Fit(dir, samples, c)
		if err != nil {
			return nil, err
		}
		residuals, err := plot.Residuals(dir, samples, degree, q.Residuals)
		if err != nil {
			return nil, err
		}
		return []string{fit, residuals}, nil
	})
}
