package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/drakos74/polyreg/internal/plot"
	polymath "github.com/drakos74/polyreg/internal/math"
	"github.com/drakos74/polyreg/internal/storage/file"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type sweepResult struct {
	degree  int
	p       polymath.Polynomial
	quality polymath.Quality
	path    string
	err     error
}

func newSweepCmd(a *app) *cobra.Command {
	var store bool
	cmd := &cobra.Command{
		Use:   "sweep <max-degree> <data-file>",
		Short: "Fit every degree up to max-degree concurrently and compare the fits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxDegree, err := parseDegree(args[0])
			if err != nil {
				return err
			}
			samples, err := file.ReadSamples(args[1])
			if err != nil {
				a.metrics.Observe(maxDegree, 0, 0, nil, err)
				return err
			}
			describe(samples, maxDegree)
			results, err := a.sweep(samples, maxDegree, store)
			if err != nil {
				return err
			}
			renderSweep(cmd, results)
			curves := fitted(results)
			if len(curves) == 0 {
				return fmt.Errorf("no degree up to %d could be fitted: %w", maxDegree, results[0].err)
			}
			return a.plot(func(dir string) ([]string, error) {
				path, err := plot.Compare(dir, samples, curves...)
				if err != nil {
					return nil, err
				}
				return []string{path}, nil
			})
		},
	}
	cmd.Flags().BoolVar(&store, "store", false, "store the coefficients of every successful fit")
	return cmd
}

// sweep fits degrees 0..max in parallel, each fit owns its buffers so nothing is shared.
// Fit failures are kept per degree, only storage failures abort the sweep.
func (a *app) sweep(samples []polymath.Sample, maxDegree int, store bool) ([]sweepResult, error) {
	results := make([]sweepResult, maxDegree+1)

	var g errgroup.Group
	if a.cfg.Workers > 0 {
		g.SetLimit(a.cfg.Workers)
	}
	for d := 0; d <= maxDegree; d++ {
		d := d
		g.Go(func() error {
			r := sweepResult{degree: d}
			r.p, r.quality, r.err = a.regress(samples, d)
			if r.err != nil {
				log.Warn().Int("degree", d).Err(r.err).Msg("could not fit")
			} else if store {
				path, err := a.persist(d, len(samples), r.p, r.quality)
				if err != nil {
					return fmt.Errorf("degree %d: %w", d, err)
				}
				r.path = path
			}
			results[d] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// fitted returns the curves of the successful fits in degree order.
func fitted(results []sweepResult) []plot.Curve {
	var curves []plot.Curve
	for _, r := range results {
		if r.err == nil {
			curves = append(curves, plot.Curve{Polynomial: r.p, RSquared: r.quality.RSquared})
		}
	}
	return curves
}

func renderSweep(cmd *cobra.Command, results []sweepResult) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"degree", "r2", "rmse", "coefficients"})
	table.SetAutoWrapText(false)
	for _, r := range results {
		if r.err != nil {
			table.Append([]string{strconv.Itoa(r.degree), "-", "-", errorLabel(r.err)})
			continue
		}
		cc := make([]string, len(r.p))
		for i, c := range r.p {
			cc[i] = polymath.Short(c)
		}
		table.Append([]string{
			strconv.Itoa(r.degree),
			polymath.Short(r.quality.RSquared),
			polymath.Short(r.quality.RMSE),
			strings.Join(cc, " "),
		})
	}
	table.Render()
}

func errorLabel(err error) string {
	for _, e := range []error{
		polymath.InsufficientDataErr,
		polymath.SingularMatrixErr,
		polymath.NoDataErr,
		polymath.InvalidDegreeErr,
	} {
		if errors.Is(err, e) {
			return e.Error()
		}
	}
	return err.Error()
}
