package main

import (
	"fmt"
	"strconv"

	polymath "github.com/drakos74/polyreg/internal/math"
	"github.com/drakos74/polyreg/internal/storage"
	"github.com/drakos74/polyreg/internal/storage/file"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <coefficients-file> <x>...",
		Short: "Evaluate stored coefficients at the given x values",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := file.ReadCoefficients(args[0])
			if err != nil {
				return err
			}
			if len(p) == 0 {
				return fmt.Errorf("no coefficients in '%s': %w", args[0], storage.IOErr)
			}
			xx := make([]float64, len(args)-1)
			for i, s := range args[1:] {
				x, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("invalid x value '%s': %w", s, err)
				}
				xx[i] = x
			}
			out := cmd.OutOrStdout()
			for i, y := range p.Values(xx) {
				fmt.Fprintf(out, "%s %s\n", polymath.Format(xx[i], a.cfg.Precision), polymath.Format(y, a.cfg.Precision))
			}
			return nil
		},
	}
}
