// Command polyreg fits a least-squares polynomial to (x, y) samples and stores its coefficients.
//
// Usage:
//
//	polyreg <degree> <data-file>
//	polyreg sweep <max-degree> <data-file>
//	polyreg eval <coefficients-file> <x>...
//
// The data file holds whitespace separated numbers, two per sample.
// Coefficients a0..ad are written one per line to coefficients_deg<degree>.txt
// next to the executable, or in the working directory if that fails.
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stderr)
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		log.Error().Err(err).Msg("polyreg failed")
	}
	if ferr := a.flush(); ferr != nil {
		log.Error().Err(ferr).Msg("could not flush metrics")
	}
	if err != nil {
		return 1
	}
	return 0
}
