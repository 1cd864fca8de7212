package main

import (
	"github.com/katalvlaran/tuning/scale"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	divisions   int
	equalOrigin float64
)

// equalCmd prints an equal division of the octave.
var equalCmd = &cobra.Command{
	Use:   "equal",
	Short: "Print an equal division of the octave",
	Long: `Divides the octave into N equal steps of 1200/N cents and applies them
to the origin frequency.

Example:
  scales equal --divisions 19 --origin 261.6256`,
	Args: cobra.NoArgs,
	RunE: runEqual,
}

func init() {
	equalCmd.Flags().IntVarP(&divisions, "divisions", "n", 12, "number of equal steps per octave")
	equalCmd.Flags().Float64Var(&equalOrigin, "origin", 440, "origin frequency")
}

func runEqual(cmd *cobra.Command, args []string) error {
	b, err := scale.Equidistant(divisions)
	if err != nil {
		return err
	}
	logger.Debug("equal division",
		zap.Int("divisions", divisions),
		zap.Float64("step_cents", scale.CentsPerOctave/float64(divisions)),
		zap.Float64("origin", equalOrigin))

	return writeReport(cmd.OutOrStdout(), newReport(b.ToScale(equalOrigin), b.Intervals()))
}
