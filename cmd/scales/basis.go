package main

import (
	"github.com/katalvlaran/tuning/scale"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	basisCents  []float64
	basisOrigin float64
)

// basisCmd prints the scale of an explicit interval pattern.
var basisCmd = &cobra.Command{
	Use:   "basis",
	Short: "Print the scale of an explicit list of intervals in cents",
	Long: `Applies each interval (cents, negative for downward steps) in turn to
the origin frequency.

Example:
  scales basis --cents 203.91,182.404,111.731 --origin 261.6256`,
	Args: cobra.NoArgs,
	RunE: runBasis,
}

func init() {
	basisCmd.Flags().Float64SliceVarP(&basisCents, "cents", "c", nil, "comma-separated intervals in cents")
	basisCmd.Flags().Float64Var(&basisOrigin, "origin", 440, "origin frequency")
	_ = basisCmd.MarkFlagRequired("cents")
}

func runBasis(cmd *cobra.Command, args []string) error {
	b := scale.NewToneBasis(basisCents...)
	logger.Debug("tone basis",
		zap.Float64s("cents", basisCents),
		zap.Float64("period_cents", b.Period()),
		zap.Float64("origin", basisOrigin))

	return writeReport(cmd.OutOrStdout(), newReport(b.ToScale(basisOrigin), b.Intervals()))
}
