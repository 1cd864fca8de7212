// Command scales prints equal-division and explicit cents-based scales and
// applies note edits to them.
//
//	scales equal --divisions 12 --origin 440
//	scales basis --cents 200,200,100,200,200,200,100 --origin 261.6256 --output yaml
//	scales edit --notes 100,200,400 --set 2:0:previous --set 1:1200:current
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	output  string

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "scales",
	Short: "Cents-based scale calculator",
	Long: `scales builds musical scales from an origin frequency and intervals in cents.

1200 cents make one octave (ratio 2.0). Reports list the note frequencies,
the ratios between consecutive notes and the same steps in cents.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := formatterFor(output); err != nil {
			return err
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", formatText, "report format: text, yaml or json")

	rootCmd.AddCommand(equalCmd, basisCmd, editCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
