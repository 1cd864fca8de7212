package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/tuning/scale"
	"gopkg.in/yaml.v3"
)

// Report formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// report is the rendered view of a scale.
type report struct {
	Basis     []float64 `yaml:"basis,omitempty" json:"basis,omitempty"`
	Notes     []float64 `yaml:"notes" json:"notes"`
	Rates     []float64 `yaml:"rates" json:"rates"`
	Intervals []float64 `yaml:"intervals" json:"intervals"`
}

// newReport snapshots s; basis may be nil when the scale was not built from one.
func newReport(s *scale.Scale, basis []float64) report {
	return report{
		Basis:     basis,
		Notes:     s.Notes(),
		Rates:     s.Rates(),
		Intervals: s.Intervals(),
	}
}

type formatter func(w io.Writer, r report) error

func formatterFor(name string) (formatter, error) {
	switch strings.ToLower(name) {
	case formatText:
		return writeText, nil
	case formatYAML:
		return writeYAML, nil
	case formatJSON:
		return writeJSON, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, yaml or json)", name)
	}
}

// writeReport renders r in the format chosen by --output.
func writeReport(w io.Writer, r report) error {
	f, err := formatterFor(output)
	if err != nil {
		return err
	}

	return f(w, r)
}

// writeText prints one row per note: index, frequency, and the step that
// leads to it from the previous note.
func writeText(w io.Writer, r report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tHz\tratio\tcents\t")
	for i, f := range r.Notes {
		if i == 0 {
			fmt.Fprintf(tw, "%d\t%.4f\t-\t-\t\n", i, f)
			continue
		}
		fmt.Fprintf(tw, "%d\t%.4f\t%.6f\t%.3f\t\n", i, f, r.Rates[i-1], r.Intervals[i-1])
	}

	return tw.Flush()
}

func writeYAML(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}

func writeJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
