package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tuning/scale"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	editNotes []float64
	editSets  []string
)

// editCmd applies SetNote edits to an explicit note sequence.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit single notes of a scale",
	Long: `Builds a scale from explicit frequencies and applies each --set edit in
order. An edit is index:cents[:reference], where reference is one of
  current  - shift the note from its present pitch (default)
  previous - place the note cents above its predecessor
  origin   - place the note cents above the first note

Example:
  scales edit --notes 100,200,400 --set 2:0:previous --set 1:1200`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().Float64SliceVar(&editNotes, "notes", nil, "comma-separated note frequencies")
	editCmd.Flags().StringArrayVarP(&editSets, "set", "s", nil, "edit as index:cents[:reference], repeatable")
	_ = editCmd.MarkFlagRequired("notes")
}

// noteEdit is one parsed --set value.
type noteEdit struct {
	index int
	cents float64
	ref   scale.Reference
}

// parseEdit parses "index:cents[:reference]".
func parseEdit(s string) (noteEdit, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return noteEdit{}, fmt.Errorf("edit %q: want index:cents[:reference]", s)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return noteEdit{}, fmt.Errorf("edit %q: bad index: %w", s, err)
	}
	cents, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return noteEdit{}, fmt.Errorf("edit %q: bad cents: %w", s, err)
	}
	ref := scale.Current
	if len(parts) == 3 {
		if ref, err = scale.ParseReference(parts[2]); err != nil {
			return noteEdit{}, fmt.Errorf("edit %q: %w", s, err)
		}
	}

	return noteEdit{index: idx, cents: cents, ref: ref}, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	edits := make([]noteEdit, 0, len(editSets))
	for _, raw := range editSets {
		e, err := parseEdit(raw)
		if err != nil {
			return err
		}
		edits = append(edits, e)
	}

	s := scale.NewFromNotes(editNotes)
	for _, e := range edits {
		if _, err := s.SetNote(e.index, e.cents, e.ref); err != nil {
			return err
		}
		logger.Debug("note edited",
			zap.Int("index", e.index),
			zap.Float64("cents", e.cents),
			zap.Stringer("reference", e.ref),
			zap.Float64s("notes", s.Notes()))
	}

	return writeReport(cmd.OutOrStdout(), newReport(s, nil))
}
