package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/tuning/scale"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// newTestCmd returns a bare command whose output is captured.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	return cmd, buf
}

func TestEqualCmd_JSON(t *testing.T) {
	logger = zap.NewNop()
	output = formatJSON
	divisions, equalOrigin = 2, 100
	defer func() { output = formatText }()

	cmd, buf := newTestCmd()
	require.NoError(t, runEqual(cmd, nil))

	var r report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, []float64{600, 600}, r.Basis)
	require.Len(t, r.Notes, 3)
	assert.Equal(t, 100.0, r.Notes[0])
	assert.InDelta(t, 200.0, r.Notes[2], 1e-9)
	assert.InDeltaSlice(t, []float64{600, 600}, r.Intervals, 1e-9)
}

func TestEqualCmd_BadDivision(t *testing.T) {
	logger = zap.NewNop()
	divisions = 0
	defer func() { divisions = 12 }()

	cmd, _ := newTestCmd()
	assert.ErrorIs(t, runEqual(cmd, nil), scale.ErrBadDivision)
}

func TestBasisCmd_YAML(t *testing.T) {
	logger = zap.NewNop()
	output = formatYAML
	basisCents, basisOrigin = []float64{1200, -1200}, 110
	defer func() { output = formatText }()

	cmd, buf := newTestCmd()
	require.NoError(t, runBasis(cmd, nil))

	var r report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, []float64{1200, -1200}, r.Basis)
	assert.Equal(t, []float64{110, 220, 110}, r.Notes)
	assert.Equal(t, []float64{2, 0.5}, r.Rates)
}

func TestEditCmd_Text(t *testing.T) {
	logger = zap.NewNop()
	output = formatText
	editNotes = []float64{100, 200, 400}
	editSets = []string{"1:1200:current"}

	cmd, buf := newTestCmd()
	require.NoError(t, runEdit(cmd, nil))

	out := buf.String()
	assert.Contains(t, out, "ratio")
	assert.Contains(t, out, "400.0000")
	assert.NotContains(t, out, "200.0000", "note 1 moved an octave up")
}

func TestEditCmd_AppliesInOrder(t *testing.T) {
	logger = zap.NewNop()
	output = formatJSON
	editNotes = []float64{100, 200, 400}
	editSets = []string{"2:0:previous", "1:1200"}
	defer func() { output = formatText }()

	cmd, buf := newTestCmd()
	require.NoError(t, runEdit(cmd, nil))

	var r report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, []float64{100, 400, 200}, r.Notes)
	assert.Nil(t, r.Basis)
}

func TestEditCmd_Errors(t *testing.T) {
	logger = zap.NewNop()
	editNotes = []float64{440}

	cases := []struct {
		name string
		sets []string
		want error
	}{
		{"previous of origin", []string{"0:100:previous"}, scale.ErrOutOfRange},
		{"index past end", []string{"3:100"}, scale.ErrOutOfRange},
		{"unknown reference", []string{"0:100:root"}, scale.ErrUnknownReference},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			editSets = tc.sets
			cmd, buf := newTestCmd()
			assert.ErrorIs(t, runEdit(cmd, nil), tc.want)
			assert.Empty(t, buf.String(), "nothing printed on failure")
		})
	}
}

func TestParseEdit(t *testing.T) {
	e, err := parseEdit("2:-50.5:Origin")
	require.NoError(t, err)
	assert.Equal(t, noteEdit{index: 2, cents: -50.5, ref: scale.Origin}, e)

	e, err = parseEdit(" 1 : 100 ")
	require.NoError(t, err)
	assert.Equal(t, noteEdit{index: 1, cents: 100, ref: scale.Current}, e)

	for _, bad := range []string{"", "1", "x:100", "1:y", "1:2:3:4"} {
		_, err := parseEdit(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFormatterFor(t *testing.T) {
	for _, name := range []string{"text", "YAML", "json"} {
		_, err := formatterFor(name)
		assert.NoError(t, err, name)
	}
	_, err := formatterFor("csv")
	assert.Error(t, err)
}
