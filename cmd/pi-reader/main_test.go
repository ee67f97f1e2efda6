package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pi-reader/internal/source"
	"github.com/pdiddy/pi-reader/pkg/types"
)

const fixture = `PHILOSOPHICAL INVESTIGATIONS
PART I

i. “Cum ipsi (majores homines)”—Augustine.
PHILOSOPHICAL INVESTIGATIONS I
the words of language name objects.
z. That philosophical concept of meaning
has its place.
1969 was a year
3. Augustine, we might say, describes a system.
PART II
i
`

func TestScanThenExtract(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pi.txt")
	require.NoError(t, os.WriteFile(src, []byte(fixture), 0o644))
	locPath := filepath.Join(dir, "locations.json")
	outPath := filepath.Join(dir, "data", "propositions.json")

	rootCmd.SetArgs([]string{"scan", "--source", src, "--locations", locPath})
	require.NoError(t, rootCmd.Execute())

	loc, err := source.ReadLocations(locPath)
	require.NoError(t, err)
	assert.Equal(t, []types.Span{
		{Number: "1", Start: 4, End: 7, ClosedBy: types.ClosedByNext},
		{Number: "2", Start: 7, End: 10, ClosedBy: types.ClosedByNext},
		{Number: "3", Start: 10, End: 11, ClosedBy: types.ClosedByMarker},
	}, loc.Spans)
	assert.Equal(t, 12, loc.LineCount)

	rootCmd.SetArgs([]string{"extract", "--source", src, "--locations", locPath, "--output", outPath})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var props []types.Proposition
	require.NoError(t, json.Unmarshal(data, &props))

	assert.Equal(t, []types.Proposition{
		{Number: "1", Text: "\"Cum ipsi (majores homines)\"--Augustine.\nthe words of language name objects.", Section: "Part I"},
		{Number: "2", Text: "That philosophical concept of meaning\nhas its place.\n1969 was a year", Section: "Part I"},
		{Number: "3", Text: "Augustine, we might say, describes a system.", Section: "Part I"},
	}, props)
}

func TestExtract_RejectsLocationsFromOtherSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pi.txt")
	require.NoError(t, os.WriteFile(src, []byte(fixture), 0o644))
	locPath := filepath.Join(dir, "locations.json")
	require.NoError(t, source.WriteLocations(locPath, &types.Locations{
		SourceBLAKE3: "deadbeef",
		Spans:        []types.Span{{Number: "1", Start: 4, End: 7}},
	}))

	rootCmd.SetArgs([]string{"extract", "--source", src, "--locations", locPath, "--output", filepath.Join(dir, "out.json")})
	err := rootCmd.Execute()
	assert.ErrorIs(t, err, source.ErrDigestMismatch)
}

func TestExtract_SummaryWhenWritingToStdout(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pi.txt")
	require.NoError(t, os.WriteFile(src, []byte(fixture), 0o644))

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	rootCmd.SetArgs([]string{"extract", "--source", src, "--locations=", "--output="})
	require.NoError(t, rootCmd.Execute())

	var props []types.Proposition
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &props))
	assert.Len(t, props, 3)

	assert.Contains(t, stderr.String(), "Extracted 3 propositions\n")
	assert.Contains(t, stderr.String(), "Saved to stdout\n")
	assert.Contains(t, stderr.String(), "First proposition: 1\n")
	assert.Contains(t, stderr.String(), "Last proposition: 3\n")
}

func TestPipelineConfig_MissingSourceNamesStage(t *testing.T) {
	rootCmd.SetArgs([]string{"extract", "--source=", "--locations=", "--output="})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: no source")
}
