package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScottSallinen/misrand/graph"
	"github.com/ScottSallinen/misrand/mis"
)

func writeGraph(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func parseFlags(args ...string) (RunOptions, error) {
	fs := flag.NewFlagSet("lp-mis", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return FlagsToOptions(fs, args)
}

func runRecord(t *testing.T, args ...string) map[string]any {
	t.Helper()
	ro, err := parseFlags(args...)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), ro, &out))

	var record map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	return record
}

func TestFlagDefaults(t *testing.T) {
	ro, err := parseFlags("-g", "some.txt")
	require.NoError(t, err)

	assert.Equal(t, "some.txt", ro.GraphPath)
	assert.Equal(t, uint32(mis.DefaultTrials), ro.Search.Trials)
	assert.Equal(t, mis.Maximize, ro.Search.Policy)
	assert.Equal(t, 0, ro.Search.Threads)
	assert.False(t, ro.Check)
	assert.False(t, ro.IncludeAll)

	ro, err = parseFlags("-g", "x", "-n", "5", "-s", "-t", "3", "-seed", "9", "-c", "-stats")
	require.NoError(t, err)
	assert.Equal(t, mis.Options{Trials: 5, Threads: 3, Policy: mis.Minimize, Seed: 9}, ro.Search)
	assert.True(t, ro.Check)
	assert.True(t, ro.IncludeAll)
}

func TestFlagErrors(t *testing.T) {
	_, err := parseFlags()
	assert.ErrorContains(t, err, "-g")

	_, err = parseFlags("-g", "x", "-t", "-2")
	assert.ErrorIs(t, err, mis.ErrInvalidThreads)

	_, err = parseFlags("-g", "x", "-n", "0")
	assert.ErrorIs(t, err, mis.ErrNoTrials)

	_, err = parseFlags("-g", "x", "-n", "lots")
	assert.Error(t, err)
}

func TestRunPathGraph(t *testing.T) {
	path := writeGraph(t, "A B\nB C\n")

	record := runRecord(t, "-g", path, "-n", "1000", "-seed", "3", "-c")
	assert.Equal(t, float64(2), record["size"])
	assert.Equal(t, []any{"A", "C"}, record["members"])
	assert.NotContains(t, record, "stats")

	record = runRecord(t, "-g", path, "-n", "1000", "-seed", "3", "-s", "-stats")
	assert.Equal(t, float64(1), record["size"])
	assert.Equal(t, []any{"B"}, record["members"])
	require.Contains(t, record, "stats")
	stats := record["stats"].(map[string]any)
	assert.Equal(t, float64(1000), stats["trials"])
	assert.Contains(t, record, "seed")
	assert.Contains(t, record, "trial")
}

func TestRunHashIds(t *testing.T) {
	path := writeGraph(t, "#1 #2\n#2 #3\n")
	record := runRecord(t, "-g", path, "-n", "1000", "-seed", "3", "-c")
	assert.Equal(t, float64(2), record["size"])
	assert.Equal(t, []any{"#1", "#3"}, record["members"])
}

func TestRunEmptyGraph(t *testing.T) {
	path := writeGraph(t, "")
	record := runRecord(t, "-g", path, "-n", "10")
	assert.Equal(t, float64(0), record["size"])
	assert.Equal(t, []any{}, record["members"])
}

func TestRunErrorsPrintNothing(t *testing.T) {
	for name, text := range map[string]string{
		"malformed":  "A B\nC\n",
		"blank line": "A B\n\nC D\n",
		"lone hash":  "A B\n#\n",
	} {
		t.Run(name, func(t *testing.T) {
			ro, err := parseFlags("-g", writeGraph(t, text), "-n", "10")
			require.NoError(t, err)
			var out bytes.Buffer
			err = Run(context.Background(), ro, &out)
			assert.ErrorIs(t, err, graph.ErrMalformedEdge)
			assert.Zero(t, out.Len())
		})
	}

	ro, err := parseFlags("-g", filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	var out bytes.Buffer
	assert.ErrorIs(t, Run(context.Background(), ro, &out), graph.ErrOpenGraph)
	assert.Zero(t, out.Len())
}
