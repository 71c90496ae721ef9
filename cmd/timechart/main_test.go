package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~whereswaldon/timechart/chart"
)

const trace = "events, app, 0, START\nevents, app, 100, STOP\n"

// run executes the CLI with a fresh config file and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "timechart.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("surface:\n  width: 400\n  height: 200\n"), 0o644))
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeTrace(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.csv")
	require.NoError(t, os.WriteFile(path, []byte(trace), 0o644))
	return path
}

func TestParseEntryID(t *testing.T) {
	type testcase struct {
		in       string
		expected chart.EntryID
		fails    bool
	}
	for _, tc := range []testcase{
		{in: "cpu@42", expected: chart.EntryID{Key: "cpu", Timestamp: 42}},
		{in: "user@host@-7", expected: chart.EntryID{Key: "user@host", Timestamp: -7}},
		{in: "cpu", fails: true},
		{in: "@42", fails: true},
		{in: "cpu@soon", fails: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			id, err := parseEntryID(tc.in)
			if tc.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "events.png")
	_, err := run(t, "render", writeTrace(t), "--kind", "events", "--highlight", "app", "--select", "app@100", "-o", out)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRenderCommandErrors(t *testing.T) {
	_, err := run(t, "render", writeTrace(t), "--kind", "pie")
	assert.Error(t, err)
	_, err = run(t, "render", writeTrace(t), "--from", "10", "--to", "5")
	assert.True(t, errors.Is(err, chart.ErrInvertedFrame))
	_, err = run(t, "render", writeTrace(t), "--select", "nope")
	assert.Error(t, err)
}

func TestQueryCommand(t *testing.T) {
	// Two rows between a padding of 12 are centered at y=56 and y=144;
	// STOP at the end of the frame sits on the right edge.
	out, err := run(t, "query", writeTrace(t), "--kind", "events", "--x", "395", "--y", "138", "--radius", "10", "--json")
	require.NoError(t, err)
	var res queryResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "app", res.Key)
	assert.Equal(t, int64(100), res.Timestamp)
	assert.Equal(t, 2, res.Line)
	assert.Equal(t, []string{"events", "app", "100", "STOP"}, res.Fields)

	_, err = run(t, "query", writeTrace(t), "--kind", "events", "--x", "200", "--y", "5", "--radius", "5")
	assert.True(t, errors.Is(err, errNoEntry))
}

func TestPaletteCommand(t *testing.T) {
	out, err := run(t, "palette", "-n", "3", "--dark")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "0 #"))
	assert.NotEqual(t, lines[0][2:], lines[1][2:])
}
