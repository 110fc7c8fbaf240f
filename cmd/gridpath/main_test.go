package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gridpath/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveEmptyGrid(t *testing.T) {
	out, err := execute(t, "solve", "--grid", "4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, byte('S'), lines[0][0])
	assert.Equal(t, byte('E'), lines[3][3])
	assert.Equal(t, 5, strings.Count(out, "*"), "seven path cells minus the endpoints")
	assert.Contains(t, lines[4], "path: 6 moves")
}

func TestSolveConfigFileAndEndpoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: 9\nlayout: walls\n"), 0o644))

	out, err := execute(t, "solve", "--config", path, "--start", "0,0", "--end", "8,0")
	require.NoError(t, err)
	assert.Contains(t, out, "path:")

	_, err = execute(t, "solve", "--grid", "5", "--start", "9,9")
	assert.Error(t, err)
	_, err = execute(t, "solve", "--grid", "5", "--start", "2,2", "--end", "2,2")
	assert.Error(t, err)
	_, err = execute(t, "solve", "--start", "oops")
	assert.Error(t, err)
}

func TestSolveRejectsBadConfig(t *testing.T) {
	_, err := execute(t, "solve", "--layout", "spiral")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spiral")
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "sweep", "--grid", "11", "--seeds", "2", "--workers", "2", "--layouts", "empty,maze")
	require.NoError(t, err)
	assert.Contains(t, out, "Sweeping 4 scenarios")
	assert.Contains(t, out, "empty")
	assert.Contains(t, out, "maze")
	assert.Contains(t, out, "100.0%")

	_, err = execute(t, "sweep", "--seeds", "0")
	assert.Error(t, err)
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord(" 3, 4 ", core.Coord{})
	require.NoError(t, err)
	assert.Equal(t, core.Coord{X: 3, Y: 4}, c)

	c, err = parseCoord("", core.Coord{X: 9, Y: 9})
	require.NoError(t, err)
	assert.Equal(t, core.Coord{X: 9, Y: 9}, c)

	_, err = parseCoord("3", core.Coord{})
	assert.Error(t, err)
	_, err = parseCoord("a,1", core.Coord{})
	assert.Error(t, err)
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	on, err := useColor("auto", &buf)
	require.NoError(t, err)
	assert.False(t, on, "buffers are not terminals")

	on, err = useColor("always", &buf)
	require.NoError(t, err)
	assert.True(t, on)

	_, err = useColor("sometimes", &buf)
	assert.Error(t, err)
}

func TestColorizeKeepsLayout(t *testing.T) {
	plain := "S.#\n**E\n"
	colored := colorize(plain)
	assert.Equal(t, 2, strings.Count(colored, "\n"))
	for _, r := range "S#E" {
		assert.Contains(t, colored, string(r))
	}
}

func TestSolveNeverColor(t *testing.T) {
	out, err := execute(t, "solve", "--grid", "3", "--color", "never")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "S**\n..*\n..E\n") || strings.HasPrefix(out, "S..\n*..\n**E\n"))
	assert.NotContains(t, out, "\x1b[")
}
