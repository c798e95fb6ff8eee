package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-pairdot/internal/harness"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRunSmall(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "timings.svg")
	stdout, _, err := execute(t,
		"--rows-a", "20", "--rows-b", "30", "--rows-c", "40",
		"--scenarios", "compiled,compiled-concurrent",
		"--no-progress", "--plot", plot)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "A 20×10, B 30×10, C 40×10, seed 100, workers 2")
	require.True(t, strings.HasPrefix(lines[1], "compiled "), lines[1])
	require.True(t, strings.HasPrefix(lines[2], "compiled-concurrent "), lines[2])
	require.FileExists(t, plot)
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t,
		"--rows-a", "8", "--rows-b", "8", "--rows-c", "8", "--cols", "3",
		"--scenarios", "naive", "--no-progress", "-v")
	require.NoError(t, err)
	require.Contains(t, stdout, "naive")
	require.Contains(t, stderr, "scenario=naive")
	require.NotContains(t, stdout, "level=DEBUG")
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, _, err := execute(t, "--workers", "0")
	require.ErrorIs(t, err, harness.ErrInvalidConfig)

	_, _, err = execute(t, "--scenarios", "jit")
	require.ErrorIs(t, err, harness.ErrInvalidConfig)
}

func TestRunRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	require.Error(t, err)
}

func TestScenariosCmd(t *testing.T) {
	stdout, _, err := execute(t, "scenarios")
	require.NoError(t, err)
	for _, name := range harness.ScenarioNames() {
		require.Contains(t, stdout, name)
	}
}

func TestCPUCmd(t *testing.T) {
	stdout, _, err := execute(t, "cpu")
	require.NoError(t, err)
	require.Contains(t, stdout, "GOARCH:")
	require.Contains(t, stdout, "Dispatch level:")
}
