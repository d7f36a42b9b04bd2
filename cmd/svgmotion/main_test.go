package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getProjectRoot returns the absolute path to the project root.
func getProjectRoot(t *testing.T) string {
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	t.Fatal("go.mod not found")
	return ""
}

func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping build test in short mode")
	}
	binPath := filepath.Join(t.TempDir(), "svgmotion-test")
	buildCmd := exec.Command("go", "build", "-o", binPath, ".")
	buildCmd.Dir = filepath.Join(getProjectRoot(t), "cmd", "svgmotion")
	output, err := buildCmd.CombinedOutput()
	require.NoError(t, err, "build failed: %s", string(output))
	return binPath
}

func TestMainHelpFlag(t *testing.T) {
	bin := buildBinary(t)

	out, err := exec.Command(bin, "--help").CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(out), "svgmotion embeds animation presets")
}

func TestMainStdinPipeline(t *testing.T) {
	bin := buildBinary(t)
	dir := t.TempDir()

	embedCmd := exec.Command(bin, "embed", "-", "--type", "spin")
	embedCmd.Dir = dir
	embedCmd.Stdin = strings.NewReader(`<svg><path d="M0 0"/></svg>`)
	animated, err := embedCmd.Output()
	require.NoError(t, err)

	detectCmd := exec.Command(bin, "detect", "-", "--no-color")
	detectCmd.Dir = dir
	detectCmd.Stdin = strings.NewReader(string(animated))
	out, err := detectCmd.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Animation: spin")
}

func TestMainErrorExitCode(t *testing.T) {
	bin := buildBinary(t)

	cmd := exec.Command(bin, "detect", filepath.Join(t.TempDir(), "missing.svg"))
	out, err := cmd.CombinedOutput()
	require.Error(t, err)
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), "svgmotion")
}
