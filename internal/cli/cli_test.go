package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PositionalRootPath(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"./tree"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "./tree", cfg.RootPath)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_RootFlagWinsOverPositional(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-root", "./a", "./b"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "./a", cfg.RootPath)
}

func TestParse_ShorthandFlag(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, _, err := Parse([]string{"-r", "./tree"}, out)
	require.NoError(t, err)
	assert.Equal(t, "./tree", cfg.RootPath)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	out := &bytes.Buffer{}

	_, _, err := Parse([]string{"-log-level", "loud", "./tree"}, out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogFormat(t *testing.T) {
	out := &bytes.Buffer{}

	_, _, err := Parse([]string{"-log-format", "xml", "./tree"}, out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidOutput(t *testing.T) {
	out := &bytes.Buffer{}

	_, _, err := Parse([]string{"-output", "yaml", "./tree"}, out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_EnvDefaults(t *testing.T) {
	t.Setenv("CANOPY_LOG_LEVEL", "debug")
	t.Setenv("CANOPY_OUTPUT", "none")

	cfg, _, err := Parse([]string{"./tree"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "none", cfg.Output)
}
