package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/canopy/internal/tree"
)

// writeFixture writes the given files under a fresh temp root and
// returns the root path. Keys are slash-separated relative paths.
func writeFixture(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, src := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
		require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	}
	return root
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err, "RootPath is required")

	cfg, err := NewConfig(Config{RootPath: "tree"})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output, "output defaults to json")

	_, err = NewConfig(Config{RootPath: "tree", Output: "xml"})
	require.Error(t, err)
}

func TestApp_RunRendersNamespaceJSON(t *testing.T) {
	t.Parallel()

	root := writeFixture(t, map[string]string{
		"service/default.hcl": `{ host = "localhost", port = base_port + 1 }`,
		"limits.hcl":          `{ max = 10 }`,
	})
	argsPath := filepath.Join(writeFixture(t, map[string]string{
		"args.hcl": `base_port = 8000`,
	}), "args.hcl")

	cfg, err := NewConfig(Config{RootPath: root, ArgsPath: argsPath, LogLevel: "debug"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	a := NewApp(out, logs, cfg)
	require.NoError(t, a.Run(context.Background()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, map[string]any{
		"service": map[string]any{
			"host": "localhost",
			"port": float64(8001),
		},
		"limits": map[string]any{
			"max": float64(10),
		},
	}, got)
	assert.Contains(t, logs.String(), "Namespace loaded successfully.")
}

func TestApp_RunOutputNone(t *testing.T) {
	t.Parallel()

	root := writeFixture(t, map[string]string{
		"x.hcl": `1`,
	})

	cfg, err := NewConfig(Config{RootPath: root, Output: "none"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := NewApp(out, &bytes.Buffer{}, cfg)
	require.NoError(t, a.Run(context.Background()))
	assert.Zero(t, out.Len(), "output 'none' must not print the namespace")
}

func TestApp_RunRootSkipTreeFails(t *testing.T) {
	t.Parallel()

	root := writeFixture(t, map[string]string{
		".skip-tree": "",
	})

	cfg, err := NewConfig(Config{RootPath: root})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg)
	err = a.Run(context.Background())
	var rootSkipped *tree.RootSkippedError
	require.ErrorAs(t, err, &rootSkipped)
}

func TestApp_RunBrokenModuleFails(t *testing.T) {
	t.Parallel()

	root := writeFixture(t, map[string]string{
		"bad.hcl": `{ unterminated = `,
	})

	cfg, err := NewConfig(Config{RootPath: root})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg)
	err = a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.hcl")
}
