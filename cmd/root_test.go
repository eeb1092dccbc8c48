package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	// Keep ./folio.yaml and ./.env lookups inside the test.
	t.Chdir(t.TempDir())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, "folio "+Version+"\n", out)
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, context.Background(), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "folio "+Version)
}

func TestMissingConfigFileFails(t *testing.T) {
	_, err := execute(t, context.Background(), "serve", "--config", "/does/not/exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config")
}

func TestInvalidAnimationFromEnvFails(t *testing.T) {
	t.Setenv("FOLIO_ANIMATION_STIFFNESS", "0")
	_, err := execute(t, context.Background(), "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "follower")
}

func TestInvalidLogLevelFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := execute(t, ctx, "serve", "--log-level", "loud", "--addr", "127.0.0.1:0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level")
}

func TestServeStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logFile := filepath.Join(t.TempDir(), "folio.log")

	_, err := execute(t, ctx, "serve", "--addr", "127.0.0.1:0", "--log-file", logFile)
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "starting server")
}

func TestServeAddr(t *testing.T) {
	assert.Equal(t, ":8080", serveAddr(false, ":8080", ""))
	assert.Equal(t, ":3000", serveAddr(false, ":8080", "3000"))
	assert.Equal(t, ":9000", serveAddr(true, ":9000", "3000"))
}
