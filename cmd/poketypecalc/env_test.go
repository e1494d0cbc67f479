package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	return &buf
}

func TestLoadEnv_Missing(t *testing.T) {
	buf := captureLog(t)

	loadEnv(filepath.Join(t.TempDir(), ".env"))
	assert.Empty(t, buf.String())
}

func TestLoadEnv_Malformed(t *testing.T) {
	buf := captureLog(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BAD!KEY=1\n"), 0o644))

	loadEnv(path)
	assert.Contains(t, buf.String(), "could not load env file")
}

func TestLoadEnv(t *testing.T) {
	buf := captureLog(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("POKETYPECALC_ENV_TEST=fire\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("POKETYPECALC_ENV_TEST") })

	loadEnv(path)
	assert.Empty(t, buf.String())
	assert.Equal(t, "fire", os.Getenv("POKETYPECALC_ENV_TEST"))
}
