package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/notjagan/poketypecalc/pkg/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return buf.String(), err
}

func TestSearchCommand(t *testing.T) {
	out, err := execute(t, "search")
	require.NoError(t, err)

	assert.Contains(t, out, "\tFound best: dragon: 16pts.\n\tFound worst: grass: 6pts.\n")
	assert.Contains(t, out, "\tFound best: water, fire: 17pts.\n\tFound worst: normal, grass: 2pts.\n")
}

func TestInspectCommand(t *testing.T) {
	out, err := execute(t, "inspect", "fire", "water")
	require.NoError(t, err)

	assert.Contains(t, out, "Coverage of types 'fire' and 'water':")
	assert.Contains(t, out, "\tdragon: 0.25\n")
}

func TestInspectCommand_UnknownType(t *testing.T) {
	_, err := execute(t, "inspect", "fire", "fairy")
	assert.ErrorIs(t, err, model.ErrUnknownType)
}

func TestInspectCommand_SameType(t *testing.T) {
	_, err := execute(t, "inspect", "fire", "fire")
	assert.ErrorIs(t, err, model.ErrSameType)
}

func TestCoverageCommand(t *testing.T) {
	out, err := execute(t, "coverage", "ghost")
	require.NoError(t, err)

	assert.Contains(t, out, "Coverage of type 'ghost':")
	assert.Contains(t, out, "No Effect (0x)\n\tnormal\n")
}

func TestConfigFile(t *testing.T) {
	// cobra keeps parsed flag values between runs
	t.Cleanup(func() { configPath = "" })

	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte("[search]\ntop = 3\n[log]\nlevel = \"error\"\n"), 0o644)
	require.NoError(t, err)

	out, err := execute(t, "--config", path, "search")
	require.NoError(t, err)
	assert.Contains(t, out, "Top 3:\n")

	err = os.WriteFile(path, []byte("[log]\nlevel = \"loud\"\n"), 0o644)
	require.NoError(t, err)

	_, err = execute(t, "--config", path, "types")
	assert.Error(t, err)
}

func TestTypesCommand(t *testing.T) {
	out, err := execute(t, "types", "p")
	require.NoError(t, err)
	assert.Equal(t, "poison\npsychic\n", out)
}

func TestCompleteTypes(t *testing.T) {
	names, directive := completeTypes(2)(inspectCmd, []string{"fire"}, "st")
	assert.Equal(t, []string{"steel"}, names)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	names, _ = completeTypes(2)(inspectCmd, []string{"fire", "water"}, "")
	assert.Empty(t, names)
}
