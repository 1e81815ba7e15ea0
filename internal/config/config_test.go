package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whilelang/interp/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"sign", "interval", "sinterval", "modulo", "blackhole", "concrete"}, cfg.Domains)
	assert.Equal(t, int64(3), cfg.Modulus)
	assert.False(t, cfg.Verbose)
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "while.yaml")
	require.NoError(t, os.WriteFile(path, []byte("modulus: 7\ndomains:\n  - sign\n  - modulo\n"), 0o644))

	cfg, err := config.Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Modulus)
	assert.Equal(t, []string{"sign", "modulo"}, cfg.Domains)
}

func TestEnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "while.yaml")
	require.NoError(t, os.WriteFile(path, []byte("modulus: 7\n"), 0o644))

	t.Setenv("WHILE_MODULUS", "11")

	cfg, err := config.Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, int64(11), cfg.Modulus)
}

func TestFlagOverridesEverything(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "while.yaml")
	require.NoError(t, os.WriteFile(path, []byte("modulus: 7\n"), 0o644))
	t.Setenv("WHILE_MODULUS", "11")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int64("modulus", 3, "")
	require.NoError(t, fs.Set("modulus", "99"))

	cfg, err := config.Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Modulus)
}

func TestVerboseIsSettableFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "while.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o644))

	cfg, err := config.Load(nil, path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestVerboseIsSettableFromEnv(t *testing.T) {
	t.Setenv("WHILE_VERBOSE", "true")

	cfg, err := config.Load(nil, "")
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestVerboseFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "while.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool("verbose", false, "")
	require.NoError(t, fs.Set("verbose", "false"))

	cfg, err := config.Load(fs, path)
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
}

func TestMissingConfigFileAtDefaultPathIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	_, err = config.Load(nil, "")
	assert.NoError(t, err, "an absent while.yaml/while.json at the default search path is not an error")
}

func TestExplicitMissingConfigFileIsAnError(t *testing.T) {
	_, err := config.Load(nil, filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestModulusBelowOneFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "while.yaml")
	require.NoError(t, os.WriteFile(path, []byte("modulus: 0\n"), 0o644))

	cfg, err := config.Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cfg.Modulus)
}
