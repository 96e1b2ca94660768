package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, directory, name, content string) string {
	t.Helper()
	path := filepath.Join(directory, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	configuration, err := Load(LoadOptions{WorkingDirectory: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, Default(), configuration)
}

func TestLoadLocalFile(t *testing.T) {
	directory := t.TempDir()
	writeConfig(t, directory, "hopdist.yaml", "input: net.txt\nformat: json\nmax_depth: 3\nparallelism: 2\n")

	configuration, err := Load(LoadOptions{WorkingDirectory: directory})
	require.NoError(t, err)
	assert.Equal(t, "net.txt", configuration.Input)
	assert.Equal(t, "json", configuration.Format)
	assert.Equal(t, 3, configuration.MaxDepth)
	assert.Equal(t, 2, configuration.Parallelism)
	assert.Equal(t, "info", configuration.LogLevel)
}

func TestLoadExplicitFile(t *testing.T) {
	directory := t.TempDir()
	writeConfig(t, directory, "hopdist.yaml", "format: json\n")
	explicit := writeConfig(t, directory, "custom.yaml", "format: yaml\nlog_level: debug\n")

	configuration, err := Load(LoadOptions{WorkingDirectory: directory, ExplicitFilePath: explicit})
	require.NoError(t, err)
	assert.Equal(t, "yaml", configuration.Format)
	assert.Equal(t, "debug", configuration.LogLevel)

	_, err = Load(LoadOptions{ExplicitFilePath: filepath.Join(directory, "missing.yaml")})
	assert.Error(t, err)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	directory := t.TempDir()
	writeConfig(t, directory, "hopdist.yaml", "format: json\ninput: a.txt\n")
	t.Setenv("HOPDIST_FORMAT", "yaml")
	t.Setenv("HOPDIST_MAX_DEPTH", "4")

	configuration, err := Load(LoadOptions{WorkingDirectory: directory})
	require.NoError(t, err)
	assert.Equal(t, "yaml", configuration.Format)
	assert.Equal(t, 4, configuration.MaxDepth)
	assert.Equal(t, "a.txt", configuration.Input)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := map[string]string{
		"negative_depth":       "max_depth: -1\n",
		"negative_parallelism": "parallelism: -2\n",
		"empty_input":          "input: \"\"\n",
	}
	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			directory := t.TempDir()
			writeConfig(t, directory, "hopdist.yaml", content)
			_, err := Load(LoadOptions{WorkingDirectory: directory})
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	directory := t.TempDir()
	writeConfig(t, directory, "hopdist.yaml", "format: [unterminated\n")
	_, err := Load(LoadOptions{WorkingDirectory: directory})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfiguration)
}
