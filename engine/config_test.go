package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tableau/engine/core"
)

func TestLoadApplicationConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadApplicationConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	defaults := DefaultApplicationConfig()
	assert.Equal(t, defaults, config)
}

func TestLoadApplicationConfigOverlaysValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[application]
name = "Desk Still Life"
log_level = "debug"
asset_root = "data"

[window]
width = 1920
height = 1080
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadApplicationConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Desk Still Life", config.Name)
	assert.Equal(t, core.DebugLevel, config.LogLevel)
	assert.Equal(t, "data", config.AssetRoot)
	assert.Equal(t, uint32(1920), config.StartWidth)
	assert.Equal(t, uint32(1080), config.StartHeight)
	// Unset fields keep their defaults.
	assert.Equal(t, uint32(100), config.StartPosX)
}

func TestLoadApplicationConfigPartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[application]\nname = \"x\"\n"), 0o644))

	config, err := LoadApplicationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "x", config.Name)
	assert.Equal(t, uint32(1280), config.StartWidth)
}

func TestLoadApplicationConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0o644))

	_, err := LoadApplicationConfig(path)
	assert.Error(t, err)
}

func TestLoadApplicationConfigRejectsUnknownLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[application]\nlog_level = \"loud\"\n"), 0o644))

	_, err := LoadApplicationConfig(path)
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	for input, want := range map[string]core.LogLevel{
		"debug":   core.DebugLevel,
		"Info":    core.InfoLevel,
		"WARN":    core.WarnLevel,
		"warning": core.WarnLevel,
		"error":   core.ErrorLevel,
	} {
		level, err := parseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, level, input)
	}
}
