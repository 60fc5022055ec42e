package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/tableau/engine/core"
)

// fileConfig mirrors the on-disk TOML layout.
type fileConfig struct {
	Application struct {
		Name      string `toml:"name"`
		LogLevel  string `toml:"log_level"`
		AssetRoot string `toml:"asset_root"`
	} `toml:"application"`
	Window struct {
		PosX   uint32 `toml:"pos_x"`
		PosY   uint32 `toml:"pos_y"`
		Width  uint32 `toml:"width"`
		Height uint32 `toml:"height"`
	} `toml:"window"`
}

// DefaultApplicationConfig returns the configuration used when no config
// file is present.
func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  1280,
		StartHeight: 720,
		Name:        "Tableau",
		LogLevel:    core.InfoLevel,
		AssetRoot:   "assets",
	}
}

// LoadApplicationConfig reads a TOML config file and overlays it on the
// defaults. A missing file is not an error; a malformed one is.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			core.LogDebug("no config file at '%s', using defaults", path)
			return config, nil
		}
		return nil, fmt.Errorf("could not read config '%s': %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("could not parse config '%s': %w", path, err)
	}

	if fc.Application.Name != "" {
		config.Name = fc.Application.Name
	}
	if fc.Application.AssetRoot != "" {
		config.AssetRoot = fc.Application.AssetRoot
	}
	if fc.Application.LogLevel != "" {
		level, err := parseLogLevel(fc.Application.LogLevel)
		if err != nil {
			return nil, err
		}
		config.LogLevel = level
	}
	if fc.Window.Width != 0 {
		config.StartWidth = fc.Window.Width
	}
	if fc.Window.Height != 0 {
		config.StartHeight = fc.Window.Height
	}
	if fc.Window.PosX != 0 {
		config.StartPosX = fc.Window.PosX
	}
	if fc.Window.PosY != 0 {
		config.StartPosY = fc.Window.PosY
	}

	return config, nil
}

func parseLogLevel(s string) (core.LogLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return core.DebugLevel, nil
	case "info":
		return core.InfoLevel, nil
	case "warn", "warning":
		return core.WarnLevel, nil
	case "error":
		return core.ErrorLevel, nil
	}
	return core.InfoLevel, fmt.Errorf("unknown log level '%s'", s)
}
