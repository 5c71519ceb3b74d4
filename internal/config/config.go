package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the file locations and display settings of the monitor.
type Config struct {
	StateFile   string
	AssetsDir   string
	ImageWidth  int
	ImageHeight int
	Scaler      string
	LogLevel    string
	JSONLogs    bool
}

const (
	EnvConfigPath = "BLADDER_CONFIG"

	defaultConfigPath  = "bladder.toml"
	defaultStateFile   = "src/assets/BladderState.txt"
	defaultAssetsDir   = "src/assets"
	defaultImageWidth  = 300
	defaultImageHeight = 300
	defaultScaler      = ScalerNative
	defaultLogLevel    = "info"

	ScalerNative = "native"
	ScalerOpenCV = "opencv"
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		StateFile:   defaultStateFile,
		AssetsDir:   defaultAssetsDir,
		ImageWidth:  defaultImageWidth,
		ImageHeight: defaultImageHeight,
		Scaler:      defaultScaler,
		LogLevel:    defaultLogLevel,
	}
}

// Load parses the TOML config at path, falling back to defaults when the file is missing.
// An empty path resolves through BLADDER_CONFIG and then bladder.toml.
func Load(path string) (Config, error) {
	resolved := resolvePath(path)
	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		StateFile   string `toml:"state_file"`
		AssetsDir   string `toml:"assets_dir"`
		ImageWidth  int    `toml:"image_width"`
		ImageHeight int    `toml:"image_height"`
		Scaler      string `toml:"scaler"`
		LogLevel    string `toml:"log_level"`
		JSONLogs    bool   `toml:"json_logs"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.StateFile); v != "" {
		cfg.StateFile = v
	}
	if v := strings.TrimSpace(raw.AssetsDir); v != "" {
		cfg.AssetsDir = v
	}
	if raw.ImageWidth > 0 {
		cfg.ImageWidth = raw.ImageWidth
	}
	if raw.ImageHeight > 0 {
		cfg.ImageHeight = raw.ImageHeight
	}
	if v := strings.ToLower(strings.TrimSpace(raw.Scaler)); v != "" {
		if v != ScalerNative && v != ScalerOpenCV {
			return Config{}, fmt.Errorf("parse config: unknown scaler %q", raw.Scaler)
		}
		cfg.Scaler = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	cfg.JSONLogs = raw.JSONLogs

	return cfg, nil
}

// AssetPath returns the path of a named asset inside AssetsDir.
func (c Config) AssetPath(name string) string {
	return filepath.Join(c.AssetsDir, name)
}

func resolvePath(path string) string {
	if p := strings.TrimSpace(path); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	return defaultConfigPath
}
