package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds output locations and generation settings.
type Config struct {
	// Paths
	OutputDir  string `json:"output_dir"`
	AudioDir   string `json:"audio_dir"`
	ModelDir   string `json:"model_dir"`
	TextureDir string `json:"texture_dir"`

	// Generation settings
	SampleRate  int   `json:"sample_rate"`
	TextureSize int   `json:"texture_size"`
	Seed        int64 `json:"seed"`
	Workers     int   `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	SampleRate  int
	TextureSize int
	Seed        int64
	Workers     int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.SampleRate > 0 {
		c.SampleRate = flags.SampleRate
	}
	if flags.TextureSize > 0 {
		c.TextureSize = flags.TextureSize
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "assets"
	}

	// Resolve relative subdirectories against the output dir
	if c.AudioDir == "" {
		c.AudioDir = filepath.Join(c.OutputDir, "audio")
	} else if !filepath.IsAbs(c.AudioDir) {
		c.AudioDir = filepath.Join(c.OutputDir, c.AudioDir)
	}
	if c.ModelDir == "" {
		c.ModelDir = filepath.Join(c.OutputDir, "models")
	} else if !filepath.IsAbs(c.ModelDir) {
		c.ModelDir = filepath.Join(c.OutputDir, c.ModelDir)
	}
	if c.TextureDir == "" {
		c.TextureDir = filepath.Join(c.OutputDir, "textures")
	} else if !filepath.IsAbs(c.TextureDir) {
		c.TextureDir = filepath.Join(c.OutputDir, c.TextureDir)
	}

	// Defaults for generation settings
	if c.SampleRate <= 0 {
		c.SampleRate = 44100
	}
	if c.TextureSize <= 0 {
		c.TextureSize = 256
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// WalkerDir returns the subdirectory for walker models.
func (c *Config) WalkerDir() string {
	return filepath.Join(c.ModelDir, "walkers")
}

// WeaponDir returns the subdirectory for weapon models.
func (c *Config) WeaponDir() string {
	return filepath.Join(c.ModelDir, "weapons")
}
