package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.OutputDir != "assets" {
		t.Errorf("output dir: got %q", cfg.OutputDir)
	}
	if cfg.AudioDir != filepath.Join("assets", "audio") {
		t.Errorf("audio dir: got %q", cfg.AudioDir)
	}
	if cfg.ModelDir != filepath.Join("assets", "models") {
		t.Errorf("model dir: got %q", cfg.ModelDir)
	}
	if cfg.TextureDir != filepath.Join("assets", "textures") {
		t.Errorf("texture dir: got %q", cfg.TextureDir)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("sample rate: got %d", cfg.SampleRate)
	}
	if cfg.TextureSize != 256 {
		t.Errorf("texture size: got %d", cfg.TextureSize)
	}
	if cfg.Seed != 1 {
		t.Errorf("seed: got %d", cfg.Seed)
	}
	if cfg.Workers < 1 {
		t.Errorf("workers: got %d", cfg.Workers)
	}
}

func TestResolveFlagOverrides(t *testing.T) {
	cfg := Config{OutputDir: "from_file", SampleRate: 22050}
	cfg.Resolve(Flags{OutputDir: "from_flag", Workers: 3, Seed: 99})

	if cfg.OutputDir != "from_flag" {
		t.Errorf("output dir: got %q, flags should win", cfg.OutputDir)
	}
	if cfg.ModelDir != filepath.Join("from_flag", "models") {
		t.Errorf("model dir: got %q", cfg.ModelDir)
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("sample rate: got %d, file value should survive", cfg.SampleRate)
	}
	if cfg.Workers != 3 || cfg.Seed != 99 {
		t.Errorf("workers/seed: got %d/%d", cfg.Workers, cfg.Seed)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"output_dir": "fixtures", "sample_rate": 48000, "workers": 2}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "fixtures" || cfg.SampleRate != 48000 || cfg.Workers != 2 {
		t.Errorf("loaded config: %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should error")
	}
}

func TestWalkerAndWeaponDirs(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{OutputDir: "out"})
	if cfg.WalkerDir() != filepath.Join("out", "models", "walkers") {
		t.Errorf("walker dir: got %q", cfg.WalkerDir())
	}
	if cfg.WeaponDir() != filepath.Join("out", "models", "weapons") {
		t.Errorf("weapon dir: got %q", cfg.WeaponDir())
	}
}
