package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.ImageExtensions) == 0 {
		t.Error("expected default image extensions")
	}
	if cfg.VideoExtension != ".mov" {
		t.Errorf("expected .mov, got %s", cfg.VideoExtension)
	}
	if cfg.LogFile == "" {
		t.Error("expected default log file")
	}
}

func TestValidate_RequiresSource(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing source")
	}

	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if vErr.Field != "source" {
		t.Errorf("expected source field, got %s", vErr.Field)
	}
}

func TestValidate_RejectsNonDirectorySource(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "not-a-dir")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Source = filePath

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for file source")
	}
}

func TestValidate_DefaultsOutputDirUnderSource(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Source = tmpDir

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	want := filepath.Join(tmpDir, "converted")
	if cfg.OutputDir != want {
		t.Errorf("expected %s, got %s", want, cfg.OutputDir)
	}
}

func TestValidate_KeepsExplicitOutputDir(t *testing.T) {
	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "elsewhere")

	cfg := DefaultConfig()
	cfg.Source = tmpDir
	cfg.OutputDir = outDir

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.OutputDir != outDir {
		t.Errorf("explicit output dir replaced: %s", cfg.OutputDir)
	}
}

func TestOutputExtensions(t *testing.T) {
	cfg := DefaultConfig()

	exts := cfg.OutputExtensions()
	if len(exts) != len(cfg.ImageExtensions)+1 {
		t.Fatalf("expected %d extensions, got %d", len(cfg.ImageExtensions)+1, len(exts))
	}
	if exts[0] != cfg.VideoExtension {
		t.Errorf("expected video extension first, got %s", exts[0])
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	content := `
source: /photos
output_dir: /photos/out
log_json: true
crc_verify: true
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Source != "/photos" {
		t.Errorf("source not loaded: %s", cfg.Source)
	}
	if cfg.OutputDir != "/photos/out" {
		t.Errorf("output dir not loaded: %s", cfg.OutputDir)
	}
	if !cfg.LogJSON || !cfg.CRCVerify {
		t.Error("boolean fields not loaded")
	}
	// Unset fields keep their defaults.
	if cfg.VideoExtension != ".mov" {
		t.Errorf("default video extension lost: %s", cfg.VideoExtension)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("source: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(cfgPath); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
