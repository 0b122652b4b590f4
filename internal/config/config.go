package config

import (
	"os"
	"path/filepath"

	"github.com/davidwu111/extract-livp/internal/archive"
	"gopkg.in/yaml.v3"
)

// DefaultOutputDirName is the subdirectory created under the source
// directory when no explicit output directory is configured.
const DefaultOutputDirName = "converted"

type Config struct {
	Source          string   `yaml:"source" json:"source"`
	OutputDir       string   `yaml:"output_dir" json:"output_dir"`
	ImageExtensions []string `yaml:"image_extensions" json:"image_extensions"`
	VideoExtension  string   `yaml:"video_extension" json:"video_extension"`
	LogFile         string   `yaml:"log_file" json:"log_file"`
	LogJSON         bool     `yaml:"log_json" json:"log_json"`
	DryRun          bool     `yaml:"dry_run" json:"dry_run"`
	CRCVerify       bool     `yaml:"crc_verify" json:"crc_verify"`
	AssumeYes       bool     `yaml:"assume_yes" json:"assume_yes"`
}

func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	logDir := filepath.Join(homeDir, ".extract-livp")

	return &Config{
		ImageExtensions: archive.DefaultImageExtensions,
		VideoExtension:  archive.VideoExtension,
		LogFile:         filepath.Join(logDir, "extract-livp.log"),
		LogJSON:         false,
		DryRun:          false,
		CRCVerify:       false,
		AssumeYes:       false,
	}
}

func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and fills derived defaults. The output
// directory defaults to a "converted" subdirectory of the source so prior
// runs' results double as cross-run collision state.
func (c *Config) Validate() error {
	if c.Source == "" {
		return &ValidationError{Field: "source", Message: "source path is required"}
	}

	info, err := os.Stat(c.Source)
	if err != nil || !info.IsDir() {
		return &ValidationError{Field: "source", Message: "source is not a valid directory: " + c.Source}
	}

	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.Source, DefaultOutputDirName)
	}
	if len(c.ImageExtensions) == 0 {
		c.ImageExtensions = archive.DefaultImageExtensions
	}
	if c.VideoExtension == "" {
		c.VideoExtension = archive.VideoExtension
	}

	homeDir, _ := os.UserHomeDir()
	if c.LogFile == "" {
		c.LogFile = filepath.Join(homeDir, ".extract-livp", "extract-livp.log")
	}

	return nil
}

// OutputExtensions returns the full recognized output extension set: the
// video extension plus every image extension. The name allocator checks
// disk collisions against each of these.
func (c *Config) OutputExtensions() []string {
	exts := make([]string, 0, len(c.ImageExtensions)+1)
	exts = append(exts, c.VideoExtension)
	exts = append(exts, c.ImageExtensions...)
	return exts
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
