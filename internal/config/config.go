package config

import (
	"os"
	"strings"

	"github.com/On-Jun9/ShutterRename/pkg/types"
	"gopkg.in/yaml.v3"
)

type Config struct {
	IncludeExtensions []string                     `yaml:"include_extensions" json:"include_extensions"`
	DateFormat        types.DateFormat             `yaml:"date_format" json:"date_format"`
	MissingExtension  types.MissingExtensionPolicy `yaml:"missing_extension" json:"missing_extension"`
	LogFile           string                       `yaml:"log_file" json:"log_file"`
	LogJSON           bool                         `yaml:"log_json" json:"log_json"`
	Color             types.ColorMode              `yaml:"color" json:"color"`
	LockDir           bool                         `yaml:"lock_dir" json:"lock_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		IncludeExtensions: []string{"jpg", "png", "jpeg", "gif", "tiff", "raw", "heic"},
		DateFormat:        types.DateFormatDate,
		MissingExtension:  types.MissingExtensionSkip,
		LogFile:           "",
		LogJSON:           false,
		Color:             types.ColorAuto,
		LockDir:           true,
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

// Validate checks the config and normalizes extensions to lowercase without a
// leading dot. Empty enum fields fall back to their defaults.
func (c *Config) Validate() error {
	exts := make([]string, 0, len(c.IncludeExtensions))
	for _, ext := range c.IncludeExtensions {
		ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
		if ext == "" {
			continue
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		return &ValidationError{Field: "include_extensions", Message: "at least one extension is required"}
	}
	c.IncludeExtensions = exts

	switch c.DateFormat {
	case "":
		c.DateFormat = types.DateFormatDate
	case types.DateFormatDate, types.DateFormatDateTime:
	default:
		return &ValidationError{Field: "date_format", Message: "must be date or datetime"}
	}

	switch c.MissingExtension {
	case "":
		c.MissingExtension = types.MissingExtensionSkip
	case types.MissingExtensionSkip, types.MissingExtensionFail:
	default:
		return &ValidationError{Field: "missing_extension", Message: "must be skip or fail"}
	}

	switch c.Color {
	case "":
		c.Color = types.ColorAuto
	case types.ColorAuto, types.ColorAlways, types.ColorNever:
	default:
		return &ValidationError{Field: "color", Message: "must be auto, always or never"}
	}

	return nil
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
