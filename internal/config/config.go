package config

import (
	"fmt"
	"os"
	"path/filepath"

	"datasetFmt/internal/logger"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Style StyleConfig `toml:"style"`
	Build BuildConfig `toml:"build"`
	UI    UIConfig    `toml:"ui"`
	Log   LogConfig   `toml:"log"`
}

type StyleConfig struct {
	Font         string `toml:"font" validate:"required"`
	DataAlign    string `toml:"data_align" validate:"oneof=left center right"`
	DataFontSize int    `toml:"data_font_size" validate:"min=1,max=409"`
}

type BuildConfig struct {
	TemplateFile  string `toml:"template_file"`
	DataDirectory string `toml:"data_directory"`
	OutputFile    string `toml:"output_file"`
	MetricsFile   string `toml:"metrics_file"`
}

type UIConfig struct {
	RowsPerPage int `toml:"rows_per_page" validate:"min=1"`
}

type LogConfig struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" validate:"min=0"`
	MaxBackups int    `toml:"max_backups" validate:"min=0"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Style: StyleConfig{
			Font:         "Arial",
			DataAlign:    "right",
			DataFontSize: 12,
		},
		Build: BuildConfig{
			TemplateFile:  "configs/template.yaml",
			DataDirectory: "data/input",
			OutputFile:    "data/output/dataset.xlsx",
		},
		UI: UIConfig{
			RowsPerPage: 20,
		},
		Log: LogConfig{
			File:       "logs/datasetfmt.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from the specified config file path
func LoadConfig(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		defaultConfig := Default()
		err = SaveConfig(configPath, defaultConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

func applyDefaults(config *Config) {
	def := Default()
	if config.Style.Font == "" {
		config.Style.Font = def.Style.Font
	}
	if config.Style.DataAlign == "" {
		config.Style.DataAlign = def.Style.DataAlign
	}
	if config.Style.DataFontSize == 0 {
		config.Style.DataFontSize = def.Style.DataFontSize
	}
	if config.Build.TemplateFile == "" {
		config.Build.TemplateFile = def.Build.TemplateFile
	}
	if config.Build.OutputFile == "" {
		config.Build.OutputFile = def.Build.OutputFile
	}
	if config.UI.RowsPerPage == 0 {
		config.UI.RowsPerPage = def.UI.RowsPerPage
	}
	if config.Log.File == "" {
		config.Log.File = def.Log.File
	}
	if config.Log.MaxSizeMB == 0 {
		config.Log.MaxSizeMB = def.Log.MaxSizeMB
	}
}

// Validate checks field constraints declared in struct tags
func Validate(config *Config) error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(config)
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	err = encoder.Encode(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
