package sqlguide

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the sqlguide configuration
type Config struct {
	// Source is the path to the catalog document. Empty means the embedded
	// reference guide.
	Source string       `yaml:"source"`
	Output string       `yaml:"output"`
	Color  string       `yaml:"color"`
	Search SearchConfig `yaml:"search"`
}

// SearchConfig represents search command settings
type SearchConfig struct {
	Limit int `yaml:"limit"`
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	if config.Output != "" {
		validFormats := map[string]bool{
			"text":     true,
			"table":    true,
			"json":     true,
			"yaml":     true,
			"csv":      true,
			"markdown": true,
			"xml":      true,
		}
		if !validFormats[config.Output] {
			return fmt.Errorf("%w: output '%s' is invalid: must be one of text, table, json, yaml, csv, markdown, xml", ErrConfigValidation, config.Output)
		}
	}

	if config.Color != "" {
		validColors := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColors[config.Color] {
			return fmt.Errorf("%w: color '%s' is invalid: must be one of auto, always, never", ErrConfigValidation, config.Color)
		}
	}

	if config.Search.Limit < 0 {
		return fmt.Errorf("%w: search.limit must be non-negative, got %d", ErrConfigValidation, config.Search.Limit)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Source: "",
		Output: "text",
		Color:  "auto",
		Search: SearchConfig{
			Limit: 0, // 0 means unlimited
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	if config.Output == "" {
		config.Output = "text"
	}

	if config.Color == "" {
		config.Color = "auto"
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	// Pattern for ${VAR} format
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		return os.Getenv(varName)
	})

	// Pattern for $VAR format (word boundaries)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		return os.Getenv(varName)
	})

	return s
}

// expandConfigEnvVars expands environment variables in path values
func expandConfigEnvVars(config *Config) {
	config.Source = expandEnvVars(config.Source)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
