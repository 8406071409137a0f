package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultWorkers     = 1
	defaultLogLevel    = "info"
	defaultLogEncoding = "json"
	maxWorkers         = 64
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	ResourceDirs []string `yaml:"resource_dirs"`
	Workers      int      `yaml:"workers"`
	LogLevel     string   `yaml:"log_level"`
	LogEncoding  string   `yaml:"log_encoding"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	ResourceDirs []string    `yaml:"resource_dirs"`
	Workers      int         `yaml:"workers"`
	Log          yamlLogging `yaml:"log"`
}

// yamlLogging represents the log section in YAML.
type yamlLogging struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile   string
	ResourceDirs []string
	Workers      *int
	LogLevel     *string
	LogEncoding  *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables (overridden by YAML)
	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		ResourceDirs: []string{"."},
		Workers:      defaultWorkers,
		LogLevel:     defaultLogLevel,
		LogEncoding:  defaultLogEncoding,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if dirs := cleanDirs(yamlCfg.ResourceDirs); len(dirs) > 0 {
		cfg.ResourceDirs = dirs
	}

	if yamlCfg.Workers > 0 {
		cfg.Workers = yamlCfg.Workers
	}

	if level := strings.TrimSpace(yamlCfg.Log.Level); level != "" {
		cfg.LogLevel = level
	}

	if encoding := strings.TrimSpace(yamlCfg.Log.Encoding); encoding != "" {
		cfg.LogEncoding = encoding
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if rawDirs := strings.TrimSpace(os.Getenv("PACKER_RESOURCE_DIRS")); rawDirs != "" {
		if dirs := cleanDirs(strings.Split(rawDirs, ",")); len(dirs) > 0 {
			cfg.ResourceDirs = dirs
		}
	}

	if workers := strings.TrimSpace(os.Getenv("PACKER_WORKERS")); workers != "" {
		if value, err := strconv.Atoi(workers); err == nil && value > 0 {
			cfg.Workers = value
		}
	}

	if level := strings.TrimSpace(os.Getenv("PACKER_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if encoding := strings.TrimSpace(os.Getenv("PACKER_LOG_ENCODING")); encoding != "" {
		cfg.LogEncoding = encoding
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if dirs := cleanDirs(overrides.ResourceDirs); len(dirs) > 0 {
		cfg.ResourceDirs = dirs
	}

	if overrides.Workers != nil && *overrides.Workers > 0 {
		cfg.Workers = *overrides.Workers
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	if overrides.LogEncoding != nil && *overrides.LogEncoding != "" {
		cfg.LogEncoding = *overrides.LogEncoding
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.Workers < 1 || cfg.Workers > maxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d", maxWorkers, cfg.Workers)
	}
	if len(cfg.ResourceDirs) == 0 {
		return fmt.Errorf("resource dirs cannot be empty")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	switch cfg.LogEncoding {
	case "json", "console":
	default:
		return fmt.Errorf("log encoding must be json or console, got %q", cfg.LogEncoding)
	}
	return nil
}

// cleanDirs trims entries and drops blanks.
func cleanDirs(raw []string) []string {
	dirs := make([]string, 0, len(raw))
	for _, dir := range raw {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}
