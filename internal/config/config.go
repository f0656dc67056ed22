package config

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Dir is the per-project state directory, relative to the project root.
const Dir = ".puml"

// Config holds all configuration for puml.
type Config struct {
	Sync    SyncConfig    `yaml:"sync"`
	Logging LoggingConfig `yaml:"logging"`
}

// SyncConfig controls which files `puml sync` picks up.
type SyncConfig struct {
	Includes         []string `yaml:"includes"`
	Excludes         []string `yaml:"excludes"`
	RespectGitignore bool     `yaml:"respect_gitignore"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Sync: SyncConfig{
			Includes:         []string{"**/*.puml", "**/*.plantuml", "**/*.iuml"},
			Excludes:         []string{"**/node_modules/**", "**/vendor/**", "**/.git/**"},
			RespectGitignore: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads .puml/config.yaml under dir, falling back to defaults.
func LoadFromDir(dir string) (*Config, error) {
	return Load(Path(dir))
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks values that cannot be caught by unmarshalling.
func (c *Config) Validate() error {
	if len(c.Sync.Includes) == 0 {
		return fmt.Errorf("sync.includes must not be empty")
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// LogLevel returns the configured level, or info if it does not parse.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Path returns the config file location for a project root.
func Path(dir string) string {
	return filepath.Join(dir, Dir, "config.yaml")
}

// DBPath returns the database location for a project root.
func DBPath(dir string) string {
	return filepath.Join(dir, Dir, "puml.db")
}
