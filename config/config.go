package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for stopdfa.
type Config struct {
	Stopwords StopwordsConfig `yaml:"stopwords"`
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Scan      ScanConfig      `yaml:"scan"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// StopwordsConfig selects the stopword list.
type StopwordsConfig struct {
	Language string   `yaml:"language"`
	Extra    []string `yaml:"extra"`
	File     string   `yaml:"file"` // one word per line, relative to the config directory
}

// AnalyzerConfig holds tokenizer and normalizer configuration.
type AnalyzerConfig struct {
	Contractions []string `yaml:"contractions"`
	NFC          bool     `yaml:"nfc"`
	Stem         bool     `yaml:"stem"`
}

// ScanConfig holds batch scan configuration.
type ScanConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Workers  int      `yaml:"workers"`
}

// OutputConfig holds terminal output configuration.
type OutputConfig struct {
	Color bool `yaml:"color"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Stopwords: StopwordsConfig{
			Language: "english",
			Extra:    []string{"can't"},
		},
		Analyzer: AnalyzerConfig{
			Contractions: []string{
				"aren't", "can't", "couldn't", "didn't", "doesn't", "don't", "hadn't",
				"hasn't", "haven't", "isn't", "mightn't", "mustn't", "needn't", "shan't",
				"shouldn't", "wasn't", "weren't", "won't", "wouldn't",
			},
			NFC:  false,
			Stem: false,
		},
		Scan: ScanConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/node_modules/**", "**/vendor/**", "**/.git/**"},
			Workers:  4,
		},
		Output: OutputConfig{
			Color: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Stopwords.File != "" && !filepath.IsAbs(cfg.Stopwords.File) {
		cfg.Stopwords.File = filepath.Join(filepath.Dir(path), cfg.Stopwords.File)
	}

	return cfg, cfg.Validate()
}

// LoadFromDir loads configuration from a directory (looks for stopdfa.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "stopdfa.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".stopdfa", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	if c.Scan.Workers <= 0 {
		return fmt.Errorf("scan.workers must be positive, got %d", c.Scan.Workers)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("unknown logging.format %q", c.Logging.Format)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
