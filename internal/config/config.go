// Package config loads the generator configuration from the project
// root. Loading is total: an absent or unparsable config source always
// yields a fully valid configuration built from defaults.
package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config file names probed at the project root, JSON first.
const (
	JSONConfigFile = ".readme-config.json"
	YAMLConfigFile = ".readme-config.yml"
)

// DefaultMaxDepth bounds the structure section when no override is set.
const DefaultMaxDepth = 3

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParsing  = errors.New("config parsing failed")
)

// Config is the user-controllable generation policy. It is immutable
// once loaded; the pipeline receives it as an explicit argument, never
// through ambient state.
type Config struct {
	// ExcludeSections lists section keys omitted from the output.
	ExcludeSections []string `mapstructure:"excludeSections" yaml:"excludeSections"`
	// CustomContent maps a section key to literal replacement text.
	CustomContent map[string]string `mapstructure:"customContent" yaml:"customContent"`
	// MaxDepth bounds both the scan and the structure rendering.
	MaxDepth int `mapstructure:"maxDepth" yaml:"maxDepth"`
	// IncludeHiddenFiles keeps dot-prefixed entries in the tree.
	IncludeHiddenFiles bool `mapstructure:"includeHiddenFiles" yaml:"includeHiddenFiles"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		ExcludeSections:    []string{},
		CustomContent:      map[string]string{},
		MaxDepth:           DefaultMaxDepth,
		IncludeHiddenFiles: false,
	}
}

// Load reads the project-root config file. It never fails: the returned
// error reports why defaults were used (ErrConfigNotFound,
// ErrConfigParsing) and is informational only.
func Load(root string) (*Config, error) {
	if cfg, err := loadJSON(root); err == nil {
		return cfg, nil
	} else if !errors.Is(err, ErrConfigNotFound) {
		return Default(), err
	}
	return loadYAML(root)
}

// MustLoad wraps Load for callers that only want the fail-soft result,
// logging the reason defaults were substituted.
func MustLoad(root string, logger *slog.Logger) *Config {
	cfg, err := Load(root)
	if err != nil && logger != nil {
		if errors.Is(err, ErrConfigParsing) {
			logger.Warn("ignoring malformed config file, using defaults", "root", root, "error", err)
		} else {
			logger.Debug("no config file found, using defaults", "root", root)
		}
	}
	return cfg
}

func loadJSON(root string) (*Config, error) {
	path := filepath.Join(root, JSONConfigFile)
	if _, err := os.Stat(path); err != nil {
		return Default(), ErrConfigNotFound
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Default(), errors.Join(ErrConfigParsing, err)
	}
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return Default(), errors.Join(ErrConfigParsing, err)
	}
	return sanitize(cfg), nil
}

func loadYAML(root string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(root, YAMLConfigFile))
	if err != nil {
		return Default(), ErrConfigNotFound
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), errors.Join(ErrConfigParsing, err)
	}
	return sanitize(cfg), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("excludeSections", []string{})
	v.SetDefault("customContent", map[string]string{})
	v.SetDefault("maxDepth", DefaultMaxDepth)
	v.SetDefault("includeHiddenFiles", false)
}

// sanitize repairs values that parsed but are unusable, keeping the
// "no partial state reaches the generator" invariant.
func sanitize(cfg *Config) *Config {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.ExcludeSections == nil {
		cfg.ExcludeSections = []string{}
	}
	if cfg.CustomContent == nil {
		cfg.CustomContent = map[string]string{}
	}
	return cfg
}
