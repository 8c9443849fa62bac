// Package config handles loading and parsing of Koi configuration files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/koi-shell/koi/internal/kerrors"
)

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	".koi.yml",
	".koi.yaml",
	".koi.toml",
	".koi.json",
}

// CommandConfig configures one command, currently its dynamic completion
// provider: a koi expression evaluated at completion time.
type CommandConfig struct {
	Completer string `koanf:"completer"`
}

// Config represents a koi configuration
type Config struct {
	LogLevel string                   `koanf:"log_level"`
	Prompt   string                   `koanf:"prompt"`
	Env      map[string]string        `koanf:"env"`
	Commands map[string]CommandConfig `koanf:"commands"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Prompt:   "koi> ",
	}
}

// Find returns the first supported config file present in dir, or "".
func Find(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Loader handles loading and parsing configuration files
type Loader struct {
	k *koanf.Koanf
}

// New creates a new config loader
func New() *Loader {
	return &Loader{k: koanf.New(".")}
}

// Load reads and parses a config file, choosing the parser by extension.
func (l *Loader) Load(path string) (*Config, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, kerrors.NewConfigError(path, "failed to parse config", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, kerrors.NewConfigError(path, "failed to decode config", err)
	}
	return cfg, nil
}

// LoadBytes parses raw config content in the given format ("yaml",
// "toml", or "json").
func (l *Loader) LoadBytes(data []byte, format string) (*Config, error) {
	parser, err := parserFor("config." + format)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, kerrors.NewConfigError("<bytes>", "failed to parse config", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, kerrors.NewConfigError("<bytes>", "failed to decode config", err)
	}
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, kerrors.NewConfigError(path, "unsupported config format", nil)
	}
}
