package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// defaultConfigFiles are tried in order when no path is given.
var defaultConfigFiles = []string{".detekt-op.yml", ".detekt-op.yaml", ".detekt-op.toml"}

// Config is the top-level detekt-op configuration.
type Config struct {
	Version int           `yaml:"version" toml:"version"`
	Project ProjectConfig `yaml:"project" toml:"project"`
	Java    JavaConfig    `yaml:"java" toml:"java"`
	Detekt  DetektConfig  `yaml:"detekt" toml:"detekt"`
	Output  OutputConfig  `yaml:"output" toml:"output"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-" toml:"-"`
}

// ProjectConfig controls how the project directory is resolved.
type ProjectConfig struct {
	LibDir   string `yaml:"lib_dir" toml:"lib_dir"`               // detekt jars (default: lib/bld)
	Discover bool   `yaml:"discover" toml:"discover"`             // root the project at the enclosing git repository
	Sources  bool   `yaml:"kotlin_sources" toml:"kotlin_sources"` // default input to src/{main,test}/kotlin
}

// JavaConfig selects the java launcher.
type JavaConfig struct {
	Path string `yaml:"path" toml:"path"` // default: $JAVA_HOME/bin/java, then java on PATH
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	Color string `yaml:"color" toml:"color"` // auto, always, never
}

// Load reads configuration from a YAML or TOML file, picked by extension.
// If path is empty, the default file names are tried in the current
// directory. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	candidates := defaultConfigFiles
	if path != "" {
		candidates = []string{path}
	}

	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}

		cfg := defaults()
		if err := decode(candidate, data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", candidate, err)
		}
		cfg.Path = candidate
		return cfg, nil
	}
	return defaults(), nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

func defaults() *Config {
	return &Config{
		Version: 1,
		Project: ProjectConfig{Sources: true},
		Detekt:  DefaultDetektConfig(),
		Output:  OutputConfig{Color: "auto"},
	}
}
