package convert

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/asciimath/mathml"
)

// DefaultConfigFile is read when no configuration path is given.
const DefaultConfigFile = ".asciimath.yaml"

// Output formats.
const (
	FormatMathML = "mathml"
	FormatHTML   = "html"
)

var (
	ErrUnsupportedFormat  = errors.New("unsupported output format")
	ErrUnsupportedDisplay = errors.New("unsupported display")
	ErrInvalidCacheMaxAge = errors.New("invalid cache max age")
)

// Config controls how source files are converted. It is read from YAML,
// or from TOML when the file name ends in ".toml".
type Config struct {
	Name       string   `yaml:"name" toml:"name"`
	Display    string   `yaml:"display" toml:"display"`
	Wrap       bool     `yaml:"wrap" toml:"wrap"`
	Format     string   `yaml:"format" toml:"format"`
	Extensions []string `yaml:"extensions" toml:"extensions"`
	OutputDir  string   `yaml:"output_dir,omitempty" toml:"output_dir,omitempty"`
	CacheDir   string   `yaml:"cache_dir,omitempty" toml:"cache_dir,omitempty"`
	// CacheMaxAge expires cached results older than it; zero keeps them
	// until the file changes.
	CacheMaxAge time.Duration `yaml:"cache_max_age,omitempty" toml:"cache_max_age,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Name:       "asciimath",
		Display:    mathml.Inline.String(),
		Format:     FormatMathML,
		Extensions: []string{".am", ".asciimath"},
	}
}

// LoadConfig reads the configuration at path. Fields the file leaves out
// keep their defaults; a missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("error reading configuration %s: %w", path, err)
	}

	if isTOML(path) {
		err = toml.Unmarshal(content, &config)
	} else {
		err = yaml.Unmarshal(content, &config)
	}
	if err != nil {
		return config, fmt.Errorf("error decoding configuration %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return config, nil
}

// WriteConfig stores config at path in the format its extension selects.
func WriteConfig(path string, config Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(config)
		data = buf.Bytes()
	} else {
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports values no conversion can use.
func (c Config) Validate() error {
	switch c.Format {
	case FormatMathML, FormatHTML:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.Format)
	}
	if _, ok := mathml.ParseDisplay(c.Display); !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDisplay, c.Display)
	}
	if c.CacheMaxAge < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCacheMaxAge, c.CacheMaxAge)
	}
	return nil
}

// Options returns the renderer options the configuration selects. HTML
// pages need the <math> root around every formula.
func (c Config) Options() []mathml.Option {
	display, _ := mathml.ParseDisplay(c.Display)
	return []mathml.Option{
		mathml.WithWrap(c.Wrap || c.Format == FormatHTML),
		mathml.WithDisplay(display),
	}
}

// settings is the cache fingerprint of the options that affect output.
func (c Config) settings() string {
	display, _ := mathml.ParseDisplay(c.Display)
	return fmt.Sprintf("%s/%s/%t", c.Format, display, c.Wrap)
}

// HasExtension reports whether path has one of the configured extensions.
func (c Config) HasExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range c.Extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
