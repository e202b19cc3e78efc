// Package config loads notification log settings from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/reoring/maxslog"
	"github.com/reoring/maxslog/i18n"
	"github.com/reoring/maxslog/internal/logging"
	"github.com/reoring/maxslog/sink"
)

// Sink modes.
const (
	ModeSync     = "sync"
	ModeBuffered = "buffered"
)

// Config describes a Logger and its initial file target.
type Config struct {
	AppID      string  `yaml:"appId" toml:"app_id"`
	AppVersion string  `yaml:"appVersion" toml:"app_version"`
	Target     string  `yaml:"target" toml:"target"`
	Suffix     string  `yaml:"suffix" toml:"suffix"`
	Language   string  `yaml:"language" toml:"language"`
	Sink       Sink    `yaml:"sink" toml:"sink"`
	Logging    Logging `yaml:"logging" toml:"logging"`
}

// Sink selects how the document reaches the target.
type Sink struct {
	Mode      string `yaml:"mode" toml:"mode"`
	BatchSize int    `yaml:"batchSize" toml:"batch_size"`
}

// Logging configures the internal zap logger. Empty fields keep the host's
// global logger.
type Logging struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

var ErrUnsupportedFormat = errors.New("config: unsupported file extension")

// Load reads a .yaml, .yml or .toml file and validates it.
func Load(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var data []byte
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg, err = ParseYAML(bytes.NewReader(data))
	case ".toml":
		cfg, err = loadTOML(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseYAML decodes and validates a YAML configuration. Unknown keys are
// rejected.
func ParseYAML(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseTOML decodes and validates a TOML configuration. Unknown keys are
// rejected.
func ParseTOML(data string) (*Config, error) {
	var cfg Config
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to parse TOML: %w", err)
	}
	return finishTOML(&cfg, meta)
}

func loadTOML(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to parse TOML: %w", err)
	}
	return finishTOML(&cfg, meta)
}

func finishTOML(cfg *Config, meta toml.MetaData) (*Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values and fills defaults.
func (c *Config) Validate() error {
	if c.Suffix == "" {
		c.Suffix = maxslog.DefaultSuffix
	}
	if !strings.HasPrefix(c.Suffix, ".") {
		return fmt.Errorf("config: suffix %q must start with a dot", c.Suffix)
	}
	if c.Target != "" && !strings.HasSuffix(strings.ToLower(c.Target), strings.ToLower(c.Suffix)) {
		return fmt.Errorf("config: target %q: %w", c.Target, maxslog.ErrBadSuffix)
	}
	switch c.Language {
	case "", "en", "de":
	default:
		return fmt.Errorf("config: unsupported language %q", c.Language)
	}
	switch strings.ToLower(c.Sink.Mode) {
	case "", ModeSync:
		c.Sink.Mode = ModeSync
	case ModeBuffered:
		c.Sink.Mode = ModeBuffered
		if c.Sink.BatchSize < 1 {
			return fmt.Errorf("config: buffered sink needs batchSize >= 1, got %d", c.Sink.BatchSize)
		}
	default:
		return fmt.Errorf("config: unknown sink mode %q", c.Sink.Mode)
	}
	return nil
}

// Options converts the configuration into Logger options.
func (c *Config) Options() []maxslog.Option {
	opts := []maxslog.Option{
		maxslog.WithAppInfo(c.AppID, c.AppVersion),
		maxslog.WithSuffix(c.Suffix),
	}
	if c.Sink.Mode == ModeBuffered {
		every := c.Sink.BatchSize
		opts = append(opts, maxslog.WithSinkFactory(func(target string) (sink.Sink, error) {
			f, err := sink.NewFile(target)
			if err != nil {
				return nil, err
			}
			return sink.NewBuffered(f, every), nil
		}))
	}
	if c.Logging.Level != "" || c.Logging.Format != "" {
		z := logging.New(os.Stderr, c.Logging.Level, logging.ParseFormat(c.Logging.Format, logging.FormatConsole))
		opts = append(opts, maxslog.WithZap(z.Named(logging.Name)))
	}
	return opts
}

// Apply sets the message language and activates the configured target.
func (c *Config) Apply(l *maxslog.Logger) error {
	if c.Language != "" {
		i18n.SetLanguage(c.Language)
	}
	if c.Target != "" && !l.Activate(c.Target) {
		return fmt.Errorf("config: cannot activate %s", c.Target)
	}
	return nil
}

// Open builds a Logger from c and applies it.
func Open(c *Config) (*maxslog.Logger, error) {
	l := maxslog.New(c.Options()...)
	if err := c.Apply(l); err != nil {
		return nil, err
	}
	return l, nil
}
