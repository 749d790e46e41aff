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
	"github.com/danmuck/monctl/internal/logging"
	"github.com/danmuck/monctl/internal/protocol/byteorder"
	"github.com/danmuck/monctl/internal/protocol/naming"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration of the naming tools.
type Config struct {
	Mode       naming.Mode
	CacheForms bool
	Endian     int32
	LogLevel   string
	DNS        string
	Items      []ItemConfig
}

// ItemConfig is one statically configured item fed to the ingest path.
type ItemConfig struct {
	Name    string `toml:"name" yaml:"name"`
	Format  string `toml:"format" yaml:"format"`
	Quality *int32 `toml:"quality" yaml:"quality"`
}

// fileConfig maps config.toml / config.yaml keys; nil means unset.
type fileConfig struct {
	Mode       *string      `toml:"mode" yaml:"mode"`
	CacheForms *bool        `toml:"cache_forms" yaml:"cache_forms"`
	Endian     *int32       `toml:"endian" yaml:"endian"`
	LogLevel   *string      `toml:"log_level" yaml:"log_level"`
	DNS        *string      `toml:"dns" yaml:"dns"`
	Items      []ItemConfig `toml:"items" yaml:"items"`
}

func Default() Config {
	return Config{
		Mode:     naming.ModeParameter,
		Endian:   byteorder.NativeFlag(),
		LogLevel: "info",
	}
}

// Load reads path as YAML when it ends in .yaml or .yml, TOML otherwise,
// and overlays the defined keys on Default.
func Load(path string) (Config, error) {
	var raw fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := loadYAML(path, &raw); err != nil {
			return Config{}, err
		}
	default:
		if err := loadTOML(path, &raw); err != nil {
			return Config{}, err
		}
	}

	cfg := Default()
	if raw.Mode != nil {
		mode, err := naming.ParseMode(*raw.Mode)
		if err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): mode %q: %w", path, *raw.Mode, err)
		}
		cfg.Mode = mode
	}
	if raw.CacheForms != nil {
		cfg.CacheForms = *raw.CacheForms
	}
	if raw.Endian != nil {
		cfg.Endian = *raw.Endian
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = strings.TrimSpace(*raw.LogLevel)
	}
	if raw.DNS != nil {
		cfg.DNS = strings.TrimSpace(*raw.DNS)
	}
	cfg.Items = raw.Items

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func loadTOML(path string, out *fileConfig) error {
	meta, err := toml.DecodeFile(path, out)
	if err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}
	return nil
}

func loadYAML(path string, out *fileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func Validate(cfg Config) error {
	if cfg.Mode != naming.ModeParameter && cfg.Mode != naming.ModeCommand {
		return naming.ErrUnknownMode
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	if strings.Contains(cfg.DNS, "/") {
		return fmt.Errorf("dns %q must not contain '/'", cfg.DNS)
	}
	for i, item := range cfg.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("items[%d]: name is required", i)
		}
	}
	return nil
}
