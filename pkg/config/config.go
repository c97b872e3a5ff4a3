package config

import (
	"os"
	"slices"
	"strings"

	"github.com/arthur-debert/dotools/pkg/errors"
	"github.com/arthur-debert/dotools/pkg/logging"
	"github.com/arthur-debert/dotools/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "DOTOOLS_"

// Accepted values for the output settings
var (
	OutputFormats = []string{"text", "json", "yaml", "toml"}
	ColorModes    = []string{"auto", "always", "never"}
)

// Config is the resolved dotools configuration
type Config struct {
	Store  StoreConfig  `koanf:"store" json:"store" yaml:"store" toml:"store"`
	Output OutputConfig `koanf:"output" json:"output" yaml:"output" toml:"output"`
	Log    LogConfig    `koanf:"log" json:"log" yaml:"log" toml:"log"`
}

// StoreConfig locates the key-value store
type StoreConfig struct {
	Dir string `koanf:"dir" json:"dir" yaml:"dir" toml:"dir"`
}

// OutputConfig controls how commands print results
type OutputConfig struct {
	Format string `koanf:"format" json:"format" yaml:"format" toml:"format"`
	Color  string `koanf:"color" json:"color" yaml:"color" toml:"color"`
}

// LogConfig controls the log file
type LogConfig struct {
	File string `koanf:"file" json:"file" yaml:"file" toml:"file"`
}

// Options select the sources Load reads
type Options struct {
	// ConfigFile is an explicit config path. It must exist. When empty
	// the user config file from Paths is used if present.
	ConfigFile string

	// Paths supplies the default config file, store dir and log file.
	Paths paths.Paths

	// Overrides are flat dotted keys (e.g. "store.dir") applied last.
	// Empty string values are ignored.
	Overrides map[string]interface{}
}

// Load builds the configuration from, in increasing priority: embedded
// defaults, the config file, DOTOOLS_* environment variables and
// Overrides. Empty directory settings are filled from Paths.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Load the config file
	configFile, err := resolveConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile).
				WithDetail("path", configFile)
		}
		logger.Debug().Str("path", configFile).Msg("Loaded config file")
	}

	// 3. Load env vars
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Apply overrides
	overrides := make(map[string]interface{}, len(opts.Overrides))
	for key, value := range opts.Overrides {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		overrides[key] = value
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Post-process
	if err := cfg.resolve(opts.Paths); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("store_dir", cfg.Store.Dir).
		Str("format", cfg.Output.Format).
		Msg("Configuration resolved")
	return &cfg, nil
}

// envKey maps DOTOOLS_STORE_DIR to store.dir. Only the first underscore
// separates section from key. Empty variables are skipped.
func envKey(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.Replace(name, "_", ".", 1), value
}

func resolveConfigFile(opts Options) (string, error) {
	if opts.ConfigFile != "" {
		path := paths.ExpandHome(opts.ConfigFile)
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	if opts.Paths == nil {
		return "", nil
	}
	if _, err := os.Stat(opts.Paths.ConfigFile()); err == nil {
		return opts.Paths.ConfigFile(), nil
	}
	return "", nil
}

func (c *Config) resolve(p paths.Paths) error {
	if c.Store.Dir == "" && p != nil {
		c.Store.Dir = p.StoreDir()
	}
	if c.Log.File == "" && p != nil {
		c.Log.File = p.LogFilePath()
	}

	if c.Store.Dir != "" {
		dir, err := paths.NormalizePath(c.Store.Dir)
		if err != nil {
			return err
		}
		c.Store.Dir = dir
	}
	if c.Log.File != "" {
		c.Log.File = paths.ExpandHome(c.Log.File)
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	return nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	if c.Store.Dir == "" {
		return errors.New(errors.ErrInvalidInput, "store.dir is not set")
	}
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return errors.Newf(errors.ErrInvalidInput, "output.format %q is not one of %s",
			c.Output.Format, strings.Join(OutputFormats, ", ")).WithDetail("key", "output.format")
	}
	if !slices.Contains(ColorModes, c.Output.Color) {
		return errors.Newf(errors.ErrInvalidInput, "output.color %q is not one of %s",
			c.Output.Color, strings.Join(ColorModes, ", ")).WithDetail("key", "output.color")
	}
	return nil
}
