package config

import (
	"errors"
	"fmt"
	"strings"

	commonerrors "github.com/deploymenttheory/go-checksum/internal/common/errors"
	"github.com/deploymenttheory/go-checksum/internal/common/fsutil"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config files and directories
	AppName = "go-checksum"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "GO_CHECKSUM"
)

// AppConfig holds the application configuration
type AppConfig struct {
	// Core settings
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	LogLevel  string `mapstructure:"log_level"`
	LogFile   string `mapstructure:"log_file"`

	// Report settings
	Echo    bool   `mapstructure:"echo"`
	Columns int    `mapstructure:"columns"`
	Output  string `mapstructure:"output"`

	// Input settings
	Decompress string `mapstructure:"decompress"` // none, auto, gzip, xz, bzip2 or zstd

	// ConfigFile is the file the settings were read from, empty when only
	// defaults and environment variables were used
	ConfigFile string `mapstructure:"-"`
}

// FlagKeys maps command line flag names to configuration keys
var FlagKeys = map[string]string{
	"debug":      "debug",
	"log-format": "log_format",
	"log-level":  "log_level",
	"log-file":   "log_file",
	"echo":       "echo",
	"columns":    "columns",
	"output":     "output",
	"decompress": "decompress",
}

// Load reads configuration from cfgFile, or from the standard search paths
// when cfgFile is empty, layered over defaults and GO_CHECKSUM_* variables.
// Flags in flags that were set explicitly override everything else. A
// missing config file is not an error unless cfgFile names it.
func Load(cfgFile string, flags *pflag.FlagSet) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	if flags != nil {
		for name, key := range FlagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("%w: %w", commonerrors.ErrConfigInvalid, err)
				}
			}
		}
	}

	if cfgFile != "" {
		expanded, err := fsutil.ExpandTilde(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", commonerrors.ErrConfigInvalid, err)
		}
		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		addSearchPaths(v)
	}

	// GO_CHECKSUM_* only reaches the settings above, never the positional arguments
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cfg := &AppConfig{}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %w", commonerrors.ErrConfigParseError, err)
		}
	} else {
		cfg.ConfigFile = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", commonerrors.ErrConfigParseError, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set
func Default() *AppConfig {
	v := viper.New()
	setDefaults(v)

	cfg := &AppConfig{}
	_ = v.Unmarshal(cfg)
	return cfg
}

// Validate checks the settings that have a closed set of values
func (c *AppConfig) Validate() error {
	switch c.LogFormat {
	case "human", "json":
	default:
		return fmt.Errorf("%w: log_format must be human or json, got %q", commonerrors.ErrConfigInvalid, c.LogFormat)
	}

	switch c.Decompress {
	case "auto", "none", "gzip", "xz", "bzip2", "zstd":
	default:
		return fmt.Errorf("%w: decompress must be auto, none, gzip, xz, bzip2 or zstd, got %q", commonerrors.ErrConfigInvalid, c.Decompress)
	}

	if c.Columns <= 0 {
		return fmt.Errorf("%w: columns must be positive, got %d", commonerrors.ErrConfigInvalid, c.Columns)
	}
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Core settings
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")

	// Report defaults
	v.SetDefault("echo", false)
	v.SetDefault("columns", 80)
	v.SetDefault("output", "text")

	// Input defaults
	v.SetDefault("decompress", "none")
}

// addSearchPaths adds config search paths
func addSearchPaths(v *viper.Viper) {
	// Always check current directory first
	v.AddConfigPath(".")

	configDir, err := fsutil.GetConfigDir(AppName)
	if err == nil {
		v.AddConfigPath(configDir)
	}
}
