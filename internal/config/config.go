// Package config loads the command-line tool's settings from defaults, an
// optional fpw.toml file and FPW_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
)

const (
	// FileName is the base name of the configuration file looked up in the
	// search directory.
	FileName = "fpw"
	FileExt  = "toml"

	// EnvPrefix prefixes the environment overrides, e.g. FPW_OUTPUT_DIR.
	EnvPrefix = "FPW"
)

// Config holds the tool settings.
type Config struct {
	OutputDir    string `mapstructure:"output_dir" toml:"output_dir"`
	LicenseBlock bool   `mapstructure:"license_block" toml:"license_block"`
	WriteWizard  bool   `mapstructure:"write_wizard" toml:"write_wizard"`
	LogLevel     string `mapstructure:"log_level" toml:"log_level"`
	Author       string `mapstructure:"author" toml:"author"`
	DistLicense  string `mapstructure:"dist_license" toml:"dist_license"`
	UseLicense   string `mapstructure:"use_license" toml:"use_license"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:    ".",
		LicenseBlock: true,
		WriteWizard:  false,
		LogLevel:     "info",
		DistLicense:  "GPL",
		UseLicense:   "unlimited",
	}
}

// LoadOptions select the configuration source.
type LoadOptions struct {
	// File is an explicit config file; it must exist.
	File string
	// Dir is searched for fpw.toml when File is empty. Empty means the
	// working directory.
	Dir string
}

// Load resolves the configuration and returns it together with the path
// of the file that was read, or "" when only defaults and the environment
// applied.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("license_block", defaults.LicenseBlock)
	v.SetDefault("write_wizard", defaults.WriteWizard)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("author", defaults.Author)
	v.SetDefault("dist_license", defaults.DistLicense)
	v.SetDefault("use_license", defaults.UseLicense)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetConfigType(FileExt)
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, "", fmt.Errorf("config file not found: %w", err)
		}
		v.SetConfigFile(opts.File)
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		v.SetConfigName(FileName)
		v.AddConfigPath(dir)
	}

	resolved := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		resolved = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, "", err
	}
	return &cfg, resolved, nil
}

// Level parses LogLevel.
func (c *Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Stamp fills the author and license fields of p that are still empty.
func (c *Config) Stamp(p *params.Parameters) {
	if p.Author == "" {
		p.Author = c.Author
	}
	if p.DistLicense == "" {
		p.DistLicense = c.DistLicense
	}
	if p.UseLicense == "" {
		p.UseLicense = c.UseLicense
	}
}

// Marshal renders c as TOML, in the format Load reads.
func Marshal(c *Config) ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	return data, nil
}
