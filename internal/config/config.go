package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is burrow's user configuration.
type Config struct {
	Verbose      bool        `mapstructure:"verbose" yaml:"verbose"`
	KnownFiles   bool        `mapstructure:"known_files" yaml:"known_files"`
	ExtraFiles   []string    `mapstructure:"extra_files" yaml:"extra_files"`
	Init         InitSection `mapstructure:"init" yaml:"init"`
	TemplatesDir string      `mapstructure:"templates_dir" yaml:"templates_dir"`
}

// InitSection holds the defaults for `burrow init`.
type InitSection struct {
	Cmd  string `mapstructure:"cmd" yaml:"cmd"`
	Hook string `mapstructure:"hook" yaml:"hook"`
	Echo bool   `mapstructure:"echo" yaml:"echo"`
}

const (
	DefaultConfigName = "config"
	DefaultConfigDir  = "burrow"
	DefaultConfigType = "yaml"
	DefaultHook       = "none"
	EnvPrefix         = "BURROW"
)

// InitConfig loads configuration into the global viper instance. cfgFile
// overrides the default location. A missing default file is not an error.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(dir)
		viper.SetConfigName(DefaultConfigName)
		viper.SetConfigType(DefaultConfigType)
	}

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("verbose", false)
	viper.SetDefault("known_files", false)
	viper.SetDefault("extra_files", []string{})
	viper.SetDefault("init.cmd", "")
	viper.SetDefault("init.hook", DefaultHook)
	viper.SetDefault("init.echo", false)
	viper.SetDefault("templates_dir", "")
}

// GetConfig returns the current configuration.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.TemplatesDir = expandHome(cfg.TemplatesDir)
	return cfg, nil
}

// FilePath returns the config file in use, or the default location when
// none was read.
func FilePath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigName+"."+DefaultConfigType), nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, DefaultConfigDir), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
