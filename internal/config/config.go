package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "TERMKIT"

// Config holds application configuration.
type Config struct {
	Console ConsoleConfig `mapstructure:"console"`
	Log     LogConfig     `mapstructure:"log"`
	History HistoryConfig `mapstructure:"history"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// ConsoleConfig holds Terminal screen settings.
type ConsoleConfig struct {
	LogDir          string `mapstructure:"log_dir"`
	LogExt          string `mapstructure:"log_ext"`
	TimestampFormat string `mapstructure:"timestamp_format"`
	WarningTag      string `mapstructure:"warning_tag"`
	ErrorTag        string `mapstructure:"error_tag"`
}

type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// HistoryConfig holds sqlite run-history settings.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// MetricsConfig holds the metrics listener. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

type DemoConfig struct {
	Iterations int `mapstructure:"iterations"`
}

// Path returns the config file location, honouring TERMKIT_CONFIG.
func Path() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".config", "termkit", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix TERMKIT_.
func Load() (Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file; empty means the default
// lookup.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "termkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Default returns the built-in configuration without reading file or env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("console.log_dir", cfg.Console.LogDir)
	v.Set("console.log_ext", cfg.Console.LogExt)
	v.Set("console.timestamp_format", cfg.Console.TimestampFormat)
	v.Set("console.warning_tag", cfg.Console.WarningTag)
	v.Set("console.error_tag", cfg.Console.ErrorTag)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.path", cfg.History.Path)
	v.Set("metrics.addr", cfg.Metrics.Addr)
	v.Set("demo.iterations", cfg.Demo.Iterations)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	home := homeDir()
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		state = filepath.Join(home, ".local", "state")
	}
	v.SetDefault("console.log_dir", filepath.Join(state, "termkit", "logs"))
	v.SetDefault("console.log_ext", ".log")
	v.SetDefault("console.timestamp_format", "02-01-2006, 15:04:05")
	v.SetDefault("console.warning_tag", "WARNING")
	v.SetDefault("console.error_tag", "ERROR")
	v.SetDefault("log.path", filepath.Join(state, "termkit", "termkit.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(home, ".local", "share", "termkit", "history.db"))
	v.SetDefault("metrics.addr", "")
	v.SetDefault("demo.iterations", 95000)
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}
