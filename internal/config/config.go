package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Log      LogConfig
	Data     DataConfig
}

// DatabaseConfig holds sqlite settings. An empty Migrations path uses the
// migrations compiled into the binary.
type DatabaseConfig struct {
	Path       string
	Migrations string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	InitialTab string `mapstructure:"initial_tab"`
	DateFormat string `mapstructure:"date_format"`
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Level string
	Path  string
}

// DataConfig selects the record source. When Fixtures is set the console
// reads that YAML file instead of the database.
type DataConfig struct {
	Fixtures string
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// DefaultPath is the config file used when MEMBERHUB_CONFIG is unset.
func DefaultPath() string {
	return filepath.Join(homeDir(), ".config", "memberhub", "config.toml")
}

func setDefaults(v *viper.Viper) {
	share := filepath.Join(homeDir(), ".local", "share", "memberhub")
	v.SetDefault("database.path", filepath.Join(share, "memberhub.db"))
	v.SetDefault("database.migrations", "")
	v.SetDefault("ui.initial_tab", "overview")
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(share, "memberhub.log"))
	v.SetDefault("data.fixtures", "")
}

// Load reads configuration from file and env. Env var overrides use prefix MEMBERHUB_.
func Load() (Config, error) {
	return LoadFile(os.Getenv("MEMBERHUB_CONFIG"))
}

// LoadFile is Load with an explicit config file. An empty path searches the
// default location; a missing file is not an error.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MEMBERHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to path (DefaultPath when empty), creating the directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = os.Getenv("MEMBERHUB_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("ui.initial_tab", cfg.UI.InitialTab)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)
	v.Set("data.fixtures", cfg.Data.Fixtures)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
