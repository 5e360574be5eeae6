package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/whiptail/pkg/dialog"
	"github.com/spf13/viper"
)

const envPrefix = "WHIPTAIL"

// Defaults for settings not present in the file or environment.
const (
	DefaultTheme    = "classic"
	DefaultLogLevel = "info"
)

// Settings holds user preferences shared by every dialog the CLI runs.
type Settings struct {
	Theme      string `mapstructure:"theme"`
	Mouse      bool   `mapstructure:"mouse"`
	Hints      bool   `mapstructure:"hints"`
	TypeAhead  bool   `mapstructure:"type-ahead"`
	Width      int    `mapstructure:"width"`
	MaxVisible int    `mapstructure:"max-visible"`
	LogFile    string `mapstructure:"log-file"`
	LogLevel   string `mapstructure:"log-level"`
}

// DefaultPath returns ~/.config/whiptail/config.yml, or "" without a home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "whiptail", "config.yml")
}

// Load reads settings from defaults, then the config file, then WHIPTAIL_*
// environment variables. A missing default file is not an error; a missing
// explicit path is.
func Load(path string) (Settings, error) {
	var s Settings

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("mouse", true)
	v.SetDefault("hints", false)
	v.SetDefault("type-ahead", false)
	v.SetDefault("width", 0)
	v.SetDefault("max-visible", 0)
	v.SetDefault("log-file", "")
	v.SetDefault("log-level", DefaultLogLevel)

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return s, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks the theme and log level.
func (s Settings) Validate() error {
	verr := &ValidationError{}
	if _, ok := dialog.ThemeByName(s.Theme); !ok {
		verr.Add(fmt.Errorf("unknown theme %q (have %s)", s.Theme, strings.Join(dialog.ThemeNames(), ", ")))
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		verr.Add(err)
	}
	if s.Width < 0 {
		verr.Add(fmt.Errorf("width must not be negative"))
	}
	if s.MaxVisible < 0 {
		verr.Add(fmt.Errorf("max-visible must not be negative"))
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ParseLevel turns "debug", "info", "warn" or "error" into a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}
