package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig
	Router RouterConfig
	Log    LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme     string
	Color     string // auto | always | never
	Group     bool   `mapstructure:"group"`
	CharLimit int    `mapstructure:"char_limit"`
}

// RouterConfig holds the fragment the view starts on.
type RouterConfig struct {
	Initial string
}

// LogConfig holds slog settings.
type LogConfig struct {
	Level string
	File  string
}

var (
	themes     = []string{"classic", "neon", "mono"}
	colorModes = []string{"auto", "always", "never"}
	levels     = []string{"debug", "info", "warn", "error"}
)

// Load reads configuration from an optional TOML file and env. Env var
// overrides use prefix TODO_. path wins over $TODO_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.color", "auto")
	v.SetDefault("ui.group", false)
	v.SetDefault("ui.char_limit", 200)
	v.SetDefault("router.initial", "#/")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("TODO_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "todo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TODO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; an explicit one must exist and parse
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	c.UI.Color = strings.ToLower(c.UI.Color)
	c.Log.Level = strings.ToLower(c.Log.Level)
	return c, nil
}

// Validate rejects values the program cannot honour.
func (c Config) Validate() error {
	if !contains(themes, c.UI.Theme) {
		return fmt.Errorf("ui.theme: unknown theme %q (want one of %s)", c.UI.Theme, strings.Join(themes, ", "))
	}
	if !contains(colorModes, c.UI.Color) {
		return fmt.Errorf("ui.color: unknown mode %q (want one of %s)", c.UI.Color, strings.Join(colorModes, ", "))
	}
	if c.UI.CharLimit <= 0 {
		return fmt.Errorf("ui.char_limit: must be positive, got %d", c.UI.CharLimit)
	}
	if !contains(levels, c.Log.Level) {
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
