package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/olivier-w/folio/internal/content"
	"github.com/olivier-w/folio/internal/follower"
	"github.com/olivier-w/folio/internal/typewriter"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. FOLIO_SERVER_ADDR.
const EnvPrefix = "FOLIO"

// Config is the full application configuration.
type Config struct {
	Content   content.Portfolio `mapstructure:"content"`
	Animation AnimationConfig   `mapstructure:"animation"`
	Logger    LoggerConfig      `mapstructure:"logger"`
	Server    ServerConfig      `mapstructure:"server"`
}

// AnimationConfig tunes the console typewriter, the pointer follower and
// the card glow.
type AnimationConfig struct {
	CharDelay   time.Duration `mapstructure:"char_delay"`
	PauseDelay  time.Duration `mapstructure:"pause_delay"`
	FollowerFPS int           `mapstructure:"follower_fps"`
	Stiffness   float64       `mapstructure:"stiffness"`
	Damping     float64       `mapstructure:"damping"`
	GlowRadius  float64       `mapstructure:"glow_radius"`
}

// LoggerConfig configures zap. An empty File disables TUI logging, since
// the terminal is owned by the page.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Content: content.Default(),
		Animation: AnimationConfig{
			CharDelay:   45 * time.Millisecond,
			PauseDelay:  1200 * time.Millisecond,
			FollowerFPS: 60,
			Stiffness:   36,
			Damping:     12,
			GlowRadius:  18,
		},
		Logger: LoggerConfig{
			Level:      "info",
			Format:     "json",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Validate checks every value a component would reject at construction.
func (c Config) Validate() error {
	a := c.Animation
	if _, err := typewriter.New(c.Content.Console, a.CharDelay, a.PauseDelay); err != nil {
		return fmt.Errorf("config: console: %w", err)
	}
	if _, err := follower.New(a.FollowerFPS, a.Stiffness, a.Damping); err != nil {
		return fmt.Errorf("config: follower: %w", err)
	}
	if !(a.GlowRadius > 0) || math.IsInf(a.GlowRadius, 0) {
		return fmt.Errorf("config: glow radius %v must be positive and finite", a.GlowRadius)
	}
	if c.Server.Addr == "" {
		return errors.New("config: server address is empty")
	}
	return nil
}

// Load reads path (or ./folio.yaml when path is empty and the file exists)
// and FOLIO_* environment variables over the defaults.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Default())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := Default()
	// Lists from the file replace the defaults rather than merging by index.
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.ZeroFields = true
	}); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// setDefaults registers scalar keys so AutomaticEnv can override them.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("animation.char_delay", d.Animation.CharDelay)
	v.SetDefault("animation.pause_delay", d.Animation.PauseDelay)
	v.SetDefault("animation.follower_fps", d.Animation.FollowerFPS)
	v.SetDefault("animation.stiffness", d.Animation.Stiffness)
	v.SetDefault("animation.damping", d.Animation.Damping)
	v.SetDefault("animation.glow_radius", d.Animation.GlowRadius)
	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.format", d.Logger.Format)
	v.SetDefault("logger.file", d.Logger.File)
	v.SetDefault("logger.max_size", d.Logger.MaxSize)
	v.SetDefault("logger.max_backups", d.Logger.MaxBackups)
	v.SetDefault("logger.max_age", d.Logger.MaxAge)
	v.SetDefault("logger.compress", d.Logger.Compress)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("content.name", d.Content.Name)
	v.SetDefault("content.email", d.Content.Email)
}
