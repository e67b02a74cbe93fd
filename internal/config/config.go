// Package config loads application settings from the embedded defaults, an
// optional YAML file and TOKENSALE_* environment variables.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-tokensale/internal/logger"
)

//go:embed default.yml
var defaultConfig []byte

const (
	configFileEnvKey = "TOKENSALE_CONFIG"
	configTypeYaml   = "yml"
	envPrefix        = "TOKENSALE"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Logging      LoggingConfig      `mapstructure:"logging"`
	Notification NotificationConfig `mapstructure:"notification"`
	Validation   ValidationConfig   `mapstructure:"validation"`
	Page         PageConfig         `mapstructure:"page"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout" validate:"gt=0"`
}

type LoggingConfig struct {
	Level      zapcore.Level `mapstructure:"level"`
	Format     string        `mapstructure:"format" validate:"oneof=json console"`
	File       string        `mapstructure:"file"`
	MaxSizeMB  int           `mapstructure:"maxSizeMB" validate:"gte=0"`
	MaxBackups int           `mapstructure:"maxBackups" validate:"gte=0"`
	MaxAgeDays int           `mapstructure:"maxAgeDays" validate:"gte=0"`
	Compress   bool          `mapstructure:"compress"`
}

// Logger converts the section into logger settings.
func (c LoggingConfig) Logger() logger.Config {
	return logger.Config{
		Level:      c.Level,
		Format:     c.Format,
		File:       c.File,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// NotificationConfig is the copy of the success toast.
type NotificationConfig struct {
	Title       string        `mapstructure:"title" validate:"required"`
	Description string        `mapstructure:"description"`
	Duration    time.Duration `mapstructure:"duration" validate:"gt=0"`
}

type ValidationConfig struct {
	// EnforceCapOrder rejects a soft cap above the hard cap.
	EnforceCapOrder bool `mapstructure:"enforceCapOrder"`
}

// PageConfig overrides the page header copy. Description may hold inline
// markup; it is sanitised before rendering.
type PageConfig struct {
	Title       string `mapstructure:"title"`
	Heading     string `mapstructure:"heading"`
	Description string `mapstructure:"description"`
}

// Options tweak Load.
type Options struct {
	// File is merged over the defaults. Falls back to $TOKENSALE_CONFIG.
	File string
	// Overrides are applied last, e.g. values bound from command flags.
	Overrides map[string]any
}

// Load reads the embedded defaults, merges the optional file, applies
// environment variables and overrides, then validates the result.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	v.SetConfigType(configTypeYaml)

	if err := v.ReadConfig(bytes.NewReader(defaultConfig)); err != nil {
		return nil, fmt.Errorf("config: read defaults: %w", err)
	}

	file := opts.File
	if file == "" {
		file = os.Getenv(configFileEnvKey)
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("config: merge %s: %w", file, err)
		}
	}

	// env is bound after the files so viper knows every key
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	var cfg Config
	hooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	if err := v.Unmarshal(&cfg, viper.DecodeHook(hooks)); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports every failing field.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil configuration")
	}
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
