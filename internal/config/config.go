// Package config provides Viper-based configuration loading for the jadepunk tool.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/harkonenbade/jadepunk/internal/render"
)

// DefaultName is the config file looked up in the working directory when no path is given.
const DefaultName = "jadepunk.yaml"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format" validate:"oneof=json console"`
	// Output is "stderr", "stdout" or a file path.
	Output string `mapstructure:"output" validate:"required"`
}

// OutputConfig selects how character sheets are written.
type OutputConfig struct {
	// Format is the name of a registered render engine.
	Format string `mapstructure:"format" validate:"required,engine"`
}

// RulesConfig holds rule defaults applied when a character file does not say.
type RulesConfig struct {
	// NewCharacter selects chargen rules over advancement rules.
	NewCharacter bool `mapstructure:"new_character"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Rules   RulesConfig   `mapstructure:"rules"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("engine", func(fl validator.FieldLevel) bool {
		_, ok := render.Lookup(fl.Field().String())
		return ok
	})
	return v
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	errs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, describe(fe))
	}
	return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
}

// describe renders a field error as "<key> <rule>, got <value>" using config keys.
func describe(fe validator.FieldError) string {
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "required":
		return fmt.Sprintf("%s must not be empty", key)
	case "engine":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, strings.Join(render.Names(), ", "), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q, got %v", key, fe.Tag(), fe.Value())
	}
}

// NewViper returns a Viper instance with defaults, environment overrides and
// the config file applied. Callers may bind flags on it before LoadFromViper.
//
// An empty path looks for DefaultName in the working directory; a missing
// default file is not an error, a missing explicit file is.
//
// Postcondition: Returns a configured Viper or a non-nil error.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()

	// Environment variable overrides with JADEPUNK_ prefix
	v.SetEnvPrefix("JADEPUNK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path == "" {
		v.SetConfigName(strings.TrimSuffix(DefaultName, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
		return v, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return v, nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return Config{}, err
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("output.format", "markdown")

	v.SetDefault("rules.new_character", true)
}
