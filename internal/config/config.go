package config

import (
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/cyphera/cyphera-appsync/internal/helpers"
)

// Config holds the runtime settings of the appsync-payload tool.
type Config struct {
	Stage    string `validate:"required,stage"`
	LogLevel string `validate:"omitempty,oneof=debug info warn warning error fatal"`
	Pretty   bool
}

// Load reads the optional env files (".env" when none are given) and then
// the process environment. A missing env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "load env file %s", file)
		}
	}

	cfg := &Config{
		Stage:    getEnvWithDefault("STAGE", helpers.StageLocal),
		LogLevel: strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),
	}

	if raw := os.Getenv("APPSYNC_PAYLOAD_PRETTY"); raw != "" {
		pretty, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, errors.Wrap(err, "parse APPSYNC_PAYLOAD_PRETTY")
		}
		cfg.Pretty = pretty
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the stage and log level.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("stage", func(fl validator.FieldLevel) bool {
		return helpers.IsValidStage(fl.Field().String())
	}); err != nil {
		return errors.Wrap(err, "register stage validation")
	}

	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
