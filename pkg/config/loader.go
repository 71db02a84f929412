package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix      string
	envFiles    []string
	dotEnv      bool
	environment map[string]string
}

// WithPrefix only reads variables starting with prefix, e.g. "SMTPPASS_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files before parsing.
// Missing files are an error.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithDotEnv loads ./.env before parsing when it can.
// A missing or unparsable file is ignored.
func WithDotEnv() Option {
	return func(o *options) {
		o.dotEnv = true
	}
}

// WithEnvironment parses from the given map instead of the process environment.
// Useful in tests.
func WithEnvironment(environment map[string]string) Option {
	return func(o *options) {
		o.environment = environment
	}
}

// Load parses environment variables into the provided configuration struct
// using `env` and `envDefault` field tags.
//
// Variables already present in the process environment take precedence over
// values from .env files.
//
// Example:
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("SMTPPASS_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.dotEnv {
		// Ignore errors - the .env file might not exist or belong to another tool
		_ = godotenv.Load()
	}
	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environment != nil {
		envOpts.Environment = o.environment
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
