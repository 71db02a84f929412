// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Optionally loads one or more `.env` files. Files named with `WithEnvFiles`
//     must load; the implicit `./.env` of `WithDotEnv` is best-effort.
//     Values already set in the process environment win.
//   - Parses the environment into any Go struct using `env` field tags,
//     optionally restricted to a variable prefix (`WithPrefix`).
//
// # Usage
//
//	type Config struct {
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
//	    LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("SMTPPASS_"), config.WithDotEnv()); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`.
//
// # Testing Helpers
//
// Use `WithEnvironment(map[string]string{...})` to parse from a fixed map
// instead of the process environment.
package config
