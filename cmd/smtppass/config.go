package main

// Config is read from SMTPPASS_-prefixed environment variables and an optional ./.env file.
// Command-line flags override it. LOG_LEVEL and LOG_FORMAT override the ENV preset.
type Config struct {
	Env        string `env:"ENV"`
	LogLevel   string `env:"LOG_LEVEL"`
	LogFormat  string `env:"LOG_FORMAT"`
	Output     string `env:"OUTPUT" envDefault:"text"`
	AWSProfile string `env:"AWS_PROFILE"`
}

const envPrefix = "SMTPPASS_"
