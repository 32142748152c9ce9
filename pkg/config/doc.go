// Package config loads typed configuration from environment variables and
// dotenv files.
//
// It wraps github.com/joho/godotenv for reading .env files and
// github.com/caarlos0/env/v11 for parsing the environment into structs
// annotated with env tags.
//
// # Usage
//
//	type Config struct {
//	    Env    string `env:"APP_ENV" envDefault:"development"`
//	    Schema string `env:"SEQSCAN_SCHEMA,required"`
//	}
//
//	if err := config.LoadEnv("seqscan.env"); err != nil {
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// LoadEnv never overrides variables already present in the process
// environment, so explicit exports always beat file contents. Among files,
// the later path wins.
//
// Load parses each configuration type once per process and serves later
// calls from an in-memory cache. Reload and ResetCache discard cached values,
// which tests use after changing the environment.
//
// # Error Handling
//
// Errors match one of the sentinels through errors.Is: ErrParsingConfig,
// ErrInvalidConfigType, ErrNilPointer or ErrLoadingEnvFile.
package config
