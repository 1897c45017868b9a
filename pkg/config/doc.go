// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// describe settings as a struct with `env` tags, call Load, and the parsed
// value is cached per struct type for the life of the process.
//
//	type GeneratorConfig struct {
//		Seed uint64 `env:"LIPSUM_SEED"`
//		URL  string `env:"LIPSUM_URL" envDefault:"https://example.com/"`
//	}
//
//	var cfg GeneratorConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// The default ./.env file is read once on first use. LoadEnv reads other
// files explicitly, later files taking precedence.
//
// Errors are sentinels for errors.Is: ErrParsingConfig, ErrInvalidConfigType,
// ErrLoadingEnvFile and ErrNilPointer.
//
// Tests that change the environment should call ResetCache.
package config
