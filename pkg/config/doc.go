// Package config loads command configuration from environment variables into
// a typed struct.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The `.env` file in the working directory is loaded once if present.
//   - WithEnvFiles reads extra dotenv files without touching the process environment.
//   - WithPrefix namespaces every key, which lets several tools share one environment.
//   - Configs implementing Validator check themselves after parsing.
//
// # Usage
//
//	type Config struct {
//	    Strict    bool          `env:"STRICT"`
//	    LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
//	    LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("GUARDNAME_")); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Field types implementing encoding.TextUnmarshaler (slog.Level, logger.Format)
// are decoded through it, so invalid values surface as ErrParsingConfig.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  failed to parse env vars into struct.
//   - `ErrReadingEnvFile` a file passed to WithEnvFiles could not be read.
//   - `ErrInvalidConfig`  Validate rejected the parsed config.
//   - `ErrNilPointer`     Load was given a nil pointer.
package config
