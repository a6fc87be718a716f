package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Validator is implemented by configs that check their own invariants after parsing.
type Validator interface {
	Validate() error
}

// Option configures Load.
type Option func(*options)

type options struct {
	prefix string
	files  []string
}

// WithPrefix prepends prefix to every env key, so `env:"STRICT"` reads GUARDNAME_STRICT
// for WithPrefix("GUARDNAME_").
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles reads additional dotenv files. Later files override earlier ones,
// and the process environment overrides them all. The process environment is not modified.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.files = append(o.files, paths...) }
}

// Load parses environment variables into v based on its `env` field tags.
//
// The .env file in the working directory is loaded into the process
// environment once per process if it exists. When v implements Validator,
// Validate runs after parsing and its error is joined with ErrInvalidConfig.
//
// Example:
//
//	type Config struct {
//		Strict   bool       `env:"STRICT" envDefault:"false"`
//		LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("GUARDNAME_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if len(o.files) > 0 {
		environment, err := mergeEnv(o.files)
		if err != nil {
			return err
		}
		envOpts.Environment = environment
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if val, ok := any(&parsed).(Validator); ok {
		if err := val.Validate(); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}

	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the command to start.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

func mergeEnv(files []string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, path := range files {
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for k, val := range values {
			merged[k] = val
		}
	}
	for k, val := range env.ToMap(os.Environ()) {
		merged[k] = val
	}
	return merged, nil
}
