package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrReadingEnvFile is returned when an env file passed with WithEnvFiles cannot be read.
	ErrReadingEnvFile = errors.New("failed to read env file")

	// ErrInvalidConfig is returned when the parsed config rejects itself in Validate.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
