// Package logger builds the *slog.Logger used by the guard commands and adds
// attribute helpers that render guard failures as structured groups.
//
// New takes functional options:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the handler.
//   - WithLevel sets the minimum level.
//   - WithOutput redirects records (stderr by default).
//   - WithAttr attaches static attributes.
//
// Format is a guard enum: ParseFormat and Format.UnmarshalText reject anything
// but "json" and "text" with an error matching guard.ErrInvalidEnum, so it can
// be loaded straight from the environment.
//
// # Usage
//
//	log := logger.New(logger.WithLevel(slog.LevelDebug), logger.WithJSONFormatter())
//	logger.SetAsDefault(log)
//
//	if _, err := guard.Zero(guard.Against, size, "size"); err != nil {
//	    log.Warn("rejected request", logger.Failure(err))
//	}
//
// Failure expands the failure into kind, param and message. Error and Errors
// return an empty attribute for nil errors, so they can be passed unconditionally.
package logger
