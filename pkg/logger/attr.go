package logger

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/guard"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Failure records the guard failure carried by err under the key "failure",
// expanded into kind, param and message. Errors without a failure fall back to Error.
func Failure(err error) slog.Attr {
	var f guard.Failure
	if !errors.As(err, &f) {
		return Error(err)
	}
	if lv, ok := f.(slog.LogValuer); ok {
		return slog.Attr{Key: "failure", Value: lv.LogValue()}
	}
	return Group("failure",
		slog.String("kind", string(f.Kind())),
		slog.String("param", f.Parameter()),
		slog.String("message", f.Error()),
	)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Param records a parameter name under the key "param".
func Param(name string) slog.Attr {
	return slog.String("param", guard.ParamName(name))
}
