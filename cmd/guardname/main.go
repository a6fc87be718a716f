// Command guardname fills in the parameter names of guard checks.
//
// Usage:
//
//	guardname [-strict] [-fix] ./...
//
// Every analyzer flag can also be set through the environment:
//
//	GUARDNAME_STRICT      report names that differ from the argument (default false)
//	GUARDNAME_LOG_LEVEL   debug, info, warn or error (default info)
//	GUARDNAME_LOG_FORMAT  text or json (default text)
//
// Command-line flags take precedence over the environment.
package main

import (
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/dmitrymomot/guard/pkg/config"
	"github.com/dmitrymomot/guard/pkg/logger"
	"github.com/dmitrymomot/guard/pkg/paramname"
)

// Config is read from GUARDNAME_ prefixed environment variables.
type Config struct {
	Strict    bool          `env:"STRICT" envDefault:"false"`
	LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"text"`
}

const envPrefix = "GUARDNAME_"

func main() {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
		logger.New().Error("failed to load config", logger.Failure(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
		logger.WithAttr(logger.Component(paramname.Analyzer.Name)),
	)
	logger.SetAsDefault(log)

	if err := apply(cfg); err != nil {
		log.Error("failed to configure analyzer", logger.Error(err))
		os.Exit(1)
	}

	log.Debug("starting analyzer",
		slog.Bool("strict", cfg.Strict),
		slog.String("level", cfg.LogLevel.String()),
		slog.Any("args", os.Args[1:]),
	)

	singlechecker.Main(paramname.Analyzer)
}

// apply copies cfg onto the analyzer flags so they become the flag defaults.
func apply(cfg Config) error {
	return paramname.Analyzer.Flags.Set("strict", strconv.FormatBool(cfg.Strict))
}
