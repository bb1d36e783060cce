package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pollyhq/go-streammd/internal/config"
	"github.com/pollyhq/go-streammd/internal/logger"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Log    *slog.Logger
	Config *config.Config // Loaded once, shared across commands
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    logger.New(logger.WithPretty(true)),
		Config: config.Default(),
	}
}

// applyCommonFlags loads the config file if one was requested and
// reconfigures logging from flags and config.
func (env *Environment) applyCommonFlags(flags *commonFlags) error {
	if flags.config != "" {
		cfg, err := config.Load(flags.config)
		if err != nil {
			return err
		}
		env.Config = cfg
	}

	level := logger.ParseLevel(env.Config.Log.Level)
	if flags.verbose {
		level = slog.LevelDebug
	}
	if flags.quiet {
		level = slog.LevelError
	}

	opts := []logger.Option{
		logger.WithLevel(level),
		logger.WithWriter(env.Stderr),
	}
	if env.Config.Log.Format == "json" {
		opts = append(opts, logger.WithJSON(true))
	} else {
		opts = append(opts, logger.WithPretty(true))
	}
	env.Log = logger.New(opts...)

	return nil
}
