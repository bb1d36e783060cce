package main

import (
	"bytes"
	"strings"
	"time"

	"github.com/pollyhq/go-streammd/internal/config"
	"github.com/pollyhq/go-streammd/internal/logger"
)

// testEnv returns an Environment wired to in-memory buffers.
func testEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC) },
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Log:    logger.New(logger.WithWriter(&stderr)),
		Config: config.Default(),
	}
	return env, &stdout, &stderr
}
