package main

import (
	"context"
	"fmt"
	"time"

	"github.com/muesli/reflow/wordwrap"

	streammd "github.com/pollyhq/go-streammd"
)

// Replay defaults when neither flag nor config sets them.
const (
	defaultChunkSize = 12
	defaultDelay     = 30 * time.Millisecond
)

// ANSI sequences for snapshot redraw.
const (
	ansiClearScreen = "\x1b[2J\x1b[H"
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
)

// runStream replays a transcript in chunks the way a model streams
// tokens, re-rendering the full snapshot after every chunk. Each
// redraw shows the stabilized normalization of the prefix received so
// far.
func runStream(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseStreamFlags(args)
	if err != nil {
		return err
	}
	if err := env.applyCommonFlags(&flags.commonFlags); err != nil {
		return err
	}

	content, name, err := readInput(positional, env)
	if err != nil {
		return err
	}

	chunkSize := flags.chunkSize
	if chunkSize == 0 {
		chunkSize = env.Config.Stream.ChunkSize
	}
	if chunkSize == 0 {
		chunkSize = defaultChunkSize
	}

	delay := flags.delay
	if delay == 0 {
		delay = env.Config.Stream.Delay
	}
	if delay == 0 {
		delay = defaultDelay
	}

	width := resolveWidth(flags.width, env)
	env.Log.Debug("replaying transcript",
		"input", name, "chunk", chunkSize, "delay", delay, "width", width)

	normalizer := streammd.NewNormalizer(normalizerOptions(&flags.renderFlags, env)...)
	stream := normalizer.NewStream()

	fmt.Fprint(env.Stdout, ansiHideCursor)
	defer fmt.Fprint(env.Stdout, ansiShowCursor)

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for offset := 0; offset < len(content); offset += chunkSize {
		end := offset + chunkSize
		if end > len(content) {
			end = len(content)
		}

		snapshot := stream.Feed(content[offset:end])
		if err := drawSnapshot(env, flags, snapshot, width); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	// Final frame without entity buffering.
	return drawSnapshot(env, flags, stream.Flush(), width)
}

// drawSnapshot clears the screen and prints the current normalized view.
func drawSnapshot(env *Environment, flags *streamFlags, snapshot string, width int) error {
	fmt.Fprint(env.Stdout, ansiClearScreen)

	if flags.raw || env.Config.Render.ShowRawOutput {
		fmt.Fprintln(env.Stdout, wordwrap.String(snapshot, width))
		return nil
	}

	styled, err := renderStyled(snapshot, width, env.Config.Render.ColorProfile)
	if err != nil {
		fmt.Fprintln(env.Stdout, snapshot)
		return nil
	}
	fmt.Fprint(env.Stdout, styled)
	return nil
}
