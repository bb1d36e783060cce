package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	streammd "github.com/pollyhq/go-streammd"
)

// defaultWidth is used when the terminal size cannot be detected.
const defaultWidth = 80

// runRender normalizes a transcript and prints it styled for the terminal.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args)
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

	normalizer := streammd.NewNormalizer(normalizerOptions(flags, env)...)
	normalized := normalizer.Normalize(ctx, content)

	width := resolveWidth(flags.width, env)
	env.Log.Debug("rendering transcript", "input", name, "width", width)

	if flags.raw || env.Config.Render.ShowRawOutput {
		fmt.Fprintln(env.Stdout, wordwrap.String(normalized, width))
		return nil
	}

	styled, err := renderStyled(normalized, width, env.Config.Render.ColorProfile)
	if err != nil {
		// Styled rendering is best effort; fall back to the plain text.
		env.Log.Warn("styled rendering failed, printing plain text", "error", err)
		fmt.Fprintln(env.Stdout, normalized)
		return nil
	}
	fmt.Fprint(env.Stdout, styled)
	return nil
}

// normalizerOptions maps CLI flags and config onto library options.
func normalizerOptions(flags *renderFlags, env *Environment) []streammd.Option {
	var opts []streammd.Option
	if flags.noCitations || env.Config.Render.NoCitations {
		opts = append(opts, streammd.WithoutCitationLinks())
	}
	if flags.noMath || env.Config.Render.NoMath {
		opts = append(opts, streammd.WithoutMathSpans())
	}
	return opts
}

// renderStyled renders markdown for terminal display using glamour.
// forceColor skips TTY detection and applies the dark style, for piped
// output that still ends up on a color-capable display.
func renderStyled(content string, width int, forceColor bool) (string, error) {
	style := glamour.WithAutoStyle()
	if forceColor {
		style = glamour.WithStandardStyle("dark")
	}
	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// resolveWidth picks the wrap width: flag, then config, then terminal.
func resolveWidth(flagWidth int, env *Environment) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if env.Config.Render.Width > 0 {
		return env.Config.Render.Width
	}
	return terminalWidth(defaultWidth)
}

// terminalWidth detects the terminal width, trying the COLUMNS
// variable when stdout is not a terminal.
func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
