package main

import (
	"context"
	"strings"
	"testing"
)

func TestRunRenderRaw(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(`The equation \(E=mc^2\) [1][2] is famous.`)

	err := runRender(context.Background(), []string{"--raw", "--width", "200"}, env)
	if err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	got := stdout.String()
	if !strings.Contains(got, "`$E=mc^2$`") {
		t.Errorf("output = %q, want wrapped math span", got)
	}
	if !strings.Contains(got, "[1,2](#cite-group-1-2)") {
		t.Errorf("output = %q, want grouped citation link", got)
	}
}

func TestRunRenderDisabledStages(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv("Price is $5 [1]")

	err := runRender(context.Background(),
		[]string{"--raw", "--no-citations", "--no-math", "--width", "200"}, env)
	if err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	got := stdout.String()
	if !strings.Contains(got, "[1]") || strings.Contains(got, "#cite-") {
		t.Errorf("output = %q, want untouched [1] marker", got)
	}
	if !strings.Contains(got, "$5") {
		t.Errorf("output = %q, want literal dollar amount", got)
	}
}

func TestRenderStyledForcedColor(t *testing.T) {
	t.Parallel()

	got, err := renderStyled("# Heading", 80, true)
	if err != nil {
		t.Fatalf("renderStyled() error: %v", err)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("output = %q, want ANSI styling despite non-TTY stdout", got)
	}
}

func TestRunRenderWrapsRawOutput(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(strings.Repeat("word ", 40))

	err := runRender(context.Background(), []string{"--raw", "--width", "20"}, env)
	if err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	for i, line := range strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n") {
		if len(line) > 20 {
			t.Errorf("line %d exceeds wrap width: %q", i, line)
		}
	}
}

func TestRunDispatch(t *testing.T) {
	t.Parallel()

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()
		env, _, stderr := testEnv("")

		err := run(context.Background(), []string{"frobnicate"}, env)
		if err == nil {
			t.Fatal("run(frobnicate): want error, got nil")
		}
		if !strings.Contains(stderr.String(), "Unknown command") {
			t.Errorf("stderr = %q, want unknown command message", stderr.String())
		}
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv("")

		if err := run(context.Background(), []string{"version"}, env); err != nil {
			t.Fatalf("run(version) error: %v", err)
		}
		if !strings.Contains(stdout.String(), "streammd") {
			t.Errorf("stdout = %q, want version line", stdout.String())
		}
	})

	t.Run("styles", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv("")

		if err := run(context.Background(), []string{"styles"}, env); err != nil {
			t.Fatalf("run(styles) error: %v", err)
		}
		if !strings.Contains(stdout.String(), "chat") {
			t.Errorf("stdout = %q, want chat style listed", stdout.String())
		}
	})

	t.Run("no arguments prints usage", func(t *testing.T) {
		t.Parallel()
		env, _, stderr := testEnv("")

		err := run(context.Background(), nil, env)
		if err == nil {
			t.Fatal("run() with no args: want error, got nil")
		}
		if !strings.Contains(stderr.String(), "Usage:") {
			t.Errorf("stderr = %q, want usage message", stderr.String())
		}
	})
}
