package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	streammd "github.com/pollyhq/go-streammd"
	"github.com/pollyhq/go-streammd/internal/assets"
	"github.com/pollyhq/go-streammd/internal/dateutil"
	"github.com/pollyhq/go-streammd/internal/fileutil"
	"github.com/pollyhq/go-streammd/internal/hints"
)

// runExport writes a transcript as a standalone HTML or PDF document.
func runExport(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseExportFlags(args)
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

	format, err := resolveFormat(flags)
	if err != nil {
		return err
	}

	output := flags.output
	if output == "" {
		output = name + "." + format
	}

	opts, err := exportOptions(flags, name, env)
	if err != nil {
		return err
	}

	exporter := streammd.NewExporter(opts...)
	defer func() {
		if err := exporter.Close(); err != nil {
			env.Log.Warn("closing exporter", "error", err)
		}
	}()

	env.Log.Debug("exporting transcript", "input", name, "format", format, "output", output)

	var data []byte
	switch format {
	case "html":
		doc, err := exporter.ExportHTML(ctx, content)
		if err != nil {
			return err
		}
		data = []byte(doc)
	case "pdf":
		data, err = exporter.ExportPDF(ctx, content)
		if err != nil {
			if errorsIsBrowser(err) {
				return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
			}
			return err
		}
	}

	if err := os.WriteFile(output, data, 0o600); err != nil {
		return fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, output, err, hints.ForOutputFile())
	}

	env.Log.Info("transcript exported", "output", output, "bytes", len(data))
	return nil
}

// resolveFormat picks the output format from --format or the output
// file extension, defaulting to html.
func resolveFormat(flags *exportFlags) (string, error) {
	format := strings.ToLower(flags.format)
	if format == "" && flags.output != "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(flags.output)), ".")
	}
	if format == "" {
		format = "html"
	}

	switch format {
	case "html", "pdf":
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q (use html or pdf)", ErrBadFormat, format)
	}
}

// exportOptions maps flags and config onto Exporter options.
func exportOptions(flags *exportFlags, name string, env *Environment) ([]streammd.ExportOption, error) {
	var opts []streammd.ExportOption

	title := flags.title
	if title == "" {
		title = env.Config.Export.Title
	}
	if title == "" {
		title = name
	}
	opts = append(opts, streammd.WithExportTitle(title))

	var extraCSS []string

	style := flags.style
	if style == "" {
		style = env.Config.Export.Style
	}
	if style != "" {
		if fileutil.IsFilePath(style) {
			css, err := os.ReadFile(style) // #nosec G304 -- style path is user-provided
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrReadCSS, style, err)
			}
			extraCSS = append(extraCSS, string(css))
		} else {
			if _, err := assets.LoadStyle(style); err != nil {
				return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.StyleNames()))
			}
			opts = append(opts, streammd.WithExportStyle(style))
		}
	}

	if cssPath := flags.css; cssPath != "" {
		css, err := os.ReadFile(cssPath) // #nosec G304 -- CSS path is user-provided
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadCSS, cssPath, err)
		}
		extraCSS = append(extraCSS, string(css))
	}

	if len(extraCSS) > 0 {
		opts = append(opts, streammd.WithExportCSS(strings.Join(extraCSS, "\n")))
	}

	date := flags.date
	if date != "" {
		resolved, err := dateutil.ResolveDate(date, env.Now())
		if err != nil {
			return nil, err
		}
		opts = append(opts, streammd.WithExportMeta(resolved))
	}

	timeout := flags.timeout
	if timeout == 0 {
		timeout = env.Config.Export.Timeout
	}
	if timeout > 0 {
		opts = append(opts, streammd.WithExportTimeout(timeout))
	}

	return opts, nil
}

// runStyles lists the embedded export stylesheets.
func runStyles(env *Environment) error {
	for _, name := range assets.StyleNames() {
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}
