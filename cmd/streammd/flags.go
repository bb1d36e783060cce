package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds flags for the render command.
type renderFlags struct {
	commonFlags
	width       int
	raw         bool
	noCitations bool
	noMath      bool
}

// streamFlags holds flags for the stream command.
type streamFlags struct {
	renderFlags
	chunkSize int
	delay     time.Duration
}

// exportFlags holds flags for the export command.
type exportFlags struct {
	commonFlags
	output  string
	format  string
	style   string
	css     string
	title   string
	date    string
	timeout time.Duration
}

// addCommonFlags registers flags shared by every command.
func addCommonFlags(fs *flag.FlagSet, flags *commonFlags) {
	fs.StringVarP(&flags.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVar(&flags.verbose, "verbose", false, "log debug details")
}

// addRenderFlags registers flags for render and stream.
func addRenderFlags(fs *flag.FlagSet, flags *renderFlags) {
	addCommonFlags(fs, &flags.commonFlags)
	fs.IntVarP(&flags.width, "width", "w", 0, "wrap width (0 = detect terminal)")
	fs.BoolVar(&flags.raw, "raw", false, "print normalized markdown without styling")
	fs.BoolVar(&flags.noCitations, "no-citations", false, "keep [n] markers as plain text")
	fs.BoolVar(&flags.noMath, "no-math", false, "keep dollar signs literal")
}

// parseRenderFlags parses render command arguments.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	flags := &renderFlags{}
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	addRenderFlags(fs, flags)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}

// parseStreamFlags parses stream command arguments.
func parseStreamFlags(args []string) (*streamFlags, []string, error) {
	flags := &streamFlags{}
	fs := flag.NewFlagSet("stream", flag.ContinueOnError)
	addRenderFlags(fs, &flags.renderFlags)
	fs.IntVar(&flags.chunkSize, "chunk", 0, "bytes per simulated chunk (0 = config or 12)")
	fs.DurationVar(&flags.delay, "delay", 0, "pause between chunks (0 = config or 30ms)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}

// parseExportFlags parses export command arguments.
func parseExportFlags(args []string) (*exportFlags, []string, error) {
	flags := &exportFlags{}
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	addCommonFlags(fs, &flags.commonFlags)
	fs.StringVarP(&flags.output, "output", "o", "", "output file (default input name with new extension)")
	fs.StringVarP(&flags.format, "format", "f", "", "output format: html, pdf (default from output extension)")
	fs.StringVarP(&flags.style, "style", "s", "", "embedded style name or path to a .css file")
	fs.StringVar(&flags.css, "css", "", "extra CSS file appended after the base stylesheet")
	fs.StringVar(&flags.title, "title", "", "document title (default derived from input name)")
	fs.StringVar(&flags.date, "date", "", `export date: "auto", "auto:FORMAT", or literal`)
	fs.DurationVar(&flags.timeout, "timeout", 0, "PDF generation timeout (0 = default 30s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}
