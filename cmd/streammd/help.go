package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: streammd <command> [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Normalize a transcript and print it styled for the terminal")
	fmt.Fprintln(w, "  stream     Replay a transcript in chunks, re-rendering each snapshot")
	fmt.Fprintln(w, "  export     Export a transcript as a standalone HTML or PDF document")
	fmt.Fprintln(w, "  styles     List embedded export stylesheets")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'streammd help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: streammd render [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Normalize a transcript and print it styled for the terminal.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, or \"-\" for stdin (default stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -w, --width <n>       Wrap width (0 = detect terminal)")
	fmt.Fprintln(w, "      --raw             Print normalized markdown without styling")
	fmt.Fprintln(w, "      --no-citations    Keep [n] markers as plain text")
	fmt.Fprintln(w, "      --no-math         Keep dollar signs literal")
	printCommonUsage(w)
}

// printStreamUsage prints usage for the stream command.
func printStreamUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: streammd stream [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replay a transcript in chunks the way a model streams tokens,")
	fmt.Fprintln(w, "re-rendering the normalized snapshot after every chunk.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --chunk <n>       Bytes per simulated chunk (default 12)")
	fmt.Fprintln(w, "      --delay <d>       Pause between chunks (default 30ms)")
	fmt.Fprintln(w, "  -w, --width <n>       Wrap width (0 = detect terminal)")
	fmt.Fprintln(w, "      --raw             Print normalized markdown without styling")
	fmt.Fprintln(w, "      --no-citations    Keep [n] markers as plain text")
	fmt.Fprintln(w, "      --no-math         Keep dollar signs literal")
	printCommonUsage(w)
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: streammd export [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export a transcript as a standalone HTML or PDF document.")
	fmt.Fprintln(w, "Math spans render client side via KaTeX; PDF export uses headless Chrome.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>   Output file (default input name with new extension)")
	fmt.Fprintln(w, "  -f, --format <s>      Output format: html, pdf (default from extension)")
	fmt.Fprintln(w, "  -s, --style <s>       Embedded style name or path to a .css file")
	fmt.Fprintln(w, "      --css <path>      Extra CSS file appended after the base stylesheet")
	fmt.Fprintln(w, "      --title <s>       Document title (default derived from input name)")
	fmt.Fprintln(w, "      --date <s>        Export date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                        Formats: iso, european, us, long")
	fmt.Fprintln(w, "      --timeout <d>     PDF generation timeout (default 30s)")
	printCommonUsage(w)
}

// printCommonUsage prints the flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common flags:")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Only log errors")
	fmt.Fprintln(w, "      --verbose         Log debug details")
}

// runHelp shows help for a command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "stream":
		printStreamUsage(env.Stdout)
	case "export":
		printExportUsage(env.Stdout)
	default:
		printUsage(env.Stdout)
	}
}
