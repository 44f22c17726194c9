package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ogimage <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render one card to HTML")
	fmt.Fprintln(w, "  batch      Render YAML request files to HTML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'ogimage help <command>' for details on a specific command.")
}

// printCommonUsage prints flags shared by render and batch.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Renderer:")
	fmt.Fprintln(w, "      --font-dir <dir>        Directory holding the woff2 fonts")
	fmt.Fprintln(w, "      --emoji-base-url <url>  Twemoji SVG URL prefix")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  OGIMAGE_CONFIG, OGIMAGE_FONT_DIR, OGIMAGE_EMOJI_BASE_URL,")
	fmt.Fprintln(w, "  OGIMAGE_OUTPUT_DIR, OGIMAGE_WORKERS")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ogimage render [flags] [text]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one card to an HTML document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  text    Heading text, same as --text (\"-\" reads stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Request:")
	fmt.Fprintln(w, "  -t, --text <s>              Heading text")
	fmt.Fprintln(w, "      --theme <s>             Theme: light, dark")
	fmt.Fprintln(w, "      --md                    Treat text as markdown")
	fmt.Fprintln(w, "      --font-family <s>       Heading font family")
	fmt.Fprintln(w, "      --font-size <s>         Heading font size, e.g. 96px")
	fmt.Fprintln(w, "  -i, --image <url>           Logo URL (repeatable)")
	fmt.Fprintln(w, "      --width <s>             Logo width (repeatable, default auto)")
	fmt.Fprintln(w, "      --height <s>            Logo height (repeatable, default 225)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output HTML file (default stdout)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printBatchUsage prints usage for the batch command.
func printBatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ogimage batch <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render YAML request files to HTML documents in parallel.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Request file or directory of *.yaml / *.yml files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Request file keys:")
	fmt.Fprintln(w, "  text, theme, md, fontFamily, fontSize, images, widths, heights")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>          Output directory (default next to input)")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "batch":
		printBatchUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: ogimage version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: ogimage help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
