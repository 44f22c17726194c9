package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing failures.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// rendererFlags configure the renderer itself.
type rendererFlags struct {
	fontDir      string
	emojiBaseURL string
}

// requestFlags hold the fields of a single render request.
type requestFlags struct {
	text       string
	theme      string
	markdown   bool
	fontFamily string
	fontSize   string
	images     []string
	widths     []string
	heights    []string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common   commonFlags
	renderer rendererFlags
	request  requestFlags
	output   string

	// markdownSet is true when --md was given explicitly, so --md=false
	// can override a config default of true.
	markdownSet bool
}

// batchFlags holds all flags for the batch command.
type batchFlags struct {
	common   commonFlags
	renderer rendererFlags
	output   string
	workers  int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRendererFlags adds renderer flags to a FlagSet.
func addRendererFlags(fs *flag.FlagSet, f *rendererFlags) {
	fs.StringVar(&f.fontDir, "font-dir", "", "directory holding the woff2 fonts")
	fs.StringVar(&f.emojiBaseURL, "emoji-base-url", "", "URL prefix of Twemoji SVG files")
}

// addRequestFlags adds request flags to a FlagSet.
// Images, widths and heights repeat instead of splitting on commas, since
// data URIs contain commas.
func addRequestFlags(fs *flag.FlagSet, f *requestFlags) {
	fs.StringVarP(&f.text, "text", "t", "", "heading text (\"-\" reads stdin)")
	fs.StringVar(&f.theme, "theme", "", "color theme: light, dark")
	fs.BoolVar(&f.markdown, "md", false, "treat text as markdown")
	fs.StringVar(&f.fontFamily, "font-family", "", "heading font family")
	fs.StringVar(&f.fontSize, "font-size", "", "heading font size (CSS length)")
	fs.StringArrayVarP(&f.images, "image", "i", nil, "logo URL (repeatable)")
	fs.StringArrayVar(&f.widths, "width", nil, "logo width, aligned with --image (repeatable)")
	fs.StringArrayVar(&f.heights, "height", nil, "logo height, aligned with --image (repeatable)")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	fs := newFlagSet("render")
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default stdout)")
	addCommonFlags(fs, &f.common)
	addRendererFlags(fs, &f.renderer)
	addRequestFlags(fs, &f.request)

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapParseError(err)
	}
	f.markdownSet = fs.Changed("md")

	return f, fs.Args(), nil
}

// parseBatchFlags parses batch command flags and returns positional args.
func parseBatchFlags(args []string) (*batchFlags, []string, error) {
	fs := newFlagSet("batch")
	f := &batchFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addRendererFlags(fs, &f.renderer)

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapParseError(err)
	}

	return f, fs.Args(), nil
}

// wrapParseError marks parse failures as usage errors. flag.ErrHelp is
// returned as is so commands can print their help.
func wrapParseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// newFlagSet returns a silent FlagSet; errors are reported by the caller.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}
