package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	ogimage "github.com/alnah/go-ogimage"
	"github.com/alnah/go-ogimage/internal/config"
	"github.com/alnah/go-ogimage/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxStdinText caps heading text read from stdin.
const maxStdinText = 1 << 20

// Sentinel errors for render operations.
var (
	ErrNoText          = errors.New("no heading text specified")
	ErrReadText        = errors.New("failed to read heading text")
	ErrWriteHTML       = errors.New("failed to write HTML file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// Renderer is the interface the CLI renders through.
type Renderer interface {
	Render(ctx context.Context, req ogimage.Request) (string, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*ogimage.Renderer)(nil)

// runRenderCmd parses flags, renders one card and reports errors.
func runRenderCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseRenderFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printRenderUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printRenderUsage(env.Stderr)
		return ExitUsage
	}

	if err := runRender(ctx, positional, flags, env); err != nil {
		return reportError(env.Stderr, err, configName(flags.common.config))
	}
	return ExitSuccess
}

// runRender renders the request described by flags to a file or stdout.
func runRender(ctx context.Context, positional []string, flags *renderFlags, env *Environment) error {
	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	cfg, err := loadSettings(flags.common, flags.renderer, logger)
	if err != nil {
		return err
	}

	text, err := resolveText(flags.request.text, positional, env.Stdin)
	if err != nil {
		return err
	}

	req := buildRequest(text, flags, cfg)

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	start := env.Now()
	doc, err := renderer.Render(ctx, req)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	logger.Debug("rendered", "bytes", len(doc), "duration", env.Now().Sub(start).Round(time.Microsecond))

	if flags.output == "" {
		_, err := io.WriteString(env.Stdout, doc)
		return err
	}

	if err := writeHTML(flags.output, doc); err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}

// resolveText picks the heading from --text or the first positional
// argument; "-" reads stdin.
func resolveText(flagText string, positional []string, stdin io.Reader) (string, error) {
	text := flagText
	if text == "" && len(positional) > 0 {
		text = strings.Join(positional, " ")
	}
	if text == "" {
		return "", ErrNoText
	}
	if text != "-" {
		return text, nil
	}

	data, err := io.ReadAll(io.LimitReader(stdin, maxStdinText+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadText, err)
	}
	if len(data) > maxStdinText {
		return "", fmt.Errorf("%w: stdin exceeds %d bytes", ErrReadText, maxStdinText)
	}
	text = strings.TrimRight(string(data), "\r\n")
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// buildRequest merges request flags over config defaults.
func buildRequest(text string, flags *renderFlags, cfg *config.Config) ogimage.Request {
	req := ogimage.Request{
		Text:       text,
		Theme:      flags.request.theme,
		Markdown:   cfg.Defaults.Markdown,
		FontFamily: flags.request.fontFamily,
		FontSize:   flags.request.fontSize,
		Images:     flags.request.images,
		Widths:     flags.request.widths,
		Heights:    flags.request.heights,
	}
	if flags.markdownSet {
		req.Markdown = flags.request.markdown
	}
	applyDefaults(&req, cfg.Defaults)
	return req
}

// writeHTML atomically writes doc to path, creating parent directories.
func writeHTML(path, doc string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := fileutil.WriteFileAtomic(path, doc, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}
