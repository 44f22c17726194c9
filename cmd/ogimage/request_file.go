package main

import (
	"errors"
	"fmt"
	"os"

	ogimage "github.com/alnah/go-ogimage"
	"github.com/alnah/go-ogimage/internal/config"
	"github.com/alnah/go-ogimage/internal/yamlutil"
)

// Sentinel errors for request files.
var (
	ErrReadRequest    = errors.New("failed to read request file")
	ErrInvalidRequest = errors.New("invalid request file")
)

// requestFile is the YAML form of one render request. Keys follow the
// og-image query parameters.
type requestFile struct {
	Text       string   `yaml:"text"`
	Theme      string   `yaml:"theme"`
	Markdown   *bool    `yaml:"md"`
	FontFamily string   `yaml:"fontFamily"`
	FontSize   string   `yaml:"fontSize"`
	Images     []string `yaml:"images"`
	Widths     []string `yaml:"widths"`
	Heights    []string `yaml:"heights"`
}

// readRequestFile decodes path strictly and fills empty fields from
// defaults.
func readRequestFile(path string, defaults config.DefaultsConfig) (ogimage.Request, error) {
	var rf requestFile
	if err := yamlutil.ReadFileStrict(path, &rf); err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			return ogimage.Request{}, fmt.Errorf("%w: %v", ErrReadRequest, err)
		}
		return ogimage.Request{}, fmt.Errorf("%w: %s: %v", ErrInvalidRequest, path, err)
	}
	if rf.Text == "" {
		return ogimage.Request{}, fmt.Errorf("%w: %s: text is required", ErrInvalidRequest, path)
	}

	req := ogimage.Request{
		Text:       rf.Text,
		Theme:      rf.Theme,
		Markdown:   defaults.Markdown,
		FontFamily: rf.FontFamily,
		FontSize:   rf.FontSize,
		Images:     rf.Images,
		Widths:     rf.Widths,
		Heights:    rf.Heights,
	}
	if rf.Markdown != nil {
		req.Markdown = *rf.Markdown
	}
	applyDefaults(&req, defaults)
	return req, nil
}
