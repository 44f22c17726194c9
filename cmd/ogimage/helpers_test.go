package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	ogimage "github.com/alnah/go-ogimage"
	"github.com/alnah/go-ogimage/internal/assets"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

// writeFontDir creates a directory holding every default face as a minimal
// woff2 file.
func writeFontDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, face := range assets.DefaultFaces {
		path := filepath.Join(dir, face.File+".woff2")
		if err := os.WriteFile(path, []byte("wOF2"+face.File), 0o644); err != nil {
			t.Fatalf("failed to write font %s: %v", face.File, err)
		}
	}
	return dir
}

// writeFile writes content to dir/name, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// testEnv returns an Environment writing to buffers.
func testEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdin:  bytes.NewBufferString(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// mockRenderer records requests and returns a canned document or error.
type mockRenderer struct {
	mu       sync.Mutex
	requests []ogimage.Request
	failOn   string // Text that triggers err
	err      error
}

func (m *mockRenderer) Render(_ context.Context, req ogimage.Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.err != nil && (m.failOn == "" || m.failOn == req.Text) {
		return "", m.err
	}
	return "<!DOCTYPE html><p>" + req.Text + "</p>", nil
}

// Compile-time interface check.
var _ Renderer = (*mockRenderer)(nil)
