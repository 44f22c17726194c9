package yamlutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-ogimage/internal/yamlutil"
)

type testRequest struct {
	Text   string   `yaml:"text"`
	Theme  string   `yaml:"theme"`
	Images []string `yaml:"images"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Unknown fields rejected
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields decode", func(t *testing.T) {
		t.Parallel()

		var req testRequest
		data := []byte("text: Hello\nimages:\n  - a.svg\n  - b.svg\n")
		if err := yamlutil.UnmarshalStrict(data, &req); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if req.Text != "Hello" {
			t.Errorf("Text = %q, want %q", req.Text, "Hello")
		}
		if len(req.Images) != 2 {
			t.Errorf("len(Images) = %d, want 2", len(req.Images))
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		var req testRequest
		err := yamlutil.UnmarshalStrict([]byte("text: hi\nthme: dark"), &req)
		if err == nil {
			t.Fatal("UnmarshalStrict() error = nil, want unknown field error")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error = %q, want yamlutil prefix", err)
		}
	})

	t.Run("input guards", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			data    []byte
			dest    any
			wantErr error
		}{
			{name: "nil data", data: nil, dest: &testRequest{}, wantErr: yamlutil.ErrNilData},
			{name: "empty data", data: []byte{}, dest: &testRequest{}, wantErr: yamlutil.ErrNilData},
			{name: "nil destination", data: []byte("text: hi"), dest: nil, wantErr: yamlutil.ErrNilDestination},
		}
		for _, tt := range tests {
			if err := yamlutil.UnmarshalStrict(tt.data, tt.dest); !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: UnmarshalStrict() error = %v, want %v", tt.name, err, tt.wantErr)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestReadFileStrict - File-based decoding
// ---------------------------------------------------------------------------

func TestReadFileStrict(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "req.yaml")
		if err := os.WriteFile(path, []byte("text: From file\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		var req testRequest
		if err := yamlutil.ReadFileStrict(path, &req); err != nil {
			t.Fatalf("ReadFileStrict() error = %v", err)
		}
		if req.Text != "From file" {
			t.Errorf("Text = %q, want %q", req.Text, "From file")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		var req testRequest
		err := yamlutil.ReadFileStrict(filepath.Join(t.TempDir(), "nope.yaml"), &req)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("ReadFileStrict() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("oversized file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "big.yaml")
		big := "text: " + strings.Repeat("x", yamlutil.MaxInputSize+1)
		if err := os.WriteFile(path, []byte(big), 0o644); err != nil {
			t.Fatal(err)
		}

		var req testRequest
		err := yamlutil.ReadFileStrict(path, &req)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("ReadFileStrict() error = %v, want ErrInputTooLarge", err)
		}
	})
}
