package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-pdfgen/internal/fileutil"
)

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	t.Run("creates file with extension and content", func(t *testing.T) {
		t.Parallel()

		path, cleanup, err := fileutil.WriteTempFile("<h1>hi</h1>", "html")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cleanup()

		if !strings.HasSuffix(path, ".html") {
			t.Errorf("path %q does not end in .html", path)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading temp file: %v", err)
		}
		if string(content) != "<h1>hi</h1>" {
			t.Errorf("content = %q", content)
		}
	})

	t.Run("cleanup removes the file", func(t *testing.T) {
		t.Parallel()

		path, cleanup, err := fileutil.WriteTempFile("x", "svg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cleanup()
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("file still exists after cleanup")
		}
	})

	t.Run("unique names across calls", func(t *testing.T) {
		t.Parallel()

		p1, c1, err := fileutil.WriteTempFile("a", "html")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer c1()
		p2, c2, err := fileutil.WriteTempFile("b", "html")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer c2()

		if p1 == p2 {
			t.Errorf("temp paths collide: %q", p1)
		}
	})

	t.Run("rejects empty extension", func(t *testing.T) {
		t.Parallel()

		_, _, err := fileutil.WriteTempFile("x", "")
		if !errors.Is(err, fileutil.ErrExtensionEmpty) {
			t.Errorf("error = %v, want ErrExtensionEmpty", err)
		}
	})

	t.Run("rejects path traversal in extension", func(t *testing.T) {
		t.Parallel()

		for _, ext := range []string{"../x", `ht\ml`, "ht/ml", "h\x00tml"} {
			if _, _, err := fileutil.WriteTempFile("x", ext); !errors.Is(err, fileutil.ErrExtensionPathTraversal) {
				t.Errorf("extension %q: error = %v, want ErrExtensionPathTraversal", ext, err)
			}
		}
	})
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.html")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, directories do not count")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true")
	}
}

func TestCheckReadable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.html")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := fileutil.CheckReadable(file); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := fileutil.CheckReadable(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
	if err := fileutil.CheckReadable(dir); err == nil {
		t.Error("expected error for directory")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"default", false},
		{"./custom.yaml", true},
		{"../shared/cfg.yaml", true},
		{"/absolute/path.yaml", true},
		{`C:\windows\cfg.yaml`, true},
		{"my-config", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
