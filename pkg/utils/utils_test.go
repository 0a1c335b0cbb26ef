package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveInputPath(t *testing.T) {
	t.Run("existing file resolves to absolute path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "a.txt")
		if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
			t.Fatal(err)
		}

		resolved, info, err := ResolveInputPath(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !filepath.IsAbs(resolved) {
			t.Errorf("expected absolute path, got %s", resolved)
		}
		if info.IsDir() {
			t.Error("expected a file")
		}
	})

	t.Run("missing path reports not exist", func(t *testing.T) {
		_, _, err := ResolveInputPath(filepath.Join(t.TempDir(), "missing"))
		if !os.IsNotExist(err) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatFileSize(tt.size); got != tt.expected {
			t.Errorf("FormatFileSize(%d): expected %s, got %s", tt.size, tt.expected, got)
		}
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Run("decodes object", func(t *testing.T) {
		got, err := DecodeJSON[map[string]any]([]byte(`{"kty":"RSA"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got["kty"] != "RSA" {
			t.Errorf("expected kty=RSA, got %v", got["kty"])
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		if _, err := DecodeJSON[map[string]any](nil); err == nil {
			t.Error("expected error for empty input")
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		if _, err := DecodeJSON[map[string]any]([]byte("{")); err == nil {
			t.Error("expected error for malformed input")
		}
	})
}
