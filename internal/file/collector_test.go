package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	uperrors "arup/internal/errors"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(rel), 0644); err != nil {
		t.Fatal(err)
	}
}

func relativePaths(c *Collection) []string {
	var out []string
	for _, target := range c.Targets {
		out = append(out, target.RelativePath)
	}
	return out
}

func TestCollector_Collect(t *testing.T) {
	t.Run("single file yields one target named after the file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "report.pdf")

		collection, err := NewCollector().Collect(filepath.Join(dir, "report.pdf"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if collection.IsDir {
			t.Error("expected a file collection")
		}
		if len(collection.Targets) != 1 {
			t.Fatalf("expected 1 target, got %d", len(collection.Targets))
		}
		target := collection.Targets[0]
		if target.RelativePath != "report.pdf" || target.FileName != "report.pdf" {
			t.Errorf("expected relative path and name report.pdf, got %q and %q", target.RelativePath, target.FileName)
		}
		if target.HasDistinctPath() {
			t.Error("single file should not carry a distinct path")
		}
		if target.Size != int64(len("report.pdf")) {
			t.Errorf("expected size %d, got %d", len("report.pdf"), target.Size)
		}
	})

	t.Run("directory is walked depth first in entry order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.png")
		writeFile(t, dir, "b/one.txt")
		writeFile(t, dir, "b/c/two.txt")
		writeFile(t, dir, "b/z.txt")
		writeFile(t, dir, "d.json")

		collection, err := NewCollector().Collect(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{"a.png", "b/c/two.txt", "b/one.txt", "b/z.txt", "d.json"}
		got := relativePaths(collection)
		if len(got) != len(expected) {
			t.Fatalf("expected %v, got %v", expected, got)
		}
		for i := range expected {
			if got[i] != expected[i] {
				t.Errorf("position %d: expected %s, got %s", i, expected[i], got[i])
			}
		}
	})

	t.Run("every file appears exactly once", func(t *testing.T) {
		dir := t.TempDir()
		files := []string{"x.txt", "l1/y.txt", "l1/l2/z.txt", "l1/l2/l3/w.txt", "other/v.txt"}
		for _, f := range files {
			writeFile(t, dir, f)
		}
		if err := os.MkdirAll(filepath.Join(dir, "empty", "deeper"), 0755); err != nil {
			t.Fatal(err)
		}

		collection, err := NewCollector().Collect(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		seen := map[string]int{}
		for _, rel := range relativePaths(collection) {
			seen[rel]++
		}
		if len(collection.Targets) != len(files) {
			t.Errorf("expected %d targets, got %d", len(files), len(collection.Targets))
		}
		for _, f := range files {
			if seen[f] != 1 {
				t.Errorf("expected %s exactly once, got %d", f, seen[f])
			}
		}
	})

	t.Run("nested file keeps its relative path and bare name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "sub/dir/leaf.txt")

		collection, err := NewCollector().Collect(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		target := collection.Targets[0]
		if target.RelativePath != "sub/dir/leaf.txt" {
			t.Errorf("expected sub/dir/leaf.txt, got %s", target.RelativePath)
		}
		if target.FileName != "leaf.txt" {
			t.Errorf("expected leaf.txt, got %s", target.FileName)
		}
		if !target.HasDistinctPath() {
			t.Error("nested file should carry a distinct path")
		}
		if !filepath.IsAbs(target.AbsolutePath) {
			t.Errorf("expected absolute path, got %s", target.AbsolutePath)
		}
	})

	t.Run("empty directory yields no targets", func(t *testing.T) {
		collection, err := NewCollector().Collect(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !collection.IsDir || len(collection.Targets) != 0 {
			t.Errorf("expected empty directory collection, got %+v", collection)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := NewCollector().Collect(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, uperrors.ErrPathNotFound) {
			t.Errorf("expected ErrPathNotFound, got %v", err)
		}
	})

	t.Run("broken symlink is an IO error", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling")); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}

		_, err := NewCollector().Collect(dir)
		if !errors.Is(err, uperrors.ErrIO) {
			t.Errorf("expected ErrIO, got %v", err)
		}
	})
}
