package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveInputPath makes inputPath absolute and checks that it exists
func ResolveInputPath(inputPath string) (string, os.FileInfo, error) {
	resolved, err := filepath.Abs(inputPath)
	if err != nil {
		return "", nil, fmt.Errorf("cannot resolve path '%s': %w", inputPath, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return resolved, nil, err
	}
	return resolved, info, nil
}

// ExecutableDir returns the directory holding the running binary, with symlinks resolved
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// FormatFileSize formats file size in human readable format
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
