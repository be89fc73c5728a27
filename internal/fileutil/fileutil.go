// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrNotDirectory = errors.New("not a directory")
	ErrUnsafeReset  = errors.New("refusing to reset directory")
)

// Permissions for created files and directories.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

// CopyStats summarizes a CopyTree run.
type CopyStats struct {
	Files int
	Bytes int64
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "minimal" -> false (name)
//   - "./site.css" -> true (relative path)
//   - "/abs/layout.html" -> true (absolute)
//   - "C:\site\layout.html" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ResetDir removes dir and everything below it, then recreates it empty.
// Returns ErrUnsafeReset for the working directory, a filesystem root or an
// ancestor of the working directory.
func ResetDir(dir string) error {
	if err := checkResettable(dir); err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

func checkResettable(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsafeReset, err)
	}
	if abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return fmt.Errorf("%w: %s is a filesystem root", ErrUnsafeReset, dir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil
	}
	rel, err := filepath.Rel(abs, wd)
	if err == nil && (rel == "." || !strings.HasPrefix(rel, "..")) {
		return fmt.Errorf("%w: %s contains the working directory", ErrUnsafeReset, dir)
	}
	return nil
}

// CopyTree copies every regular file below src to the same relative path
// below dst, creating directories as needed. Symlinks and other special
// files are skipped.
func CopyTree(src, dst string) (CopyStats, error) {
	var stats CopyStats

	info, err := os.Stat(src)
	if err != nil {
		return stats, err
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, DirPerm)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		n, err := CopyFile(path, target)
		if err != nil {
			return err
		}
		stats.Files++
		stats.Bytes += n
		return nil
	})
	return stats, err
}

// CopyFile copies src to dst, creating dst's parent directory.
// Returns the number of bytes written.
func CopyFile(src, dst string) (int64, error) {
	in, err := os.Open(src) // #nosec G304 -- walked from a user-provided root
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), DirPerm); err != nil {
		return 0, err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm) // #nosec G304 -- destination under output dir
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, fmt.Errorf("copying %s: %w", src, err)
	}
	return n, nil
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	return os.WriteFile(path, content, FilePerm) // #nosec G306 -- generated site is world-readable
}

// IsCSS returns true if the string looks like inline CSS rather than a
// name or path.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}
