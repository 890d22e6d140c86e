package workspace

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// walks root and returns the allow-listed files with their content.
// paths are slash separated and relative to root.
func Collect(root string, opts Options) ([]File, Stats, error) {
	if opts.MaxFileChars <= 0 {
		opts.MaxFileChars = DefaultMaxFileChars
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, Stats{}, fmt.Errorf("%s is not a directory", root)
	}

	var (
		files []File
		stats Stats
	)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable directories are skipped, the walk goes on
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}

			return err
		}

		if d.IsDir() {
			if path != root && !opts.IncludeAll && ignoredDirs[d.Name()] {
				return fs.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() || !Allowed(d.Name()) {
			return nil
		}

		if opts.MaxFiles > 0 && len(files) >= opts.MaxFiles {
			stats.Dropped++
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		f, kind := readFile(path, opts.MaxFileChars)
		f.Path = filepath.ToSlash(rel)

		switch kind {
		case kindBinary:
			stats.Binary++
		case kindUnreadable:
			stats.Unreadable++
		}

		if f.Truncated {
			stats.Truncated++
		}

		files = append(files, f)
		stats.Collected++

		return nil
	})
	if walkErr != nil {
		return nil, stats, fmt.Errorf("failed to walk %s: %w", root, walkErr)
	}

	return files, stats, nil
}

// reports whether a file name passes the extension and name allow-list
func Allowed(name string) bool {
	if allowedNames[name] {
		return true
	}

	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

type readKind int

const (
	kindText readKind = iota
	kindBinary
	kindUnreadable
)

// binary and unreadable files come back with empty content
func readFile(path string, maxChars int) (File, readKind) {
	var f File

	fh, err := os.Open(path) //nolint:gosec // G304: path comes from walking the chosen directory
	if err != nil {
		return f, kindUnreadable
	}
	defer fh.Close() //nolint:errcheck

	if info, err := fh.Stat(); err == nil {
		f.Size = info.Size()
	}

	data, err := io.ReadAll(fh)
	if err != nil {
		return f, kindUnreadable
	}

	if IsBinary(data) {
		return f, kindBinary
	}

	f.Content, f.Truncated = truncate(toValidUTF8(data), maxChars)

	return f, kindText
}

// a NUL byte in the first sampleBytes marks a file as binary
func IsBinary(data []byte) bool {
	if len(data) > sampleBytes {
		data = data[:sampleBytes]
	}

	return bytes.IndexByte(data, 0) >= 0
}

func toValidUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// keeps the first limit characters of s
func truncate(s string, limit int) (string, bool) {
	if len(s) <= limit {
		return s, false
	}

	count := 0
	for i := range s {
		if count == limit {
			return s[:i], true
		}
		count++
	}

	return s, false
}
