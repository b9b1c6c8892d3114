package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultMaxFileSize caps the files considered for header rewriting; anything
// larger is treated as generated or binary-ish and skipped.
const DefaultMaxFileSize = 1024 * 1024

// CollectOptions controls which candidate files a scan yields.
type CollectOptions struct {
	Extensions  []string // lowercase extensions with leading dot
	Recursive   bool     // descend into subdirectories
	Order       string   // "name" (case-insensitive) or "mtime"
	MaxFileSize int64    // bytes; 0 uses DefaultMaxFileSize
}

// CollectedFile is one candidate file found during a scan.
type CollectedFile struct {
	Path         string // absolute or rootDir-joined path for I/O
	RelativePath string // forward-slash path relative to the scan root
	modTime      time.Time
}

// CollectFiles walks rootDir and returns the ordered list of candidate files
// matching the extension set, after applying the built-in ignore set and the
// patterns from .headstamp-ignore.
func CollectFiles(rootDir string, opts CollectOptions) ([]CollectedFile, error) {
	maxSize := opts.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	extSet := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extSet[strings.ToLower(ext)] = true
	}

	ignorePatterns, err := GetIgnorePatterns(rootDir)
	if err != nil {
		return nil, err
	}

	var files []CollectedFile

	err = filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relativePath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		relativePath = strings.ReplaceAll(relativePath, "\\", "/")

		if relativePath == "." {
			return nil
		}

		if IsDefaultIgnored(relativePath) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}

		if !extSet[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		if IsIgnored(relativePath, ignorePatterns) {
			return nil
		}

		fileInfo, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to get file info: %s, error: %w", relativePath, err)
		}
		if fileInfo.Size() > maxSize {
			return nil
		}

		files = append(files, CollectedFile{
			Path:         path,
			RelativePath: relativePath,
			modTime:      fileInfo.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if opts.Order == "mtime" {
		sort.SliceStable(files, func(i, j int) bool {
			return files[i].modTime.Before(files[j].modTime)
		})
	} else {
		sort.SliceStable(files, func(i, j int) bool {
			return strings.ToLower(files[i].RelativePath) < strings.ToLower(files[j].RelativePath)
		})
	}

	return files, nil
}
