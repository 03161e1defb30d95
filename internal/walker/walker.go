// Package walker enumerates candidate source files under a project root,
// skipping hidden and build-output directories.
package walker

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultMaxFileSize is the maximum file size to read (1 MB). Generated or
// shaded sources above this are skipped.
const DefaultMaxFileSize int64 = 1 << 20

// sourceExtensions are the file extensions treated as analyzable source.
var sourceExtensions = map[string]bool{
	".java": true,
	".kt":   true,
}

// FileInfo holds metadata about a single file discovered during traversal.
type FileInfo struct {
	Path     string // Absolute path on disk.
	RelPath  string // Path relative to the root directory, slash-separated.
	BaseName string // File name without directory.
	Size     int64  // File size in bytes.
}

// Config controls the behaviour of the Walk function.
type Config struct {
	RootDir     string   // Root directory to walk.
	Include     []string // Glob patterns; only matching files are included.
	Exclude     []string // Glob patterns; matching files are excluded.
	MaxFileSize int64    // Files larger than this are skipped (0 = use default).
}

// Walk traverses the directory tree rooted at config.RootDir and returns
// metadata for every source file that passes filtering. WalkDir does not
// follow symbolic links, so link cycles cannot recurse. Results follow the
// lexical order of filepath.WalkDir, keeping output deterministic for a
// given tree.
func Walk(config Config) ([]FileInfo, error) {
	root := config.RootDir
	maxSize := config.MaxFileSize
	if maxSize == 0 {
		maxSize = DefaultMaxFileSize
	}

	var files []FileInfo
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, never fatal.
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || shouldExcludeDir(name)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if !sourceExtensions[strings.ToLower(filepath.Ext(name))] {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if !MatchesInclude(relPath, config.Include) {
			return nil
		}
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() > maxSize {
			return nil
		}

		files = append(files, FileInfo{
			Path:     path,
			RelPath:  filepath.ToSlash(relPath),
			BaseName: name,
			Size:     info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
