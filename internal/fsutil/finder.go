// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFilesByExtension recursively searches rootPath for files whose names end
// with one of the given extensions, compared case-insensitively. Paths come
// back in lexical walk order.
//
// A rootPath that is a symlink is followed; the returned paths keep rootPath
// as their prefix. Symlinks below the root are not followed.
//
// Entries that cannot be read are skipped. Their errors are joined into the
// returned error, and the files found elsewhere are still returned.
func FindFilesByExtension(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}
	exts := make([]string, len(extensions))
	for i, ext := range extensions {
		if ext == "" {
			panic("extension must not be empty")
		}
		exts[i] = strings.ToLower(ext)
	}

	// WalkDir does not descend into a root that is itself a symlink.
	walkRoot := rootPath
	if resolved, err := filepath.EvalSymlinks(rootPath); err == nil {
		walkRoot = resolved
	}

	var files []string
	var errs []error
	walkErr := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		for _, ext := range exts {
			if strings.HasSuffix(name, ext) {
				files = append(files, underRoot(rootPath, walkRoot, path))
				break
			}
		}
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}

	return files, errors.Join(errs...)
}

// underRoot rewrites a path found below walkRoot so it starts with rootPath.
func underRoot(rootPath, walkRoot, path string) string {
	if walkRoot == rootPath {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(rootPath, rel)
}
