package scripts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/algoprovider/internal/algorithm"
	"github.com/specialistvlad/algoprovider/internal/ctxlog"
	"github.com/specialistvlad/algoprovider/internal/fsutil"
)

// Extensions lists the file extensions that hold script definitions.
var Extensions = []string{".hcl", ".yaml", ".yml"}

// Discoverer produces the algorithms defined by files in a folder.
type Discoverer interface {
	Discover(ctx context.Context, folder string) ([]algorithm.Algorithm, error)
}

// DiscoverFunc adapts a plain function to the Discoverer interface.
type DiscoverFunc func(ctx context.Context, folder string) ([]algorithm.Algorithm, error)

// Discover calls f(ctx, folder).
func (f DiscoverFunc) Discover(ctx context.Context, folder string) ([]algorithm.Algorithm, error) {
	return f(ctx, folder)
}

// FolderLoader discovers HCL and YAML script definitions on disk.
type FolderLoader struct{}

// NewFolderLoader creates a FolderLoader.
func NewFolderLoader() *FolderLoader {
	return &FolderLoader{}
}

// Discover walks folder and returns one algorithm per definition found, in
// walk order. It never fails as a whole: a missing or unreadable folder yields
// nothing, and a defective file is logged and skipped.
func (l *FolderLoader) Discover(ctx context.Context, folder string) ([]algorithm.Algorithm, error) {
	logger := ctxlog.FromContext(ctx).With("folder", folder)
	logger.Debug("Discovering script algorithms...")

	info, err := os.Stat(folder)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("Scripts folder does not exist, nothing to discover.")
		return nil, nil
	case err != nil:
		logger.Warn("Scripts folder cannot be read, nothing discovered.", "error", err)
		return nil, nil
	case !info.IsDir():
		logger.Warn("Scripts path is not a directory, nothing discovered.")
		return nil, nil
	}

	files, err := fsutil.FindFilesByExtension(folder, Extensions...)
	if err != nil {
		logger.Warn("Some entries in the scripts folder could not be read.", "error", err)
	}
	if len(files) == 0 {
		logger.Debug("No script definition files found.")
		return nil, nil
	}

	parser := hclparse.NewParser()
	var algs []algorithm.Algorithm
	skipped := 0
	for _, path := range files {
		scripts, err := loadFile(parser, path)
		if err != nil {
			skipped++
			logger.Warn("Skipping malformed script definition.", "file", path, "error", err)
			continue
		}
		for _, s := range scripts {
			algs = append(algs, s)
		}
		logger.Debug("Loaded script definitions from file.", "file", path, "count", len(scripts))
	}

	logger.Info("Script discovery finished.", "files", len(files), "algorithms", len(algs), "skipped", skipped)
	return algs, nil
}

// loadFile parses one definition file. A panic inside a parser is turned into
// an error so that it only costs this file.
func loadFile(parser *hclparse.Parser, path string) (scripts []*Script, err error) {
	defer func() {
		if r := recover(); r != nil {
			scripts = nil
			err = fmt.Errorf("panic while loading %s: %v", path, r)
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		parsed, diags := parseHCLFile(parser, path)
		if diags.HasErrors() {
			return nil, diags
		}
		return parsed, nil
	case ".yaml", ".yml":
		parsed, err := parseYAMLFile(path)
		if err != nil {
			return nil, err
		}
		return []*Script{parsed}, nil
	default:
		return nil, fmt.Errorf("unsupported script file %s", path)
	}
}
