package fragment

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/specweld/specweld/internal/nodeutil"
	"github.com/specweld/specweld/specerrors"
)

// specExtensions are the file extensions recognized as fragment documents.
var specExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// Load reads the fragment tree for one API version under root and returns
// the ordered Set. The expected layout is <root>/<version>/<category>/<name>.<ext>.
//
// Hidden files and directories and the full-spec file at the version root
// are skipped. An unknown category directory, an unreadable file, malformed
// content, or a non-mapping fragment root fails fast with a
// *specerrors.LoadError.
//
// File parsing is parallelized; the returned Set is sorted by RelPath so the
// result is independent of completion order.
func Load(root, version string, opts ...Option) (*Set, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("fragment: invalid options: %w", err)
	}
	if version == "" {
		return nil, &specerrors.LoadError{Path: root, Message: "version tag is required"}
	}

	versionDir := filepath.Join(root, version)
	entries, err := os.ReadDir(versionDir)
	if err != nil {
		return nil, &specerrors.LoadError{Path: versionDir, Message: "reading version directory", Cause: err}
	}

	logger := cfg.logger.With("version", version)

	type task struct {
		category Category
		path     string
		relPath  string
	}
	var tasks []task

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !entry.IsDir() {
			if name == cfg.fullSpecName {
				continue
			}
			logger.Debug("skipping stray file at version root", "file", name)
			continue
		}

		category, ok := ParseCategory(name)
		if !ok {
			return nil, &specerrors.LoadError{
				Path:    filepath.Join(versionDir, name),
				Message: fmt.Sprintf("unknown category directory %q", name),
			}
		}

		files, err := os.ReadDir(filepath.Join(versionDir, name))
		if err != nil {
			return nil, &specerrors.LoadError{Path: filepath.Join(versionDir, name), Message: "reading category directory", Cause: err}
		}
		for _, file := range files {
			fname := file.Name()
			if strings.HasPrefix(fname, ".") || file.IsDir() {
				continue
			}
			if !specExtensions[strings.ToLower(filepath.Ext(fname))] {
				logger.Debug("skipping non-spec file", "category", string(category), "file", fname)
				continue
			}
			tasks = append(tasks, task{
				category: category,
				path:     filepath.Join(versionDir, name, fname),
				relPath:  name + "/" + fname,
			})
		}
	}

	// Each goroutine writes its own slice slot; no shared mutable state.
	fragments := make([]*Fragment, len(tasks))
	var g errgroup.Group
	g.SetLimit(cfg.parallelism)

	for i, tk := range tasks {
		g.Go(func() error {
			frag, err := loadFile(version, tk.category, tk.path, tk.relPath)
			if err != nil {
				return err
			}
			fragments[i] = frag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := NewSet(version, fragments...)
	logger.Debug("loaded fragment set", "fragments", set.Len())
	return set, nil
}

// loadFile reads and parses a single fragment file.
func loadFile(version string, category Category, path, relPath string) (*Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &specerrors.LoadError{Path: path, Message: "reading fragment", Cause: err}
	}

	doc, err := nodeutil.ParseBytes(data)
	if err != nil {
		return nil, &specerrors.LoadError{Path: path, Message: "parsing fragment", Cause: err}
	}
	if !nodeutil.IsMapping(doc) {
		return nil, &specerrors.LoadError{
			Path:    path,
			Line:    doc.Line,
			Column:  doc.Column,
			Message: "fragment root must be a mapping",
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Fragment{
		Version:  version,
		Category: category,
		Name:     name,
		Path:     path,
		RelPath:  relPath,
		Format:   FormatForPath(path),
		Doc:      doc,
	}, nil
}

// LoadFullSpec reads a single merged specification document for the
// splitter or validator. Fails with *specerrors.LoadError on unreadable
// files, malformed content, or a non-mapping document root.
func LoadFullSpec(path, version string) (*FullSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &specerrors.LoadError{Path: path, Message: "reading full spec", Cause: err}
	}

	doc, err := nodeutil.ParseBytes(data)
	if err != nil {
		return nil, &specerrors.LoadError{Path: path, Message: "parsing full spec", Cause: err}
	}
	if !nodeutil.IsMapping(doc) {
		return nil, &specerrors.LoadError{
			Path:    path,
			Line:    doc.Line,
			Column:  doc.Column,
			Message: "full spec root must be a mapping",
		}
	}

	return &FullSpec{Version: version, Doc: doc, SourcePath: path}, nil
}
