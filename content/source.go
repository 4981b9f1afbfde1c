package content

import (
	"errors"
	"io/fs"
	"path"
	"strings"

	"go.uber.org/zap"
)

const markdownExt = ".md"

// source reads markdown documents from one flat directory.
type source struct {
	fsys   fs.FS
	root   string
	logger *zap.Logger
}

func newSource(fsys fs.FS, root string, logger *zap.Logger) source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return source{fsys: fsys, root: root, logger: logger}
}

func (s source) path(name string) string {
	if s.root == "" {
		return name
	}
	return path.Join(s.root, name)
}

// names lists the markdown files at the top level of the directory in
// filename order.
func (s source) names() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, &DirectoryReadError{Dir: s.root, Err: err}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), markdownExt) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// read loads and parses one file.
func (s source) read(name string) (map[string]any, string, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, "", &FileReadError{Path: s.path(name), Err: err}
	}
	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		var fpe *FrontmatterParseError
		if errors.As(err, &fpe) {
			fpe.Path = s.path(name)
		}
		return nil, "", err
	}
	return meta, body, nil
}

// lookup resolves a slug to its parsed file. A missing file is the expected
// not-found signal and is only logged at debug level.
func (s source) lookup(slug string) (map[string]any, string, bool) {
	name, ok := fileName(slug)
	if !ok {
		s.logger.Debug("rejected slug", zap.String("slug", slug))
		return nil, "", false
	}
	meta, body, err := s.read(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no file for slug", zap.String("slug", slug), zap.String("path", s.path(name)))
			return nil, "", false
		}
		s.logger.Error("load content", zap.String("slug", slug), zap.Error(err))
		return nil, "", false
	}
	return meta, body, true
}

// fileName maps a slug to its file name. Slugs must be a single path
// element.
func fileName(slug string) (string, bool) {
	if slug == "" || slug == "." || slug == ".." || strings.ContainsAny(slug, `/\`) {
		return "", false
	}
	name := slug + markdownExt
	if !fs.ValidPath(name) {
		return "", false
	}
	return name, true
}

func slugFromName(name string) string {
	return strings.TrimSuffix(name, markdownExt)
}
