package content

import (
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Page is a standalone content page such as /about.
type Page struct {
	Slug        string
	Title       string
	Description string
	Meta        map[string]any
	Content     string
}

// PageRepository reads standalone pages from a flat directory. Metadata is
// returned as written; nothing is required.
type PageRepository struct {
	src source
}

// NewPageRepository opens the pages directory at dir.
func NewPageRepository(dir string, logger *zap.Logger) *PageRepository {
	return NewPageRepositoryFS(os.DirFS(dir), dir, logger)
}

// NewPageRepositoryFS reads pages from fsys.
func NewPageRepositoryFS(fsys fs.FS, root string, logger *zap.Logger) *PageRepository {
	return &PageRepository{src: newSource(fsys, root, logger)}
}

// GetPage loads one page by slug.
func (r *PageRepository) GetPage(slug string) (Page, bool) {
	meta, body, ok := r.src.lookup(slug)
	if !ok {
		return Page{}, false
	}
	return Page{
		Slug:        slug,
		Title:       stringValue(meta["title"]),
		Description: stringValue(meta["description"]),
		Meta:        meta,
		Content:     body,
	}, true
}

// ListSlugs returns the slug of every page without reading the files.
func (r *PageRepository) ListSlugs() []string {
	names, err := r.src.names()
	if err != nil {
		r.src.logger.Error("list pages", zap.Error(err))
		return []string{}
	}
	slugs := make([]string, 0, len(names))
	for _, name := range names {
		slugs = append(slugs, slugFromName(name))
	}
	return slugs
}

// Check parses every page and returns the files that fail.
func (r *PageRepository) Check() []error {
	names, err := r.src.names()
	if err != nil {
		return []error{err}
	}
	var problems []error
	for _, name := range names {
		if _, _, err := r.src.read(name); err != nil {
			problems = append(problems, err)
		}
	}
	return problems
}
