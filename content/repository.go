package content

import (
	"io/fs"
	"os"
	"sort"

	"go.uber.org/zap"
)

// PostRepository reads blog posts from a flat directory of markdown files.
// Every call reads the directory again; nothing is cached.
type PostRepository struct {
	src source
}

// NewPostRepository opens the posts directory at dir.
func NewPostRepository(dir string, logger *zap.Logger) *PostRepository {
	return NewPostRepositoryFS(os.DirFS(dir), dir, logger)
}

// NewPostRepositoryFS reads posts from fsys. root only labels paths in logs
// and errors.
func NewPostRepositoryFS(fsys fs.FS, root string, logger *zap.Logger) *PostRepository {
	return &PostRepository{src: newSource(fsys, root, logger)}
}

// ListPosts returns every valid post ordered by date, newest first. Files
// that cannot be read, parsed or validated are logged and skipped; an
// unreadable directory yields an empty list.
func (r *PostRepository) ListPosts(opts ListOptions) []Post {
	posts, problems := r.scan(opts)
	for _, err := range problems {
		r.logProblem(err)
	}
	return posts
}

// GetPost loads one post by slug. Drafts and posts with incomplete metadata
// are still returned; only a missing or unreadable file reports false.
func (r *PostRepository) GetPost(slug string) (Post, bool) {
	meta, body, ok := r.src.lookup(slug)
	if !ok {
		return Post{}, false
	}
	if err := validate(r.src.path(slug+markdownExt), meta); err != nil {
		r.src.logger.Warn("post has incomplete metadata", zap.String("slug", slug), zap.Error(err))
	}
	return buildPost(slug, meta, body), true
}

// Report summarises a full scan of the posts directory.
type Report struct {
	Posts    []Post
	Drafts   int
	Problems []error
}

// Check scans the directory like ListPosts but returns the problems instead
// of logging them. Drafts are kept in Posts.
func (r *PostRepository) Check() Report {
	posts, problems := r.scan(ListOptions{IncludeDrafts: true})
	rep := Report{Posts: posts, Problems: problems}
	for _, p := range posts {
		if p.Draft {
			rep.Drafts++
		}
	}
	if err := checkCollisions(posts); err != nil {
		rep.Problems = append(rep.Problems, err)
	}
	return rep
}

func (r *PostRepository) scan(opts ListOptions) ([]Post, []error) {
	names, err := r.src.names()
	if err != nil {
		return []Post{}, []error{err}
	}

	var problems []error
	posts := make([]Post, 0, len(names))
	for _, name := range names {
		meta, body, err := r.src.read(name)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		if err := validate(r.src.path(name), meta); err != nil {
			problems = append(problems, err)
			continue
		}
		p := buildPost(slugFromName(name), meta, body)
		if p.Draft && !opts.IncludeDrafts {
			continue
		}
		if !opts.IncludeContent {
			p.Content = ""
		}
		posts = append(posts, p)
	}

	sortPosts(posts)
	return posts, problems
}

func (r *PostRepository) logProblem(err error) {
	switch err.(type) {
	case *DirectoryReadError:
		r.src.logger.Error("list posts", zap.Error(err))
	case *ValidationError:
		r.src.logger.Warn("skipping post", zap.Error(err))
	default:
		r.src.logger.Error("skipping post", zap.Error(err))
	}
}

// sortPosts orders posts newest first. Posts with equal dates keep their
// filename order.
func sortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Time.After(posts[j].Time)
	})
}
