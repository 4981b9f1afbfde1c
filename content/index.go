package content

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultWatchDebounce is how long Watch waits for a burst of file events
// to settle before rebuilding.
const DefaultWatchDebounce = 250 * time.Millisecond

// Index keeps an in-memory snapshot of the post listing so requests do not
// read the directory. The snapshot is replaced on Rebuild, typically driven
// by Watch. Single-post lookups still go to the repository so drafts and
// incomplete posts stay reachable.
type Index struct {
	repo   *PostRepository
	logger *zap.Logger

	mu    sync.RWMutex
	posts []Post
	built time.Time
}

// NewIndex creates an empty Index over repo. Call Rebuild before serving.
func NewIndex(repo *PostRepository, logger *zap.Logger) *Index {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Index{repo: repo, logger: logger}
}

// Rebuild rescans the repository and swaps in the new snapshot. On a slug
// collision the previous snapshot is kept and ErrSlugCollision is returned.
func (ix *Index) Rebuild() error {
	posts := ix.repo.ListPosts(ListOptions{IncludeContent: true, IncludeDrafts: true})
	if err := checkCollisions(posts); err != nil {
		return err
	}
	ix.mu.Lock()
	ix.posts = posts
	ix.built = time.Now()
	ix.mu.Unlock()
	return nil
}

// Built reports when the snapshot was last replaced.
func (ix *Index) Built() time.Time {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.built
}

// Len reports how many posts, drafts included, the snapshot holds.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.posts)
}

// ListPosts returns a copy of the snapshot filtered by opts.
func (ix *Index) ListPosts(opts ListOptions) []Post {
	ix.mu.RLock()
	posts := ix.posts
	ix.mu.RUnlock()

	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.Draft && !opts.IncludeDrafts {
			continue
		}
		if !opts.IncludeContent {
			p.Content = ""
		}
		out = append(out, p)
	}
	return out
}

// GetPost reads the post file directly.
func (ix *Index) GetPost(slug string) (Post, bool) {
	return ix.repo.GetPost(slug)
}

// Watch rebuilds the index whenever markdown files in dir change, until ctx
// is done. Bursts of events within debounce trigger a single rebuild.
func (ix *Index) Watch(ctx context.Context, dir string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("content: watch %s: %w", dir, err)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !strings.HasSuffix(event.Name, markdownExt) {
				continue
			}
			ix.logger.Debug("content changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			if err := ix.Rebuild(); err != nil {
				ix.logger.Error("rebuild post index", zap.Error(err))
				continue
			}
			ix.logger.Info("post index rebuilt", zap.Int("posts", ix.Len()))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ix.logger.Error("watch posts", zap.Error(err))
		}
	}
}

// checkCollisions rejects slugs that only differ by case. They are distinct
// files here but would overwrite each other on a case-insensitive
// filesystem.
func checkCollisions(posts []Post) error {
	seen := make(map[string]string, len(posts))
	for _, p := range posts {
		key := strings.ToLower(p.Slug)
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q and %q", ErrSlugCollision, other, p.Slug)
		}
		seen[key] = p.Slug
	}
	return nil
}
