package pubfolio

import (
	"time"

	"go.uber.org/zap"

	"github.com/eringen/pubfolio/content"
	"github.com/eringen/pubfolio/markdown"
	"github.com/eringen/pubfolio/pagination"
	"github.com/eringen/pubfolio/views"
)

// SiteConfig holds all configuration for a pubfolio site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Blog")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string `mapstructure:"author"`      // Author name for JSON-LD

	Addr     string `mapstructure:"addr"`      // Listen address (default ":3000")
	PostsDir string `mapstructure:"posts_dir"` // Blog posts (default "content/blog")
	PagesDir string `mapstructure:"pages_dir"` // Standalone pages (default "content")

	PageSize      int `mapstructure:"page_size"`       // Posts per listing page (default 5)
	HomePostCount int `mapstructure:"home_post_count"` // Posts on the home page (default 3)

	// Watch keeps the post listing in memory and refreshes it when files
	// change. Without it every request reads the posts directory.
	Watch         bool          `mapstructure:"watch"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"` // default 250ms

	CodeStyle string `mapstructure:"code_style"` // chroma style (default "onedark")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.PostsDir == "" {
		c.PostsDir = "content/blog"
	}
	if c.PagesDir == "" {
		c.PagesDir = "content"
	}
	if c.PageSize < 1 {
		c.PageSize = pagination.DefaultPageSize
	}
	if c.HomePostCount < 1 {
		c.HomePostCount = 3
	}
	if c.WatchDebounce <= 0 {
		c.WatchDebounce = content.DefaultWatchDebounce
	}
	if c.CodeStyle == "" {
		c.CodeStyle = markdown.DefaultCodeStyle
	}
}

// Site returns the subset of the config the views need.
func (c SiteConfig) Site() views.SiteConfig {
	return views.SiteConfig{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.Logger = logger
		}
	}
}

// WithMarkdown replaces the markdown renderer built from CodeStyle.
func WithMarkdown(r *markdown.Renderer) Option {
	return func(a *App) {
		a.Markdown = r
	}
}
