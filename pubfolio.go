// Package pubfolio serves a blog and portfolio site from flat directories of
// markdown files, built on Echo and templ.
//
// Users may provide their own templ components via views.ViewFuncs; any
// view left nil falls back to a plain built-in one. pubfolio handles the
// content loading, pagination, handlers, and middleware.
package pubfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/pubfolio/content"
	"github.com/eringen/pubfolio/markdown"
	"github.com/eringen/pubfolio/views"
)

const shutdownTimeout = 10 * time.Second

// App is the central pubfolio application. It wires together the content
// repositories, markdown renderer, handlers, middleware, and views.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Logger   *zap.Logger
	Posts    content.PostSource
	Pages    *content.PageRepository
	Markdown *markdown.Renderer
	Views    views.ViewFuncs

	repo         *content.PostRepository
	index        *content.Index
	customRoutes []func(*App)
	staticDir    string
	ready        bool
}

// New creates a new pubfolio App with the given configuration and views.
func New(cfg SiteConfig, v views.ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config:    cfg,
		Echo:      e,
		Logger:    zap.NewNop(),
		Views:     v.WithDefaults(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.Markdown == nil {
		a.Markdown = markdown.New(markdown.WithCodeStyle(cfg.CodeStyle))
	}
	a.repo = content.NewPostRepository(cfg.PostsDir, a.Logger.Named("posts"))
	a.Pages = content.NewPageRepository(cfg.PagesDir, a.Logger.Named("pages"))
	a.Posts = a.repo
	if cfg.Watch {
		a.index = content.NewIndex(a.repo, a.Logger.Named("index"))
		a.Posts = a.index
	}
	return a
}

// Setup validates the content, then registers middleware and routes. It is
// called by Start and is safe to call more than once.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.validateContent(); err != nil {
		return err
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// validateContent refuses to start on slug collisions. Other problems only
// hide the affected posts, so they are logged.
func (a *App) validateContent() error {
	if a.index != nil {
		if err := a.index.Rebuild(); err != nil {
			return fmt.Errorf("pubfolio: build post index: %w", err)
		}
		return nil
	}
	report := a.repo.Check()
	for _, err := range report.Problems {
		if errors.Is(err, content.ErrSlugCollision) {
			return fmt.Errorf("pubfolio: validate posts: %w", err)
		}
		a.Logger.Warn("content problem", zap.Error(err))
	}
	a.Logger.Info("content loaded",
		zap.Int("posts", len(report.Posts)-report.Drafts),
		zap.Int("drafts", report.Drafts),
	)
	return nil
}

// Start sets the app up and serves until ctx is done or the server fails.
// With Watch enabled the post index is refreshed alongside the server.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("pubfolio: serve: %w", err)
		}
		return nil
	})
	if a.index != nil {
		g.Go(func() error {
			if err := a.index.Watch(ctx, a.Config.PostsDir, a.Config.WatchDebounce); err != nil {
				return fmt.Errorf("pubfolio: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlogList)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/tags/:tag/", a.handleTag)
	e.GET("/:page/", a.handlePage)
}

// Close flushes the logger. Call this when the app is shutting down.
func (a *App) Close() error {
	// Sync fails on stdout/stderr on some platforms; nothing to do about it.
	_ = a.Logger.Sync()
	return nil
}
