package pubfolio

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/pubfolio/content"
	"github.com/eringen/pubfolio/pagination"
	"github.com/eringen/pubfolio/views"
)

func (a *App) published() []content.Post {
	return a.Posts.ListPosts(content.ListOptions{})
}

func (a *App) notFound(c echo.Context) error {
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config.Site()))
}

func (a *App) handleHome(c echo.Context) error {
	site := a.Config.Site()
	res := pagination.Paginate(a.published(), 1, a.Config.HomePostCount)
	data := views.HomeData{
		Site: site,
		Meta: views.PageMeta{
			Description: a.Config.Description,
			URL:         BuildURL(a.Config.URL),
			OGType:      "website",
		},
		Posts:  res.Items,
		JSONLD: views.WebsiteJSONLD(site),
	}
	if res.HasNext {
		data.MoreURL = "/blog/"
	}
	return Render(c, a.Views.Home(data))
}

func (a *App) handleBlogList(c echo.Context) error {
	posts := a.published()
	res := pagination.Paginate(posts, pagination.ParsePage(c.QueryParam("page")), a.Config.PageSize)
	return Render(c, a.Views.BlogList(views.ListData{
		Site: a.Config.Site(),
		Meta: views.PageMeta{
			Title:       "Blog",
			Description: a.Config.Description,
			URL:         PageURL(BuildURL(a.Config.URL, "blog"), res.Page),
			OGType:      "website",
		},
		Heading: "Blog",
		Crumbs:  crumbs(views.Crumb{Label: "Blog"}),
		Posts:   res.Items,
		Empty:   "No posts found.",
		Tags:    tagLinks(content.Tags(posts)),
		Pager:   pager(res, "/blog/"),
	}))
}

func (a *App) handleTag(c echo.Context) error {
	slug := content.TagSlug(c.Param("tag"))
	posts := content.FilterByTag(a.published(), slug)
	name := slug
	for _, t := range content.Tags(posts) {
		if content.TagSlug(t) == slug {
			name = t
			break
		}
	}
	res := pagination.Paginate(posts, pagination.ParsePage(c.QueryParam("page")), a.Config.PageSize)
	heading := "Posts tagged with " + TitleCase(name)
	return Render(c, a.Views.TagList(views.ListData{
		Site: a.Config.Site(),
		Meta: views.PageMeta{
			Title: heading,
			URL:   PageURL(BuildURL(a.Config.URL, "tags", slug), res.Page),
		},
		Heading: heading,
		Crumbs:  crumbs(views.Crumb{Label: "Blog", URL: "/blog/"}, views.Crumb{Label: TitleCase(name)}),
		Posts:   res.Items,
		Empty:   "No posts found with this tag.",
		Pager:   pager(res, tagURL(slug)),
	}))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, ok := a.Posts.GetPost(slug)
	if !ok {
		return a.notFound(c)
	}
	body, err := a.Markdown.HTML(post.Content)
	if err != nil {
		return err
	}

	title := post.Title
	if title == "" {
		title = slug
	}
	description := post.Description
	if description == "" {
		description = post.Excerpt
	}
	site := a.Config.Site()
	n := pagination.FindNeighbors(a.published(), slug)
	return Render(c, a.Views.Post(views.PostData{
		Site: site,
		Meta: views.PageMeta{
			Title:       title,
			Description: description,
			URL:         BuildURL(a.Config.URL, "blog", slug),
			OGType:      "article",
		},
		Crumbs:   crumbs(views.Crumb{Label: "Blog", URL: "/blog/"}, views.Crumb{Label: title}),
		Post:     post,
		Body:     body,
		TOC:      a.Markdown.Headings(post.Content),
		Tags:     tagLinks(post.Tags),
		Previous: n.Previous,
		Next:     n.Next,
		JSONLD:   views.BlogPostingJSONLD(site, post),
	}))
}

func (a *App) handlePage(c echo.Context) error {
	page, ok := a.Pages.GetPage(c.Param("page"))
	if !ok {
		return a.notFound(c)
	}
	body, err := a.Markdown.HTML(page.Content)
	if err != nil {
		return err
	}
	title := pageTitle(page)
	return Render(c, a.Views.Page(views.PageData{
		Site: a.Config.Site(),
		Meta: views.PageMeta{
			Title:       title,
			Description: page.Description,
			URL:         BuildURL(a.Config.URL, page.Slug),
			OGType:      "website",
		},
		Crumbs: crumbs(views.Crumb{Label: title}),
		Page:   page,
		Body:   body,
	}))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.published(), a.Pages.ListSlugs())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.published())
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = a.notFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
		)
		if rerr := RenderStatus(c, code, a.Views.ServerError(a.Config.Site())); rerr != nil {
			_ = c.String(code, http.StatusText(code))
		}
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
