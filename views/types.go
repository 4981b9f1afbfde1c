package views

import (
	"html/template"

	"github.com/a-h/templ"

	"github.com/eringen/pubfolio/content"
	"github.com/eringen/pubfolio/markdown"
)

// SiteConfig holds the site-wide settings every view needs.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Crumb is one breadcrumb link. The last crumb of a trail has no URL.
type Crumb struct {
	Label string
	URL   string
}

// Pager describes the previous/next links of a paginated listing.
type Pager struct {
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
}

// TagLink is a tag with the URL of its listing.
type TagLink struct {
	Name string
	URL  string
}

// HomeData is passed to ViewFuncs.Home.
type HomeData struct {
	Site  SiteConfig
	Meta  PageMeta
	Posts []content.Post
	// MoreURL links to the full listing when Posts is not everything.
	MoreURL string
	JSONLD  template.JS
}

// ListData is passed to ViewFuncs.BlogList and ViewFuncs.TagList.
type ListData struct {
	Site    SiteConfig
	Meta    PageMeta
	Heading string
	Crumbs  []Crumb
	Posts   []content.Post
	Empty   string // shown when Posts is empty
	Tags    []TagLink
	Pager   Pager
}

// PostData is passed to ViewFuncs.Post.
type PostData struct {
	Site     SiteConfig
	Meta     PageMeta
	Crumbs   []Crumb
	Post     content.Post
	Body     template.HTML
	TOC      []markdown.Heading
	Tags     []TagLink
	Previous *content.Post
	Next     *content.Post
	JSONLD   template.JS
}

// PageData is passed to ViewFuncs.Page.
type PageData struct {
	Site   SiteConfig
	Meta   PageMeta
	Crumbs []Crumb
	Page   content.Page
	Body   template.HTML
}

// ErrorData is used by the built-in error views.
type ErrorData struct {
	Site    SiteConfig
	Meta    PageMeta
	Status  int
	Message string
}

// ViewFuncs holds the components the site renders. Any nil field falls back
// to the built-in view of the same name (see WithDefaults).
type ViewFuncs struct {
	Home        func(HomeData) templ.Component
	BlogList    func(ListData) templ.Component
	TagList     func(ListData) templ.Component
	Post        func(PostData) templ.Component
	Page        func(PageData) templ.Component
	NotFound    func(SiteConfig) templ.Component
	ServerError func(SiteConfig) templ.Component
}
