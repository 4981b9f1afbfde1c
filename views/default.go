package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"pathEscape": PathEscape,
	"joinTags":   JoinTags,
	"isoDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"longDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
}

var pages = map[string]*template.Template{}

func init() {
	base := template.Must(template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html"))
	for _, name := range []string{"home.html", "list.html", "post.html", "page.html", "error.html"} {
		t := template.Must(base.Clone())
		pages[name] = template.Must(t.ParseFS(templateFS, "templates/"+name))
	}
}

func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return pages[name].ExecuteTemplate(w, "layout", data)
	})
}

// Default returns the built-in views. They are deliberately plain; sites
// that care about presentation supply their own components.
func Default() ViewFuncs {
	return ViewFuncs{
		Home:     func(d HomeData) templ.Component { return page("home.html", d) },
		BlogList: func(d ListData) templ.Component { return page("list.html", d) },
		TagList:  func(d ListData) templ.Component { return page("list.html", d) },
		Post:     func(d PostData) templ.Component { return page("post.html", d) },
		Page:     func(d PageData) templ.Component { return page("page.html", d) },
		NotFound: func(site SiteConfig) templ.Component {
			return page("error.html", ErrorData{
				Site:    site,
				Meta:    PageMeta{Title: "Not found"},
				Status:  http.StatusNotFound,
				Message: "The page you are looking for does not exist.",
			})
		},
		ServerError: func(site SiteConfig) templ.Component {
			return page("error.html", ErrorData{
				Site:    site,
				Meta:    PageMeta{Title: "Server error"},
				Status:  http.StatusInternalServerError,
				Message: "Something went wrong. Please try again later.",
			})
		},
	}
}

// WithDefaults fills every nil field of v with the built-in view.
func (v ViewFuncs) WithDefaults() ViewFuncs {
	d := Default()
	if v.Home == nil {
		v.Home = d.Home
	}
	if v.BlogList == nil {
		v.BlogList = d.BlogList
	}
	if v.TagList == nil {
		v.TagList = d.TagList
	}
	if v.Post == nil {
		v.Post = d.Post
	}
	if v.Page == nil {
		v.Page = d.Page
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
	return v
}
