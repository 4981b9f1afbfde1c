package pubfolio

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/pubfolio/content"
	"github.com/eringen/pubfolio/pagination"
	"github.com/eringen/pubfolio/views"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PageURL returns the URL of page n of the listing at base. Page 1 is the
// bare listing.
func PageURL(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "?page=" + strconv.Itoa(n)
}

// TitleCase capitalises each word of s.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// pageTitle is the display title of a standalone page. Pages without a
// title get their slug, capitalised.
func pageTitle(p content.Page) string {
	if p.Title != "" {
		return p.Title
	}
	return TitleCase(strings.ReplaceAll(p.Slug, "-", " "))
}

func pager(res pagination.Result, base string) views.Pager {
	p := views.Pager{
		Page:       res.Page,
		TotalPages: res.TotalPages,
		HasPrev:    res.HasPrev,
		HasNext:    res.HasNext,
	}
	if res.HasPrev {
		// Past the end, point back at the last page that has posts.
		prev := min(res.Page-1, max(res.TotalPages, 1))
		p.PrevURL = PageURL(base, prev)
	}
	if res.HasNext {
		p.NextURL = PageURL(base, res.Page+1)
	}
	return p
}

func tagURL(tag string) string {
	return "/tags/" + url.PathEscape(content.TagSlug(tag)) + "/"
}

func tagLinks(tags []string) []views.TagLink {
	links := make([]views.TagLink, 0, len(tags))
	for _, t := range tags {
		if content.TagSlug(t) == "" {
			continue
		}
		links = append(links, views.TagLink{Name: t, URL: tagURL(t)})
	}
	return links
}

func crumbs(trail ...views.Crumb) []views.Crumb {
	return append([]views.Crumb{{Label: "Home", URL: "/"}}, trail...)
}
